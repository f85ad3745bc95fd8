package handlers_fiber

import (
	"net/http"

	"integrador-hub/internal/usecase/queries"

	"github.com/gofiber/fiber/v2"
)

// GetProject returns the project with the given id.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	p, err := h.uc.GetProject(c.UserContext(), queries.GetProjectQuery{ProjectID: c.Params("id")})
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(p)
}

// GetGroup returns the class group with the given id.
func (h *Handler) GetGroup(c *fiber.Ctx) error {
	g, err := h.uc.GetGroup(c.UserContext(), queries.GetGroupQuery{GroupID: c.Params("id")})
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(g)
}

// GetMateria returns the subject with the given id.
func (h *Handler) GetMateria(c *fiber.Ctx) error {
	m, err := h.uc.GetMateria(c.UserContext(), queries.GetMateriaQuery{MateriaID: c.Params("id")})
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(m)
}

// GetCarrera returns the program with the given id.
func (h *Handler) GetCarrera(c *fiber.Ctx) error {
	cr, err := h.uc.GetCarrera(c.UserContext(), queries.GetCarreraQuery{CarreraID: c.Params("id")})
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(cr)
}
