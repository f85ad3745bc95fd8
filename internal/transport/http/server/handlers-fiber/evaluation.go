package handlers_fiber

import (
	"net/http"

	"integrador-hub/internal/usecase/queries"

	"github.com/gofiber/fiber/v2"
)

// GetEvaluationsByDocente lists evaluations written by a docente, newest first.
func (h *Handler) GetEvaluationsByDocente(c *fiber.Ctx) error {
	res, err := h.uc.GetEvaluationsByDocente(c.UserContext(), queries.GetEvaluationsByDocenteQuery{DocenteID: c.Params("docenteId")})
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(res)
}

// GetEvaluationsByProject lists evaluations of a project, newest first.
func (h *Handler) GetEvaluationsByProject(c *fiber.Ctx) error {
	res, err := h.uc.GetEvaluationsByProject(c.UserContext(), queries.GetEvaluationsByProjectQuery{ProjectID: c.Params("projectId")})
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(res)
}
