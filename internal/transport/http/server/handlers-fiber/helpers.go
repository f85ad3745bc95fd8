package handlers_fiber

import (
	"errors"
	"net/http"

	"integrador-hub/internal/entities"

	"github.com/gofiber/fiber/v2"
)

type messageResponse struct {
	Message string `json:"message"`
}

var notFoundMessages = []struct {
	err error
	msg string
}{
	{entities.ErrUserNotFound, "Usuario no encontrado."},
	{entities.ErrProjectNotFound, "Proyecto no encontrado."},
	{entities.ErrGroupNotFound, "Grupo no encontrado."},
	{entities.ErrMateriaNotFound, "Materia no encontrada."},
	{entities.ErrCarreraNotFound, "Carrera no encontrada."},
}

// writeError answers known domain errors and hands everything else to fiber's error handler.
func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			return c.Status(http.StatusNotFound).JSON(messageResponse{Message: nf.msg})
		}
	}
	if errors.Is(err, entities.ErrInvalidArgument) {
		return c.Status(http.StatusBadRequest).JSON(messageResponse{Message: err.Error()})
	}

	h.log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return err
}
