package handlers_fiber

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health reports liveness. It never touches the stores.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(healthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}
