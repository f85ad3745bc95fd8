// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests with method, path, status and duration.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)

		kv := []any{
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", responseStatus(c, err),
			"duration_ms", float64(dur.Microseconds()) / 1000.0,
			"request_id", requestID(c),
		}
		if err != nil {
			log.Warnw("http", append(kv, "error", err.Error())...)
			return err
		}
		log.Infow("http", kv...)
		return nil
	}
}

// responseStatus is the status the client will get once fiber's error handler has run.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

func requestID(c *fiber.Ctx) string {
	if id, _ := c.Locals("requestid").(string); id != "" {
		return id
	}
	return c.Get(fiber.HeaderXRequestID)
}

// currentUser is the authenticated user placed in locals by an upstream handler, if any.
func currentUser(c *fiber.Ctx) string {
	if u, ok := c.Locals("user").(string); ok && u != "" {
		return u
	}
	return "anonymous"
}
