package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SwaggerAccessLogger records who opens the API documentation pages.
func SwaggerAccessLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/swagger") {
			log.Infow("swagger access",
				"user", currentUser(c),
				"method", c.Method(),
				"path", c.Path(),
				"query", string(c.Request().URI().QueryString()),
			)
		}
		return c.Next()
	}
}
