package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var authPathMarkers = []string{"login", "authenticate", "signin"}

// InteractionLogger traces calls issued from the Swagger UI and authentication attempts.
// Fiber buffers the request body, so reading it here leaves it intact for the next handler.
func InteractionLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)
		fromSwaggerPage := strings.Contains(strings.ToLower(c.Get(fiber.HeaderReferer)), "/swagger")
		fromSwagger := fromSwaggerPage || strings.Contains(strings.ToLower(c.Get(fiber.HeaderUserAgent)), "swagger")

		if fromSwagger {
			log.Infow("swagger request",
				"user", user,
				"method", c.Method(),
				"path", c.Path(),
				"query", string(c.Request().URI().QueryString()),
			)
		}

		if isAuthPath(c.Path()) {
			logAuthAttempt(log, c)
		}

		err := c.Next()

		if fromSwaggerPage {
			log.Infow("swagger response", "path", c.Path(), "status", responseStatus(c, err))
		}
		return err
	}
}

func isAuthPath(path string) bool {
	p := strings.ToLower(path)
	for _, m := range authPathMarkers {
		if strings.Contains(p, m) {
			return true
		}
	}
	return false
}

func logAuthAttempt(log *zap.SugaredLogger, c *fiber.Ctx) {
	who := "unknown"
	if body := c.Body(); len(body) > 0 {
		if gjson.ValidBytes(body) {
			for _, key := range []string{"username", "email"} {
				if v := gjson.GetBytes(body, key); v.Exists() {
					who = v.String()
					break
				}
			}
		} else {
			log.Warnw("could not parse authentication body", "path", c.Path(), "bytes", len(body))
		}
	}
	log.Infow("authentication attempt", "path", c.Path(), "method", c.Method(), "user_field", who)
}
