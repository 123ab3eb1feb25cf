package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// LocalsAdmin is set to true on requests that carried a valid admin token.
const LocalsAdmin = "admin"

const bearerPrefix = "Bearer "

// RequireAdmin creates Fiber middleware validating the admin bearer token.
// When enforce is false a missing or invalid token is let through, a valid one
// still marks the request as admin.
func RequireAdmin(authService *Service, enforce bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := verifyRequest(c, authService)
		if err == nil {
			c.Locals(LocalsAdmin, true)
			return c.Next()
		}

		if !enforce {
			return c.Next()
		}

		log.Warn().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("admin request rejected")

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
}

// IsAdmin reports whether the request carried a valid admin token.
func IsAdmin(c *fiber.Ctx) bool {
	v, ok := c.Locals(LocalsAdmin).(bool)
	return ok && v
}

func verifyRequest(c *fiber.Ctx, authService *Service) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return ErrMissingToken
	}

	_, err := authService.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))

	return err
}
