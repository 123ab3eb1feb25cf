package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/artesyoficios/studio/internal/apperror"
)

// ErrNilDeps is returned by Init when the router or a dependency is missing.
var ErrNilDeps = errors.New(ErrNilDepsFatalLogMsg)

// Status maps an error to its HTTP status.
func Status(err error) int {
	switch {
	case apperror.IsValidation(err):
		return fiber.StatusBadRequest
	case apperror.IsNotFound(err):
		return fiber.StatusNotFound
	case apperror.IsDependency(err):
		return fiber.StatusBadGateway
	default:
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe.Code
		}

		return fiber.StatusInternalServerError
	}
}

// Error writes err as {error: message}. Unexpected errors are logged and
// reported with a generic message.
func Error(c *fiber.Ctx, err error) error {
	status := Status(err)
	msg := err.Error()

	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")

		if status == fiber.StatusInternalServerError {
			msg = MsgInternal
		}
	}

	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// OK writes {ok: true}.
func OK(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// Parse decodes the request body into out.
func Parse(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		log.Debug().Err(err).Str("path", c.Path()).Msg("body parse failed")
		return apperror.Validation(MsgInvalidBody)
	}

	return nil
}
