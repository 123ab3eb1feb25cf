// Package unlock provides the admin pin check.
package unlock

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/artesyoficios/studio/internal/auth"
	"github.com/artesyoficios/studio/internal/web/handler"
)

// Path is the path of the unlock endpoint below the API prefix.
const Path = "/admin/unlock"

// Input is the body of an unlock request.
type Input struct {
	PIN string `json:"pin" form:"pin"`
}

// Service is the unlock handler service.
type Service struct {
	handler.Service
	auth *auth.Service
}

// Handler is the unlock handler.
var Handler = Service{}

// Init registers the unlock route.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.auth = deps.Auth

	router.Post(Path, s.Post)

	return nil
}

// Post checks the pin and returns {ok, token}; the token is omitted when no
// signing secret is configured. Failed attempts are not limited.
func (s *Service) Post(c *fiber.Ctx) error {
	var in Input
	if err := handler.Parse(c, &in); err != nil {
		return handler.Error(c, err)
	}

	token, err := s.auth.Unlock(c.UserContext(), in.PIN)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPIN) {
			log.Warn().Str("ip", c.IP()).Msg("admin unlock failed")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}

		return handler.Error(c, err)
	}

	log.Info().Str("ip", c.IP()).Msg("admin unlocked")

	if token == "" {
		return c.JSON(fiber.Map{"ok": true})
	}

	return c.JSON(fiber.Map{"ok": true, "token": token})
}
