// Package setting provides the key/value settings endpoints.
package setting

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/auth"
	"github.com/artesyoficios/studio/internal/config"
	controller "github.com/artesyoficios/studio/internal/db/controller/setting"
	"github.com/artesyoficios/studio/internal/web/handler"
)

// Path is the path of the setting endpoints below the API prefix.
const Path = "/settings"

// Input is the body of a setting update. A missing value stores "".
type Input struct {
	Value string `json:"value" form:"value"`
}

// Service is the setting handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the setting handler.
var Handler = Service{}

// Init registers the setting routes.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.cfg = deps.Cfg
	s.db = deps.DB
	admin := deps.Admin()

	router.Route(Path, func(r fiber.Router) {
		r.Get("/", admin, s.List)
		r.Get("/:key", auth.RequireAdmin(deps.Auth, false), s.Get)
		r.Put("/:key", admin, s.Put)
		r.Delete("/:key", admin, s.Delete)
	})

	return nil
}

// Get returns {key, value}; unknown keys have the value "".
// With token enforcement the admin pin is only shown to admins.
func (s *Service) Get(c *fiber.Ctx) error {
	key := c.Params("key")

	if key == controller.KeyAdminPIN && s.cfg.Admin.EnforceToken && !auth.IsAdmin(c) {
		return c.JSON(fiber.Map{"key": key, "value": ""})
	}

	value, err := controller.Get(s.db.WithContext(c.UserContext()), key)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(fiber.Map{"key": key, "value": value})
}

// List returns every stored setting ordered by key.
func (s *Service) List(c *fiber.Ctx) error {
	settings, err := controller.GetAll(s.db.WithContext(c.UserContext()))
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(settings)
}

// Put stores the value under key, replacing any previous one.
func (s *Service) Put(c *fiber.Ctx) error {
	key := c.Params("key")

	var in Input
	if err := handler.Parse(c, &in); err != nil {
		return handler.Error(c, err)
	}

	if err := controller.Set(s.db.WithContext(c.UserContext()), key, in.Value); err != nil {
		return handler.Error(c, err)
	}

	log.Info().Str("setting", key).Msg("setting saved")

	return handler.OK(c)
}

// Delete removes the setting; readers fall back to the default again.
func (s *Service) Delete(c *fiber.Ctx) error {
	key := c.Params("key")

	if err := controller.Delete(s.db.WithContext(c.UserContext()), key); err != nil {
		return handler.Error(c, err)
	}

	log.Info().Str("setting", key).Msg("setting deleted")

	return handler.OK(c)
}
