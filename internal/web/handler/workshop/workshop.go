// Package workshop provides the workshop catalog endpoints.
package workshop

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	controller "github.com/artesyoficios/studio/internal/db/controller/workshop"
	"github.com/artesyoficios/studio/internal/web/handler"
)

// Path is the path of the workshop endpoints below the API prefix.
const Path = "/workshops"

// Service is the workshop handler service.
type Service struct {
	handler.Service
	db *gorm.DB
}

// Handler is the workshop handler.
var Handler = Service{}

// Init registers the workshop routes.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.db = deps.DB
	admin := deps.Admin()

	router.Route(Path, func(r fiber.Router) {
		r.Get(handler.RouterRootPath, s.List)
		r.Get(handler.RouterIDPath, s.Get)
		r.Post(handler.RouterRootPath, admin, s.Create)
		r.Put(handler.RouterIDPath, admin, s.Update)
		r.Delete(handler.RouterIDPath, admin, s.Delete)
	})

	return nil
}

// List returns the catalog, optionally filtered by category id or name.
func (s *Service) List(c *fiber.Ctx) error {
	workshops, err := controller.List(s.db.WithContext(c.UserContext()), c.Query("category"))
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(workshops)
}

// Get returns one workshop with its sessions.
func (s *Service) Get(c *fiber.Ctx) error {
	w, err := controller.Get(s.db.WithContext(c.UserContext()), c.Params("id"))
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(w)
}

// Create stores a workshop and returns its id.
func (s *Service) Create(c *fiber.Ctx) error {
	var in controller.Input
	if err := handler.Parse(c, &in); err != nil {
		return handler.Error(c, err)
	}

	w, err := controller.Create(s.db.WithContext(c.UserContext()), in)
	if err != nil {
		return handler.Error(c, err)
	}

	log.Info().Str("workshop_id", w.ID).Str("title", w.Title).Msg("workshop created")

	return c.JSON(fiber.Map{"id": w.ID})
}

// Update replaces the editable fields of a workshop.
func (s *Service) Update(c *fiber.Ctx) error {
	var in controller.Input
	if err := handler.Parse(c, &in); err != nil {
		return handler.Error(c, err)
	}

	if err := controller.Update(s.db.WithContext(c.UserContext()), c.Params("id"), in); err != nil {
		return handler.Error(c, err)
	}

	return handler.OK(c)
}

// Delete removes a workshop.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := controller.Delete(s.db.WithContext(c.UserContext()), c.Params("id")); err != nil {
		return handler.Error(c, err)
	}

	return handler.OK(c)
}
