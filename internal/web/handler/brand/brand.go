// Package brand provides the partner brand endpoints.
package brand

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/artesyoficios/studio/internal/db/controller/brand"
	"github.com/artesyoficios/studio/internal/web/handler"
)

// Path is the path of the brand endpoints below the API prefix.
const Path = "/brands"

// Service is the brand handler service.
type Service struct {
	handler.Service
	db *gorm.DB
}

// Handler is the brand handler.
var Handler = Service{}

// Init registers the brand routes.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.db = deps.DB
	admin := deps.Admin()

	router.Route(Path, func(r fiber.Router) {
		r.Get(handler.RouterRootPath, s.List)
		r.Post(handler.RouterRootPath, admin, s.Create)
		r.Put(handler.RouterIDPath, admin, s.Update)
		r.Delete(handler.RouterIDPath, admin, s.Delete)
	})

	return nil
}

// List returns all brands.
func (s *Service) List(c *fiber.Ctx) error {
	brands, err := controller.List(s.db.WithContext(c.UserContext()))
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(brands)
}

// Create stores a brand.
func (s *Service) Create(c *fiber.Ctx) error {
	var in controller.Input
	if err := handler.Parse(c, &in); err != nil {
		return handler.Error(c, err)
	}

	created, err := controller.Create(s.db.WithContext(c.UserContext()), in)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(fiber.Map{"id": created.ID, "name": created.Name, "logo_url": created.LogoURL})
}

// Update replaces name and logo of a brand.
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

// Delete removes a brand.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := controller.Delete(s.db.WithContext(c.UserContext()), c.Params("id")); err != nil {
		return handler.Error(c, err)
	}

	return handler.OK(c)
}
