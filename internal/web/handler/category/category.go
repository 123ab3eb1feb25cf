// Package category provides the category endpoints.
package category

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/artesyoficios/studio/internal/db/controller/category"
	"github.com/artesyoficios/studio/internal/web/handler"
)

// Path is the path of the category endpoints below the API prefix.
const Path = "/categories"

// Service is the category handler service.
type Service struct {
	handler.Service
	db *gorm.DB
}

// Handler is the category handler.
var Handler = Service{}

// Init registers the category routes.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.db = deps.DB
	admin := deps.Admin()

	router.Route(Path, func(r fiber.Router) {
		r.Get(handler.RouterRootPath, s.List)
		r.Post(handler.RouterRootPath, admin, s.Create)
		r.Delete(handler.RouterIDPath, admin, s.Delete)
	})

	return nil
}

// List returns all categories.
func (s *Service) List(c *fiber.Ctx) error {
	categories, err := controller.List(s.db.WithContext(c.UserContext()))
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(categories)
}

// Create stores a category and returns its id and name.
func (s *Service) Create(c *fiber.Ctx) error {
	var in controller.Input
	if err := handler.Parse(c, &in); err != nil {
		return handler.Error(c, err)
	}

	created, err := controller.Create(s.db.WithContext(c.UserContext()), in)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(fiber.Map{"id": created.ID, "name": created.Name})
}

// Delete removes a category.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := controller.Delete(s.db.WithContext(c.UserContext()), c.Params("id")); err != nil {
		return handler.Error(c, err)
	}

	return handler.OK(c)
}
