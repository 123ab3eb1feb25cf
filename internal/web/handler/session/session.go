// Package session provides the workshop session endpoints.
package session

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/apperror"
	controller "github.com/artesyoficios/studio/internal/db/controller/session"
	"github.com/artesyoficios/studio/internal/web/handler"
)

// Path is the path of the session endpoints below the API prefix.
const Path = "/sessions"

// MsgWorkshopIDRequired is returned when listing without a workshop.
const MsgWorkshopIDRequired = "workshop_id required"

// Service is the session handler service.
type Service struct {
	handler.Service
	db *gorm.DB
}

// Handler is the session handler.
var Handler = Service{}

// Init registers the session routes.
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

// List returns the sessions of the workshop given by ?workshop_id.
func (s *Service) List(c *fiber.Ctx) error {
	workshopID := c.Query("workshop_id")
	if workshopID == "" {
		return handler.Error(c, apperror.Validation(MsgWorkshopIDRequired))
	}

	sessions, err := controller.ListByWorkshop(s.db.WithContext(c.UserContext()), workshopID)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(sessions)
}

// Create stores a session and returns its id.
func (s *Service) Create(c *fiber.Ctx) error {
	var in controller.Input
	if err := handler.Parse(c, &in); err != nil {
		return handler.Error(c, err)
	}

	created, err := controller.Create(s.db.WithContext(c.UserContext()), in)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(fiber.Map{"id": created.ID})
}

// Delete removes a session.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := controller.Delete(s.db.WithContext(c.UserContext()), c.Params("id")); err != nil {
		return handler.Error(c, err)
	}

	return handler.OK(c)
}
