package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/auth"
	"github.com/artesyoficios/studio/internal/blob"
	"github.com/artesyoficios/studio/internal/booking"
	"github.com/artesyoficios/studio/internal/config"
	"github.com/artesyoficios/studio/internal/site"
)

// Deps are the collaborators shared by the handlers.
type Deps struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Auth    *auth.Service
	Booking *booking.Service
	Blob    blob.Store
	Site    *site.Loader
}

// Valid reports whether every required collaborator is set. Blob and Site are
// only needed by the handlers using them.
func (d *Deps) Valid() bool {
	return d != nil && d.Cfg != nil && d.DB != nil && d.Auth != nil && d.Booking != nil
}

// Admin returns the middleware guarding admin routes.
func (d *Deps) Admin() fiber.Handler {
	return auth.RequireAdmin(d.Auth, d.Cfg.Admin.EnforceToken)
}

// Service is the interface for a web handler service.
type Service interface {
	Init(router fiber.Router, deps *Deps) error
}
