// Package reservation provides the reservation endpoints of the public site
// and the admin panel.
package reservation

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artesyoficios/studio/internal/booking"
	"github.com/artesyoficios/studio/internal/web/handler"
)

// Path is the path of the reservation endpoints below the API prefix.
const Path = "/reservations"

// StatusInput is the body of a status update.
type StatusInput struct {
	Status booking.Status `json:"status" form:"status"`
}

// Service is the reservation handler service.
type Service struct {
	handler.Service
	booking *booking.Service
}

// Handler is the reservation handler.
var Handler = Service{}

// Init registers the reservation routes.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.booking = deps.Booking
	admin := deps.Admin()

	router.Route(Path, func(r fiber.Router) {
		r.Get(handler.RouterRootPath, admin, s.List)
		r.Post(handler.RouterRootPath, s.CreatePublic)
		r.Post("/admin", admin, s.CreateAdmin)
		r.Put(handler.RouterIDPath, admin, s.SetStatus)
		r.Delete(handler.RouterIDPath, admin, s.Delete)
	})

	return nil
}

// List returns every reservation with workshop title and session date.
func (s *Service) List(c *fiber.Ctx) error {
	reservations, err := s.booking.ListReservations(c.UserContext())
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(reservations)
}

// CreatePublic books from the public site; the default status is pending_payment.
func (s *Service) CreatePublic(c *fiber.Ctx) error {
	return s.create(c, booking.OriginPublic)
}

// CreateAdmin books from the admin panel; the default status is paid.
func (s *Service) CreateAdmin(c *fiber.Ctx) error {
	return s.create(c, booking.OriginAdmin)
}

func (s *Service) create(c *fiber.Ctx, origin booking.Origin) error {
	var req booking.Request
	if err := handler.Parse(c, &req); err != nil {
		return handler.Error(c, err)
	}

	res, err := s.booking.CreateReservation(c.UserContext(), req, origin)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(res)
}

// SetStatus overwrites the status of a reservation.
func (s *Service) SetStatus(c *fiber.Ctx) error {
	var in StatusInput
	if err := handler.Parse(c, &in); err != nil {
		return handler.Error(c, err)
	}

	if err := s.booking.SetReservationStatus(c.UserContext(), c.Params("id"), in.Status); err != nil {
		return handler.Error(c, err)
	}

	return handler.OK(c)
}

// Delete removes a reservation.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.booking.DeleteReservation(c.UserContext(), c.Params("id")); err != nil {
		return handler.Error(c, err)
	}

	return handler.OK(c)
}
