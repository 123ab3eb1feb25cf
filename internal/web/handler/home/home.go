// Package home renders the public site and takes bookings from its form.
package home

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/apperror"
	"github.com/artesyoficios/studio/internal/booking"
	"github.com/artesyoficios/studio/internal/config"
	"github.com/artesyoficios/studio/internal/db/controller/brand"
	"github.com/artesyoficios/studio/internal/db/controller/category"
	"github.com/artesyoficios/studio/internal/db/controller/workshop"
	"github.com/artesyoficios/studio/internal/db/models"
	"github.com/artesyoficios/studio/internal/site"
	"github.com/artesyoficios/studio/internal/web/handler"
	"github.com/artesyoficios/studio/internal/web/navigation"
)

const (
	// Path is the public page.
	Path = "/"
	// BookPath receives the booking form.
	BookPath = "/book"
	// Template is the page template.
	Template = "index"

	// MsgBooked is shown after a successful booking.
	MsgBooked = "Reserva registrada. Te contactaremos para confirmar el pago."

	featuredLimit = 4
)

// WorkshopView is a catalog entry with its resolved map.
type WorkshopView struct {
	models.Workshop
	MapSrc string
}

// Service is the public page handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	db      *gorm.DB
	booking *booking.Service
	site    *site.Loader
}

// Handler is the public page handler.
var Handler = Service{}

// Init registers the public routes.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil || !deps.Valid() || deps.Site == nil {
		return handler.ErrNilDeps
	}

	s.cfg = deps.Cfg
	s.db = deps.DB
	s.booking = deps.Booking
	s.site = deps.Site

	router.Get(Path, s.Get)
	router.Post(BookPath, s.Book)

	return nil
}

// Get renders the public page. ?category filters the catalog, ?workshop and
// ?session preselect the booking form.
func (s *Service) Get(c *fiber.Ctx) error {
	form, workshops, err := s.form(c, c.Query("workshop"), c.Query("session"))
	if err != nil {
		return handler.Error(c, err)
	}

	data, err := s.page(c, workshops, form)
	if err != nil {
		return handler.Error(c, err)
	}

	if c.Query("booked") != "" {
		data["Notice"] = MsgBooked
	}

	return c.Render(Template, data, handler.BaseLayout)
}

// BookInput is the body of the booking form.
type BookInput struct {
	WorkshopID string `form:"workshop_id"`
	SessionID  string `form:"session_id"`
	Name       string `form:"name"`
	Email      string `form:"email"`
	Seats      int    `form:"seats"`
	Date       string `form:"date"`
}

// Book submits the booking form and redirects back to the page.
func (s *Service) Book(c *fiber.Ctx) error {
	var in BookInput
	if err := handler.Parse(c, &in); err != nil {
		return handler.Error(c, err)
	}

	form, workshops, err := s.form(c, in.WorkshopID, in.SessionID)
	if err != nil {
		return s.rerender(c, workshops, form, err)
	}

	res, err := form.Submit(c.UserContext(), s.booking, site.Attendee{
		Name:  in.Name,
		Email: in.Email,
		Seats: in.Seats,
		Date:  in.Date,
	})
	if err != nil {
		return s.rerender(c, workshops, form, err)
	}

	log.Debug().Str("reservation_id", res.ID).Msg("booking form submitted")

	return c.Redirect("/?booked="+string(res.Status)+"#agendar", fiber.StatusSeeOther)
}

func (s *Service) rerender(c *fiber.Ctx, workshops []models.Workshop, form *site.BookingForm, cause error) error {
	if workshops == nil || (!apperror.IsValidation(cause) && !isFormError(cause)) {
		return handler.Error(c, cause)
	}

	data, err := s.page(c, workshops, form)
	if err != nil {
		return handler.Error(c, err)
	}

	data["Error"] = cause.Error()

	return c.Status(fiber.StatusBadRequest).Render(Template, data, handler.BaseLayout)
}

func isFormError(err error) bool {
	return errors.Is(err, site.ErrUnknownWorkshop) ||
		errors.Is(err, site.ErrUnknownSession) ||
		errors.Is(err, site.ErrNoWorkshopSelected)
}

// form loads the catalog and applies the selection.
func (s *Service) form(c *fiber.Ctx, workshopID, sessionID string) (*site.BookingForm, []models.Workshop, error) {
	workshops, err := workshop.List(s.db.WithContext(c.UserContext()), "")
	if err != nil {
		return nil, nil, err
	}

	form := site.NewBookingForm(workshops)

	if err := form.SelectWorkshop(workshopID); err != nil {
		return form, workshops, err
	}

	if sessionID != "" {
		if err := form.SelectSession(sessionID); err != nil {
			return form, workshops, err
		}
	}

	return form, workshops, nil
}

func (s *Service) page(c *fiber.Ctx, workshops []models.Workshop, form *site.BookingForm) (fiber.Map, error) {
	ctx := c.UserContext()
	db := s.db.WithContext(ctx)

	categories, err := category.List(db)
	if err != nil {
		return nil, err
	}

	brands, err := brand.List(db)
	if err != nil {
		return nil, err
	}

	state := s.site.Load(ctx)
	active := c.Query("category")

	nav := navigation.NewContext(s.cfg.Title, "inicio")
	if len(brands) == 0 {
		nav.Without("marcas")
	}

	if active != "" {
		nav.ActiveSection = "talleres"
	}

	catalog := make([]WorkshopView, 0, len(workshops))
	featured := make([]WorkshopView, 0, featuredLimit)

	for _, w := range workshops {
		v := WorkshopView{Workshop: w, MapSrc: booking.BuildMapSrc(w.MapEmbed, w.Location)}

		if w.Featured && len(featured) < featuredLimit {
			featured = append(featured, v)
		}

		if active == "" || (w.CategoryID != nil && *w.CategoryID == active) || w.CategoryName == active {
			catalog = append(catalog, v)
		}
	}

	return fiber.Map{
		"Title":          s.cfg.Title,
		"Navigation":     nav,
		"State":          state,
		"CSSVars":        state.Theme.CSSVariables(),
		"Categories":     categories,
		"ActiveCategory": active,
		"Workshops":      catalog,
		"Featured":       featured,
		"AllWorkshops":   workshops,
		"Brands":         brands,
		"Form":           form,
	}, nil
}
