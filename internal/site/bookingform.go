package site

import (
	"context"

	"github.com/pkg/errors"

	"github.com/artesyoficios/studio/internal/booking"
	"github.com/artesyoficios/studio/internal/db/models"
)

// Stage is the position of a BookingForm in its flow.
type Stage int

const (
	StageNoWorkshop Stage = iota
	StageWorkshopSelected
	StageSessionSelected
	StageSubmitted
)

func (s Stage) String() string {
	switch s {
	case StageWorkshopSelected:
		return "workshop_selected"
	case StageSessionSelected:
		return "session_selected"
	case StageSubmitted:
		return "submitted"
	default:
		return "no_workshop"
	}
}

var (
	// ErrUnknownWorkshop is returned when selecting a workshop not in the catalog.
	ErrUnknownWorkshop = errors.New("unknown workshop")
	// ErrUnknownSession is returned when selecting a session of another workshop.
	ErrUnknownSession = errors.New("unknown session")
	// ErrNoWorkshopSelected is returned when submitting without a workshop.
	ErrNoWorkshopSelected = errors.New("no workshop selected")
)

// Booker creates reservations.
type Booker interface {
	CreateReservation(ctx context.Context, req booking.Request, origin booking.Origin) (*booking.Result, error)
}

// Attendee is what the visitor types into the form.
type Attendee struct {
	Name  string
	Email string
	Seats int
	// Date is used when neither the session nor the workshop carries one.
	Date string
}

// BookingForm is the public booking form. Selecting a workshop highlights its
// first session; selecting another workshop always starts over from that
// workshop's first session.
type BookingForm struct {
	workshops []models.Workshop

	stage    Stage
	workshop *models.Workshop
	session  *models.Session
	result   *booking.Result
}

// NewBookingForm returns a form over the given catalog.
func NewBookingForm(workshops []models.Workshop) *BookingForm {
	return &BookingForm{workshops: workshops}
}

// Stage returns the current stage.
func (f *BookingForm) Stage() Stage { return f.stage }

// Workshop returns the selected workshop, nil when none.
func (f *BookingForm) Workshop() *models.Workshop { return f.workshop }

// Session returns the highlighted or selected session, nil when none.
func (f *BookingForm) Session() *models.Session { return f.session }

// Result returns the outcome of the last submission.
func (f *BookingForm) Result() *booking.Result { return f.result }

// SelectWorkshop selects a workshop by id. An empty id clears the form.
func (f *BookingForm) SelectWorkshop(id string) error {
	if id == "" {
		f.Reset()
		return nil
	}

	for i := range f.workshops {
		if f.workshops[i].ID != id {
			continue
		}

		f.workshop = &f.workshops[i]
		f.session = nil

		if len(f.workshop.Sessions) > 0 {
			f.session = &f.workshop.Sessions[0]
		}

		f.stage = StageWorkshopSelected

		return nil
	}

	return errors.Wrap(ErrUnknownWorkshop, id)
}

// SelectSession selects one of the sessions of the selected workshop.
func (f *BookingForm) SelectSession(id string) error {
	if f.workshop == nil {
		return ErrNoWorkshopSelected
	}

	for i := range f.workshop.Sessions {
		if f.workshop.Sessions[i].ID == id {
			f.session = &f.workshop.Sessions[i]
			f.stage = StageSessionSelected

			return nil
		}
	}

	return errors.Wrap(ErrUnknownSession, id)
}

// Submit books the current selection through the public entry point and
// resets the form. On error the selection is kept.
func (f *BookingForm) Submit(ctx context.Context, b Booker, a Attendee) (*booking.Result, error) {
	if f.workshop == nil {
		return nil, ErrNoWorkshopSelected
	}

	req := booking.Request{
		WorkshopID:      f.workshop.ID,
		Name:            a.Name,
		Email:           a.Email,
		Seats:           a.Seats,
		ReservationDate: f.reservationDate(a.Date),
	}

	if f.session != nil {
		req.SessionID = f.session.ID
	}

	res, err := b.CreateReservation(ctx, req, booking.OriginPublic)
	if err != nil {
		return nil, err
	}

	f.Reset()
	f.stage = StageSubmitted
	f.result = res

	return res, nil
}

// Reset clears the selection.
func (f *BookingForm) Reset() {
	f.stage = StageNoWorkshop
	f.workshop = nil
	f.session = nil
	f.result = nil
}

func (f *BookingForm) reservationDate(fallback string) string {
	if f.session != nil && f.session.Date != "" {
		return f.session.Date
	}

	if f.workshop.Date != "" {
		return f.workshop.Date
	}

	return fallback
}
