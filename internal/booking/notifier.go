package booking

import (
	"context"

	"github.com/artesyoficios/studio/internal/db/models"
)

// Confirmation is what a Notifier receives when a reservation becomes paid.
type Confirmation struct {
	Reservation models.Reservation
	Workshop    models.Workshop
	// Session is nil for reservations made before sessions existed, or when the
	// referenced session is gone.
	Session *models.Session
}

// Date is the session date, or the reservation date without a session.
func (c Confirmation) Date() string {
	if c.Session != nil && c.Session.Date != "" {
		return c.Session.Date
	}

	return c.Reservation.ReservationDate
}

// Location is the session location, or the workshop location.
func (c Confirmation) Location() string {
	if c.Session != nil && c.Session.Location != "" {
		return c.Session.Location
	}

	return c.Workshop.Location
}

// MapLink is the directions link for the confirmation.
func (c Confirmation) MapLink() string {
	return BuildMapLink(c.Workshop.MapEmbed, c.Location())
}

// Notifier delivers confirmations. Delivery is best effort: the service logs
// and discards returned errors.
type Notifier interface {
	Notify(ctx context.Context, c Confirmation) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, c Confirmation) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, c Confirmation) error {
	return f(ctx, c)
}
