// Package notify contains the booking.Notifier implementations: an SMTP mailer,
// an AMQP publisher, a fan-out and a discarding notifier.
package notify

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/artesyoficios/studio/internal/booking"
)

// Discard drops every confirmation with a debug log line.
var Discard booking.Notifier = booking.NotifierFunc(func(_ context.Context, c booking.Confirmation) error {
	log.Debug().Str("reservation", c.Reservation.ID).Msg("no confirmation channel enabled")
	return nil
})

// Multi delivers to every notifier in order. All of them are tried; the first
// error is returned.
type Multi []booking.Notifier

// Notify implements booking.Notifier.
func (m Multi) Notify(ctx context.Context, c booking.Confirmation) error {
	var first error

	for _, n := range m {
		if err := n.Notify(ctx, c); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Combine returns the notifier for the given set: Discard when empty, the single
// notifier when alone, Multi otherwise.
func Combine(notifiers ...booking.Notifier) booking.Notifier {
	switch len(notifiers) {
	case 0:
		return Discard
	case 1:
		return notifiers[0]
	default:
		return Multi(notifiers)
	}
}

var errNoRecipient = errors.New("reservation has no email")
