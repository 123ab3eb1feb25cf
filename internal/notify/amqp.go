package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/artesyoficios/studio/internal/booking"
	"github.com/artesyoficios/studio/internal/config"
)

// DefaultQueue receives paid reservations when no queue is configured.
const DefaultQueue = "reservation.paid"

// PaidEvent is the message body published for a paid reservation.
type PaidEvent struct {
	ReservationID string `json:"reservation_id"`
	WorkshopID    string `json:"workshop_id"`
	WorkshopTitle string `json:"workshop_title"`
	SessionID     string `json:"session_id,omitempty"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Seats         int    `json:"seats"`
	Date          string `json:"date"`
	Location      string `json:"location"`
	MapLink       string `json:"map_link,omitempty"`
}

// NewPaidEvent flattens a confirmation into the published event.
func NewPaidEvent(c booking.Confirmation) PaidEvent {
	e := PaidEvent{
		ReservationID: c.Reservation.ID,
		WorkshopID:    c.Workshop.ID,
		WorkshopTitle: c.Workshop.Title,
		Name:          c.Reservation.Name,
		Email:         c.Reservation.Email,
		Seats:         c.Reservation.Seats,
		Date:          c.Date(),
		Location:      c.Location(),
		MapLink:       c.MapLink(),
	}

	if c.Session != nil {
		e.SessionID = c.Session.ID
	}

	return e
}

// Publisher publishes paid reservations to a durable queue. Every delivery
// opens its own connection.
type Publisher struct {
	url   string
	queue string
}

// NewPublisher returns a Publisher for cfg.
func NewPublisher(cfg config.AMQP) *Publisher {
	queue := cfg.Queue
	if queue == "" {
		queue = DefaultQueue
	}

	return &Publisher{url: cfg.URL, queue: queue}
}

// Notify implements booking.Notifier.
func (p *Publisher) Notify(ctx context.Context, c booking.Confirmation) error {
	body, err := json.Marshal(NewPaidEvent(c))
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errors.Wrap(err, "amqp dial")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "amqp channel")
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return errors.Wrap(err, "amqp queue declare")
	}

	err = ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    c.Reservation.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return errors.Wrap(err, "amqp publish")
	}

	return nil
}
