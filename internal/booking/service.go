package booking

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/apperror"
	"github.com/artesyoficios/studio/internal/db/controller/reservation"
	"github.com/artesyoficios/studio/internal/db/controller/session"
	"github.com/artesyoficios/studio/internal/db/controller/workshop"
	"github.com/artesyoficios/studio/internal/db/models"
	"github.com/artesyoficios/studio/internal/validation"
)

// DefaultNotifyTimeout bounds a single confirmation delivery.
const DefaultNotifyTimeout = 30 * time.Second

// MsgStatusRequired is the validation message of a status update without status.
const MsgStatusRequired = "status required"

// Request is a reservation as submitted by either entry point.
type Request struct {
	WorkshopID      string `json:"workshop_id"      form:"workshop_id"      validate:"required"`
	SessionID       string `json:"session_id"       form:"session_id"`
	Name            string `json:"name"             form:"name"             validate:"required"`
	Email           string `json:"email"            form:"email"            validate:"required"`
	Seats           int    `json:"seats"            form:"seats"            validate:"required"`
	ReservationDate string `json:"reservation_date" form:"reservation_date" validate:"required"`
	Status          Status `json:"status"           form:"status"`
}

// Result is returned to the caller of CreateReservation.
type Result struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
}

// Service runs the reservation workflow against the database.
type Service struct {
	db            *gorm.DB
	notifier      Notifier
	notifyTimeout time.Duration

	wg sync.WaitGroup
}

// Option configures a Service.
type Option func(*Service)

// WithNotifyTimeout overrides DefaultNotifyTimeout.
func WithNotifyTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.notifyTimeout = d
		}
	}
}

// New returns a Service. A nil notifier disables confirmations.
func New(db *gorm.DB, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		db:            db,
		notifier:      notifier,
		notifyTimeout: DefaultNotifyTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ListReservations returns all reservations with workshop title and session date.
func (s *Service) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	reservations, err := reservation.List(s.db.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "list reservations")
	}

	return reservations, nil
}

// CreateReservation validates req and stores it. Without an explicit status the
// origin decides the initial status. A reservation created as paid is confirmed
// through the notifier; the result does not wait for the delivery.
func (s *Service) CreateReservation(ctx context.Context, req Request, origin Origin) (*Result, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = origin.DefaultStatus()
	}

	r := models.Reservation{
		WorkshopID:      req.WorkshopID,
		Name:            req.Name,
		Email:           req.Email,
		Seats:           req.Seats,
		ReservationDate: req.ReservationDate,
		Status:          string(status),
	}

	if req.SessionID != "" {
		sessionID := req.SessionID
		r.SessionID = &sessionID
	}

	created, err := reservation.Create(s.db.WithContext(ctx), r)
	if err != nil {
		return nil, errors.Wrap(err, "create reservation")
	}

	reservationsCreated.WithLabelValues(origin.String(), status.label()).Inc()

	log.Info().
		Str("reservation_id", created.ID).
		Str("workshop_id", created.WorkshopID).
		Str("origin", origin.String()).
		Str("status", created.Status).
		Msg("reservation created")

	if status == StatusPaid {
		s.confirm(ctx, *created)
	}

	return &Result{ID: created.ID, Status: status}, nil
}

// SetReservationStatus overwrites the status of a reservation with any value.
// There is no transition graph. Setting paid sends a confirmation, also when the
// reservation already was paid. Unknown ids are a no-op.
func (s *Service) SetReservationStatus(ctx context.Context, id string, status Status) error {
	if status == "" {
		return apperror.Validation(MsgStatusRequired)
	}

	db := s.db.WithContext(ctx)

	if err := reservation.SetStatus(db, id, string(status)); err != nil {
		return errors.Wrap(err, "set reservation status")
	}

	log.Info().Str("reservation_id", id).Str("status", string(status)).Msg("reservation status set")

	if status != StatusPaid {
		return nil
	}

	r, err := reservation.Get(db, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}

		return errors.Wrap(err, "load reservation")
	}

	s.confirm(ctx, *r)

	return nil
}

// DeleteReservation removes a reservation. Deleting an unknown id succeeds.
func (s *Service) DeleteReservation(ctx context.Context, id string) error {
	if err := reservation.Delete(s.db.WithContext(ctx), id); err != nil {
		return errors.Wrap(err, "delete reservation")
	}

	return nil
}

// Wait blocks until every pending confirmation has been delivered or dropped.
func (s *Service) Wait() {
	s.wg.Wait()
}

// confirm resolves workshop and session now and delivers in the background.
func (s *Service) confirm(ctx context.Context, r models.Reservation) {
	if s.notifier == nil {
		return
	}

	c, ok := s.resolve(ctx, r)
	if !ok {
		notifications.WithLabelValues(resultSkipped).Inc()
		return
	}

	deliverCtx := context.WithoutCancel(ctx)

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()
		s.deliver(deliverCtx, c)
	}()
}

func (s *Service) resolve(ctx context.Context, r models.Reservation) (Confirmation, bool) {
	logger := log.With().Str("reservation_id", r.ID).Logger()
	db := s.db.WithContext(ctx)

	w, err := workshop.Get(db, r.WorkshopID)
	if err != nil {
		if apperror.IsNotFound(err) {
			logger.Warn().Str("workshop_id", r.WorkshopID).Msg("confirmation skipped, workshop not found")
		} else {
			logger.Error().Err(err).Msg("confirmation skipped, workshop lookup failed")
		}

		return Confirmation{}, false
	}

	c := Confirmation{Reservation: r, Workshop: *w}

	if r.SessionID != nil && *r.SessionID != "" {
		sess, err := session.Get(db, *r.SessionID)

		switch {
		case err == nil:
			c.Session = sess
		case apperror.IsNotFound(err):
			logger.Debug().Str("session_id", *r.SessionID).Msg("session not found, confirming without it")
		default:
			logger.Error().Err(err).Msg("session lookup failed, confirming without it")
		}
	}

	return c, true
}

func (s *Service) deliver(ctx context.Context, c Confirmation) {
	logger := log.With().Str("reservation_id", c.Reservation.ID).Logger()

	defer func() {
		if rec := recover(); rec != nil {
			notifications.WithLabelValues(resultFailed).Inc()
			logger.Error().Err(errors.Errorf("panic: %v", rec)).Msg("confirmation delivery panicked")
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	if err := s.notifier.Notify(ctx, c); err != nil {
		notifications.WithLabelValues(resultFailed).Inc()
		logger.Error().Err(err).Msg("confirmation delivery failed")

		return
	}

	notifications.WithLabelValues(resultSent).Inc()
	logger.Debug().Str("email", c.Reservation.Email).Msg("confirmation delivered")
}
