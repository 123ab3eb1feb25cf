package booking

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSent    = "sent"
	resultFailed  = "failed"
	resultSkipped = "skipped"
)

var (
	reservationsCreated = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "studio_reservations_created_total",
			Help: "Number of reservations created, by entry point and initial status.",
		},
		[]string{"origin", "status"},
	)

	notifications = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "studio_reservation_notifications_total",
			Help: "Number of paid reservation confirmations, by result.",
		},
		[]string{"result"},
	)
)
