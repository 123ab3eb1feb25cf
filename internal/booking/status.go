package booking

// Status is the open-ended reservation status. Any string is accepted; the
// constants are the values the application itself produces.
type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusPaid           Status = "paid"
)

// Origin tells which entry point created a reservation.
type Origin int

const (
	// OriginPublic is the booking form of the public site.
	OriginPublic Origin = iota
	// OriginAdmin is the manual entry of the admin panel.
	OriginAdmin
)

func (o Origin) String() string {
	if o == OriginAdmin {
		return "admin"
	}

	return "public"
}

// DefaultStatus is used when a request carries no status.
func (o Origin) DefaultStatus() Status {
	if o == OriginAdmin {
		return StatusPaid
	}

	return StatusPendingPayment
}

// label keeps the metric cardinality bounded for free-form statuses.
func (s Status) label() string {
	switch s {
	case StatusPendingPayment, StatusPaid:
		return string(s)
	default:
		return "other"
	}
}
