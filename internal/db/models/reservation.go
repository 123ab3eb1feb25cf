package models

// Reservation is a booking request for a workshop, optionally for one session.
// Status is an open string; see booking.Status for the well-known values.
type Reservation struct {
	ID              string  `gorm:"primaryKey;size:32"     json:"id"`
	WorkshopID      string  `gorm:"size:32;not null;index" json:"workshop_id"`
	SessionID       *string `gorm:"size:32;index"          json:"session_id"`
	Name            string  `gorm:"not null"               json:"name"`
	Email           string  `gorm:"not null"               json:"email"`
	Seats           int     `gorm:"not null"               json:"seats"`
	ReservationDate string  `gorm:"not null"               json:"reservation_date"`
	Status          string  `gorm:"not null"               json:"status"`
	CreatedAt       string  `gorm:"not null"               json:"created_at"`

	// Filled by the listing joins, empty for dangling references.
	WorkshopTitle string `gorm:"->;-:migration" json:"workshop_title"`
	SessionDate   string `gorm:"->;-:migration" json:"session_date"`
}
