package models

// DefaultSessionTime is used when a session is created without a time.
const DefaultSessionTime = "10:00"

// Session is one bookable occurrence of a workshop.
type Session struct {
	ID         string `gorm:"primaryKey;size:32"    json:"id"`
	WorkshopID string `gorm:"size:32;not null;index" json:"workshop_id"`
	Date       string `gorm:"not null"              json:"date"`
	Time       string `gorm:"not null"              json:"time"`
	Location   string `gorm:"not null"              json:"location"`
	Seats      int    `gorm:"not null"              json:"seats"`
	CreatedAt  string `gorm:"not null"              json:"created_at"`
}
