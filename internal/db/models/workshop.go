package models

import "gorm.io/gorm"

// Workshop is a catalog entry. Date and Seats are the legacy single occurrence
// fields; bookable occurrences live in Sessions.
type Workshop struct {
	ID          string   `gorm:"primaryKey;size:32"              json:"id"`
	Title       string   `gorm:"not null"                        json:"title"`
	Description string   `gorm:"type:text;not null"              json:"description"`
	Price       int      `gorm:"not null"                        json:"price"`
	Date        string   `gorm:"not null"                        json:"date"`
	Location    string   `gorm:"not null"                        json:"location"`
	Seats       int      `gorm:"not null"                        json:"seats"`
	CategoryID  *string  `gorm:"size:32;index"                   json:"category_id"`
	Images      []string `gorm:"serializer:json;type:text;not null" json:"images"`
	MapEmbed    string   `gorm:"type:text"                       json:"map_embed"`
	Featured    bool     `gorm:"not null"                        json:"featured"`
	CreatedAt   string   `gorm:"not null"                        json:"created_at"`
	UpdatedAt   string   `gorm:"not null"                        json:"updated_at"`

	// CategoryName is filled by the category join, empty for dangling references.
	CategoryName string    `gorm:"->;-:migration"         json:"category_name"`
	Sessions     []Session `gorm:"foreignKey:WorkshopID"  json:"sessions"`
}

// AfterFind normalizes nil collections so they encode as empty arrays.
func (w *Workshop) AfterFind(_ *gorm.DB) error {
	if w.Images == nil {
		w.Images = []string{}
	}

	if w.Sessions == nil {
		w.Sessions = []Session{}
	}

	return nil
}
