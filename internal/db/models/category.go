package models

// Category groups workshops in the catalog.
type Category struct {
	ID        string `gorm:"primaryKey;size:32" json:"id"`
	Name      string `gorm:"not null"           json:"name"`
	CreatedAt string `gorm:"not null"           json:"created_at"`
}
