package models

// Brand is a partner logo shown on the public site.
type Brand struct {
	ID        string `gorm:"primaryKey;size:32" json:"id"`
	Name      string `gorm:"not null"           json:"name"`
	LogoURL   string `gorm:"not null"           json:"logo_url"`
	CreatedAt string `gorm:"not null"           json:"created_at"`
}
