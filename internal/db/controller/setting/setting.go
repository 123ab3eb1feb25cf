// Package setting provides the key/value settings store. Values are opaque
// serialized documents owned by the client.
package setting

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artesyoficios/studio/internal/db/models"
)

// Well-known setting keys.
const (
	KeyHero     = "hero"
	KeyAbout    = "about"
	KeyTheme    = "theme"
	KeyContact  = "contact"
	KeyAdminPIN = "admin_pin"
)

var (
	// ErrSettingKeyEmpty is returned when a key is empty.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the value stored under key. An absent key yields "" and no error.
func Get(db *gorm.DB, key string) (string, error) {
	if db == nil {
		return "", ErrDBNil
	}

	if key == "" {
		return "", ErrSettingKeyEmpty
	}

	var settings []models.Setting

	// struct conditions quote the column, "key" is reserved in MySQL
	result := db.Where(&models.Setting{Key: key}).Limit(1).Find(&settings)
	if result.Error != nil {
		return "", result.Error
	}

	if len(settings) == 0 {
		return "", nil
	}

	return settings[0].Value, nil
}

// GetAll retrieves all settings ordered by key.
func GetAll(db *gorm.DB) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	settings := []models.Setting{}

	result := db.Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// Set stores value under key, replacing any previous value. Last writer wins.
func Set(db *gorm.DB, key, value string) error {
	if db == nil {
		return ErrDBNil
	}

	if key == "" {
		return ErrSettingKeyEmpty
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.Setting{Key: key, Value: value}).Error
}

// Delete removes key. Deleting an absent key is not an error.
func Delete(db *gorm.DB, key string) error {
	if db == nil {
		return ErrDBNil
	}

	if key == "" {
		return ErrSettingKeyEmpty
	}

	return db.Delete(&models.Setting{Key: key}).Error
}
