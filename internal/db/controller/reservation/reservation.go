// Package reservation provides storage operations for reservations. The
// reservation workflow itself lives in the booking package.
package reservation

import (
	"errors"

	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/apperror"
	"github.com/artesyoficios/studio/internal/db/models"
	"github.com/artesyoficios/studio/internal/uniuri"
)

func joined(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Reservation{}).
		Select("reservations.*, " +
			"COALESCE(workshops.title, '') AS workshop_title, " +
			"COALESCE(sessions.date, '') AS session_date").
		Joins("LEFT JOIN workshops ON workshops.id = reservations.workshop_id").
		Joins("LEFT JOIN sessions ON sessions.id = reservations.session_id")
}

// List returns every reservation, newest first, with the workshop title and
// session date resolved.
func List(db *gorm.DB) ([]models.Reservation, error) {
	reservations := []models.Reservation{}

	if err := joined(db).Order("reservations.created_at DESC").Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// Get returns the reservation with the given id.
func Get(db *gorm.DB, id string) (*models.Reservation, error) {
	var r models.Reservation

	if err := joined(db).Where("reservations.id = ?", id).Take(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("reservation", id)
		}

		return nil, err
	}

	return &r, nil
}

// Create stores r, assigning id and creation time. Workshop and session
// references are not checked.
func Create(db *gorm.DB, r models.Reservation) (*models.Reservation, error) {
	r.ID = uniuri.New()
	r.CreatedAt = models.Now()

	if err := db.Create(&r).Error; err != nil {
		return nil, err
	}

	return &r, nil
}

// SetStatus overwrites the status. Unknown ids are a no-op.
func SetStatus(db *gorm.DB, id, status string) error {
	return db.Model(&models.Reservation{}).Where("id = ?", id).Update("status", status).Error
}

// Delete removes the reservation.
func Delete(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.Reservation{}).Error
}
