// Package session provides CRUD operations for workshop sessions, the bookable
// occurrences of a workshop.
package session

import (
	"errors"

	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/apperror"
	"github.com/artesyoficios/studio/internal/db/models"
	"github.com/artesyoficios/studio/internal/uniuri"
	"github.com/artesyoficios/studio/internal/validation"
)

// Input is the writable part of a session.
type Input struct {
	WorkshopID string `json:"workshop_id" form:"workshop_id" validate:"required"`
	Date       string `json:"date"        form:"date"        validate:"required"`
	Time       string `json:"time"        form:"time"`
	Location   string `json:"location"    form:"location"`
	Seats      int    `json:"seats"       form:"seats"       validate:"required"`
}

// OrderByDate sorts sessions chronologically. It doubles as a Preload condition.
func OrderByDate(db *gorm.DB) *gorm.DB {
	return db.Order("date ASC")
}

// ListByWorkshop returns the sessions of a workshop ordered by date.
func ListByWorkshop(db *gorm.DB, workshopID string) ([]models.Session, error) {
	sessions := []models.Session{}

	if err := OrderByDate(db).Where("workshop_id = ?", workshopID).Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

// Get returns the session with the given id.
func Get(db *gorm.DB, id string) (*models.Session, error) {
	var s models.Session

	if err := db.Where("id = ?", id).Take(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("session", id)
		}

		return nil, err
	}

	return &s, nil
}

// Create validates in and stores a new session. A blank time becomes
// models.DefaultSessionTime and a blank location is taken from the workshop,
// if the workshop exists.
func Create(db *gorm.DB, in Input) (*models.Session, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	location := in.Location
	if location == "" {
		var locations []string

		err := db.Model(&models.Workshop{}).Where("id = ?", in.WorkshopID).Limit(1).Pluck("location", &locations).Error
		if err != nil {
			return nil, err
		}

		if len(locations) > 0 {
			location = locations[0]
		}
	}

	return Insert(db, models.Session{
		WorkshopID: in.WorkshopID,
		Date:       in.Date,
		Time:       in.Time,
		Location:   location,
		Seats:      in.Seats,
	})
}

// Insert stores s as given, assigning id, creation time and the default time.
func Insert(db *gorm.DB, s models.Session) (*models.Session, error) {
	s.ID = uniuri.New()
	s.CreatedAt = models.Now()

	if s.Time == "" {
		s.Time = models.DefaultSessionTime
	}

	if err := db.Create(&s).Error; err != nil {
		return nil, err
	}

	return &s, nil
}

// Delete removes the session. Reservations keep their reference.
func Delete(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.Session{}).Error
}
