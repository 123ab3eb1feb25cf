// Package workshop provides the workshop catalog: CRUD operations, the category
// join and the lazy migration of legacy single-date workshops to sessions.
package workshop

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artesyoficios/studio/internal/apperror"
	"github.com/artesyoficios/studio/internal/db/controller/session"
	"github.com/artesyoficios/studio/internal/db/models"
	"github.com/artesyoficios/studio/internal/uniuri"
	"github.com/artesyoficios/studio/internal/validation"
)

// Input is the writable part of a workshop. Price must be non-zero.
type Input struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       int      `json:"price"       validate:"required"`
	Date        string   `json:"date"`
	Location    string   `json:"location"    validate:"required"`
	Seats       int      `json:"seats"`
	CategoryID  string   `json:"category_id"`
	Images      []string `json:"images"`
	MapEmbed    string   `json:"map_embed"`
	Featured    bool     `json:"featured"`
}

// editableColumns are replaced by Update.
var editableColumns = []string{
	"title", "description", "price", "date", "location", "seats",
	"category_id", "images", "map_embed", "featured", "updated_at",
}

func (in Input) apply(w *models.Workshop) {
	w.Title = in.Title
	w.Description = in.Description
	w.Price = in.Price
	w.Date = in.Date
	w.Location = in.Location
	w.Seats = in.Seats
	w.MapEmbed = in.MapEmbed
	w.Featured = in.Featured

	w.CategoryID = nil
	if in.CategoryID != "" {
		categoryID := in.CategoryID
		w.CategoryID = &categoryID
	}

	w.Images = in.Images
	if w.Images == nil {
		w.Images = []string{}
	}
}

// catalog selects workshops with their category name and sessions.
func catalog(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Workshop{}).
		Select("workshops.*, COALESCE(categories.name, '') AS category_name").
		Joins("LEFT JOIN categories ON categories.id = workshops.category_id").
		Preload("Sessions", session.OrderByDate)
}

// List returns the catalog ordered by legacy date. A non-empty category keeps
// the workshops whose category id or category name equals it.
//
// Workshops with a legacy date and no session get one session mirroring the
// legacy date, location and seats. Once a workshop has any session this never
// happens again.
func List(db *gorm.DB, category string) ([]models.Workshop, error) {
	workshops := []models.Workshop{}

	q := catalog(db).Order("workshops.date ASC")
	if category != "" {
		q = q.Where("workshops.category_id = ? OR categories.name = ?", category, category)
	}

	if err := q.Find(&workshops).Error; err != nil {
		return nil, err
	}

	for i := range workshops {
		w := &workshops[i]
		if len(w.Sessions) > 0 || w.Date == "" {
			continue
		}

		sessions, err := backfill(db, w)
		if err != nil {
			return nil, err
		}

		w.Sessions = sessions
	}

	return workshops, nil
}

// backfill runs in a transaction holding the workshop row lock and re-checks
// for sessions inside it, so concurrent listings insert the legacy session once.
// It returns the sessions of the workshop after the check.
func backfill(db *gorm.DB, w *models.Workshop) ([]models.Session, error) {
	var sessions []models.Session

	err := db.Transaction(func(tx *gorm.DB) error {
		var locked models.Workshop
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").Where("id = ?", w.ID).Take(&locked).Error; err != nil {
			return err
		}

		existing, err := session.ListByWorkshop(tx, w.ID)
		if err != nil {
			return err
		}

		if len(existing) > 0 {
			sessions = existing
			return nil
		}

		s, err := session.Insert(tx, models.Session{
			WorkshopID: w.ID,
			Date:       w.Date,
			Time:       models.DefaultSessionTime,
			Location:   w.Location,
			Seats:      w.Seats,
		})
		if err != nil {
			return err
		}

		log.Info().Str("workshop_id", w.ID).Str("session_id", s.ID).Msg("legacy workshop date migrated to session")

		sessions = []models.Session{*s}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// Get returns the workshop with its category name and sessions.
func Get(db *gorm.DB, id string) (*models.Workshop, error) {
	var w models.Workshop

	if err := catalog(db).Where("workshops.id = ?", id).Take(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("workshop", id)
		}

		return nil, err
	}

	return &w, nil
}

// Create validates in and stores a new workshop. A legacy date also creates the
// first session in a second, independent write.
func Create(db *gorm.DB, in Input) (*models.Workshop, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	stamp := models.Now()
	w := &models.Workshop{
		ID:        uniuri.New(),
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
	in.apply(w)

	if err := db.Omit(clause.Associations).Create(w).Error; err != nil {
		return nil, err
	}

	if w.Date != "" {
		s, err := backfill(db, w)
		if err != nil {
			return nil, err
		}

		w.Sessions = s
	}

	return w, nil
}

// Update validates in and replaces every editable column. Unknown ids are a no-op.
// Sessions are not touched.
func Update(db *gorm.DB, id string, in Input) error {
	if err := validation.Struct(in); err != nil {
		return err
	}

	w := &models.Workshop{UpdatedAt: models.Now()}
	in.apply(w)

	return db.Model(&models.Workshop{}).
		Where("id = ?", id).
		Select(editableColumns).
		Omit(clause.Associations).
		Updates(w).
		Error
}

// Delete removes the workshop. Its sessions and reservations are kept.
func Delete(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.Workshop{}).Error
}
