// Package category provides CRUD operations for workshop categories.
package category

import (
	"errors"

	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/apperror"
	"github.com/artesyoficios/studio/internal/db/models"
	"github.com/artesyoficios/studio/internal/uniuri"
	"github.com/artesyoficios/studio/internal/validation"
)

// Input is the writable part of a category.
type Input struct {
	Name string `json:"name" form:"name" validate:"required"`
}

// List returns all categories, newest first.
func List(db *gorm.DB) ([]models.Category, error) {
	categories := []models.Category{}

	if err := db.Order("created_at DESC").Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

// Get returns the category with the given id.
func Get(db *gorm.DB, id string) (*models.Category, error) {
	var c models.Category

	if err := db.Where("id = ?", id).Take(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("category", id)
		}

		return nil, err
	}

	return &c, nil
}

// Create validates in and stores a new category.
func Create(db *gorm.DB, in Input) (*models.Category, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	c := &models.Category{
		ID:        uniuri.New(),
		Name:      in.Name,
		CreatedAt: models.Now(),
	}

	if err := db.Create(c).Error; err != nil {
		return nil, err
	}

	return c, nil
}

// Delete removes the category. Workshops keep their now dangling reference.
func Delete(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.Category{}).Error
}
