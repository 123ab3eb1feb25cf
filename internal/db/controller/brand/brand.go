// Package brand provides CRUD operations for partner brands.
package brand

import (
	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/db/models"
	"github.com/artesyoficios/studio/internal/uniuri"
	"github.com/artesyoficios/studio/internal/validation"
)

// Input is the writable part of a brand. Updates replace both fields.
type Input struct {
	Name    string `json:"name"     form:"name"     validate:"required"`
	LogoURL string `json:"logo_url" form:"logo_url" validate:"required"`
}

// List returns all brands, newest first.
func List(db *gorm.DB) ([]models.Brand, error) {
	brands := []models.Brand{}

	if err := db.Order("created_at DESC").Find(&brands).Error; err != nil {
		return nil, err
	}

	return brands, nil
}

// Create validates in and stores a new brand.
func Create(db *gorm.DB, in Input) (*models.Brand, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	b := &models.Brand{
		ID:        uniuri.New(),
		Name:      in.Name,
		LogoURL:   in.LogoURL,
		CreatedAt: models.Now(),
	}

	if err := db.Create(b).Error; err != nil {
		return nil, err
	}

	return b, nil
}

// Update replaces name and logo of the brand. Unknown ids are a no-op.
func Update(db *gorm.DB, id string, in Input) error {
	if err := validation.Struct(in); err != nil {
		return err
	}

	return db.Model(&models.Brand{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": in.Name, "logo_url": in.LogoURL}).
		Error
}

// Delete removes the brand.
func Delete(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.Brand{}).Error
}
