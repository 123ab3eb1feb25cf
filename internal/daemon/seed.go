package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/db/controller/brand"
	"github.com/artesyoficios/studio/internal/db/controller/category"
	"github.com/artesyoficios/studio/internal/db/controller/workshop"
	"github.com/artesyoficios/studio/internal/db/models"
)

// Seed fills an empty catalog with demo content. A catalog holding any
// workshop is left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Workshop{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "count workshops")
	}

	if count > 0 {
		log.Info().Int64("workshops", count).Msg("catalog not empty, seed skipped")
		return nil
	}

	ceramica, err := category.Create(db, category.Input{Name: "Cerámica"})
	if err != nil {
		return errors.Wrap(err, "seed category")
	}

	if _, err := category.Create(db, category.Input{Name: "Textil"}); err != nil {
		return errors.Wrap(err, "seed category")
	}

	demo := []workshop.Input{
		{
			Title:       "Torno de alfarero",
			Description: "Primeros pasos en el torno: centrado, apertura y levantado de piezas.",
			Price:       1500,
			Date:        "2025-03-08",
			Location:    "Taller Centro",
			Seats:       8,
			CategoryID:  ceramica.ID,
			Featured:    true,
		},
		{
			Title:       "Bordado a mano",
			Description: "Puntadas básicas y composición sobre manta.",
			Price:       900,
			Location:    "Plaza Mayor, CDMX",
			Seats:       12,
		},
	}

	for _, in := range demo {
		if _, err := workshop.Create(db, in); err != nil {
			return errors.Wrapf(err, "seed workshop %q", in.Title)
		}
	}

	if _, err := brand.Create(db, brand.Input{Name: "Artes y Oficios", LogoURL: "/uploads/logo.png"}); err != nil {
		return errors.Wrap(err, "seed brand")
	}

	log.Info().Int("workshops", len(demo)).Msg("demo catalog seeded")

	return nil
}
