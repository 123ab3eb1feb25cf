package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/artesyoficios/studio/internal/daemon"
)

var seedDemo bool

func init() { //nolint: gochecknoinits
	migrateCmd.Flags().BoolVar(&seedDemo, "seed", false, "fill an empty catalog with demo content")

	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := daemon.OpenDB(cfg)
		if err != nil {
			return err
		}

		log.Info().Str("engine", cfg.DB.GormEngine).Msg("schema migrated")

		if seedDemo {
			return daemon.Seed(db)
		}

		return nil
	},
}
