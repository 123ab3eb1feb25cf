package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/artesyoficios/studio/internal/config"
	"github.com/artesyoficios/studio/internal/daemon"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the studio web service",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if cfg.DevMode {
			if dump, err := config.DumpConfigJSON(cfg); err == nil {
				log.Debug().Msg("config: " + dump)
			}
		}

		db, err := daemon.OpenDB(cfg)
		if err != nil {
			return err
		}

		d, err := daemon.New(cfg, db)
		if err != nil {
			return err
		}

		return d.Run()
	},
}
