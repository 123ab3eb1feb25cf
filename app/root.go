// Package app implements the main application commands.
package app

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/artesyoficios/studio/internal/config"
	"github.com/artesyoficios/studio/internal/logger"
)

var (
	configPath string // directory holding main.toml
	devMode    bool

	rootCmd = &cobra.Command{
		Use:   "studio",
		Short: "studio serves the workshop catalog and booking site of a craft studio",
		Long: `studio serves the public site of a craft studio: the workshop catalog,
session booking, the admin API and the content settings of the page.`,
		Args:         cobra.OnlyValidArgs,
		SilenceUsage: true,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "directory holding main.toml")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Enable dev mode")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads an optional .env, the config file and initializes the logger.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, pkgerrors.Wrap(err, "load .env")
	}

	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if devMode {
		cfg.DevMode = true
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, pkgerrors.Wrap(err, "init logger")
	}

	return &cfg, nil
}
