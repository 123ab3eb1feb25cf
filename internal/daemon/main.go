// Package daemon wires the configured collaborators into the web service.
package daemon

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/auth"
	"github.com/artesyoficios/studio/internal/blob"
	"github.com/artesyoficios/studio/internal/booking"
	"github.com/artesyoficios/studio/internal/config"
	"github.com/artesyoficios/studio/internal/db"
	"github.com/artesyoficios/studio/internal/notify"
	"github.com/artesyoficios/studio/internal/site"
	"github.com/artesyoficios/studio/internal/web"
	"github.com/artesyoficios/studio/internal/web/handler"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Run serves until SIGINT or SIGTERM and returns after the graceful shutdown.
func (d *Daemon) Run() error {
	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	done := make(chan error, 1)

	go func() {
		done <- d.webService.Start(addr)
	}()

	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("web service started")

	d.webService.WaitShutdown()

	if err := <-done; err != nil {
		return err
	}

	return d.Close()
}

// Close releases the database connections.
func (d *Daemon) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return errors.Wrap(err, "database handle")
	}

	return sqlDB.Close() //nolint:wrapcheck
}

// Web returns the web service.
func (d *Daemon) Web() *web.Service {
	return d.webService
}

// OpenDB opens and migrates the configured database.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(gdb); err != nil {
		return nil, err
	}

	return gdb, nil
}

// New creates a Daemon over an opened and migrated database.
func New(cfg *config.Config, gdb *gorm.DB) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	store, err := blob.New(cfg.Upload)
	if err != nil {
		return nil, errors.Wrap(err, "upload store")
	}

	notifier, err := Notifier(cfg)
	if err != nil {
		return nil, err
	}

	deps := &handler.Deps{
		Cfg:     cfg,
		DB:      gdb,
		Auth:    auth.NewService(gdb, cfg.Admin),
		Booking: booking.New(gdb, notifier),
		Blob:    store,
		Site:    site.NewLoader(site.DBSource{DB: gdb}, Cache(cfg)),
	}

	webService, err := web.New(cfg, deps)
	if err != nil {
		return nil, err
	}

	return &Daemon{cfg: cfg, db: gdb, webService: webService}, nil
}

// Notifier combines the enabled confirmation channels.
func Notifier(cfg *config.Config) (booking.Notifier, error) {
	var notifiers []booking.Notifier

	if cfg.Mail.Enabled {
		mailer, err := notify.NewMailer(cfg.Mail, cfg.Title)
		if err != nil {
			return nil, err
		}

		notifiers = append(notifiers, mailer)
	} else {
		log.Warn().Msg("mail disabled: paid reservations are not confirmed by email")
	}

	if cfg.AMQP.Enabled {
		notifiers = append(notifiers, notify.NewPublisher(cfg.AMQP))
	}

	return notify.Combine(notifiers...), nil
}

// Cache returns the redis settings cache when enabled, a memory cache otherwise.
func Cache(cfg *config.Config) site.Cache {
	if !cfg.Cache.Redis.Enabled {
		return site.NewMemoryCache()
	}

	return site.NewRedisCache(redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
	}))
}
