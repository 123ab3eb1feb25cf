package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/artesyoficios/studio/internal/blob"
	"github.com/artesyoficios/studio/internal/config"
	fiberlogger "github.com/artesyoficios/studio/internal/logger/adapter/fiber"
	"github.com/artesyoficios/studio/internal/web/handler"
	"github.com/artesyoficios/studio/internal/web/handler/brand"
	"github.com/artesyoficios/studio/internal/web/handler/category"
	"github.com/artesyoficios/studio/internal/web/handler/home"
	"github.com/artesyoficios/studio/internal/web/handler/reservation"
	"github.com/artesyoficios/studio/internal/web/handler/session"
	"github.com/artesyoficios/studio/internal/web/handler/setting"
	"github.com/artesyoficios/studio/internal/web/handler/unlock"
	"github.com/artesyoficios/studio/internal/web/handler/upload"
	"github.com/artesyoficios/studio/internal/web/handler/workshop"
)

const (
	// HealthPath answers load balancer checks.
	HealthPath = handler.APIPrefix + "/health"
	// MetricsPath exposes the prometheus registry.
	MetricsPath = "/metrics"

	megabyte = 1 << 20
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	deps         *handler.Deps
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the service down.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown

	// confirmations already accepted are still delivered
	s.deps.Booking.Wait()

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the web service and registers every handler.
func New(cfg *config.Config, deps *handler.Deps) (*Service, error) {
	if cfg == nil {
		return nil, pkgerrors.New("config cannot be nil")
	}

	if !deps.Valid() {
		return nil, handler.ErrNilDeps
	}

	templateEngine := html.NewFileSystem(http.FS(subFS(embeddedTemplates, "templates")), ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	templateEngine.AddFunc("currency", Currency)

	bodyLimit := cfg.Webserver.BodyLimitMB * megabyte
	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			BodyLimit:      bodyLimit,
			Views:          templateEngine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{Config: cfg.Log, CheckAliveURI: HealthPath}))

	allowOrigins := cfg.Webserver.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root: http.FS(subFS(embeddedStaticFiles, "static")),
			},
		),
	)

	if disk, ok := deps.Blob.(*blob.Disk); ok {
		app.Static(disk.PublicPath(), disk.Dir())
	}

	service := &Service{
		App:  app,
		cfg:  cfg,
		deps: deps,
	}
	service.alive.Store(true)

	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	app.Get(HealthPath, service.health)

	api := app.Group(handler.APIPrefix)

	apiHandlers := []handler.Service{
		&workshop.Handler,
		&category.Handler,
		&brand.Handler,
		&session.Handler,
		&reservation.Handler,
		&setting.Handler,
		&upload.Handler,
		&unlock.Handler,
	}

	for _, h := range apiHandlers {
		if err := h.Init(api, deps); err != nil {
			return nil, pkgerrors.Wrapf(err, "init %T", h)
		}
	}

	if err := home.Handler.Init(app, deps); err != nil {
		return nil, pkgerrors.Wrap(err, "init home")
	}

	return service, nil
}

func (s *Service) health(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"ok": false})
	}

	return c.JSON(fiber.Map{"ok": true})
}

// Currency formats whole pesos with thousands separators, e.g. $1,500.
func Currency(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)

	var b strings.Builder

	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(r)
	}

	return sign + "$" + b.String()
}
