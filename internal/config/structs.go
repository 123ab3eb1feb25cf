package config

import (
	"time"

	"github.com/artesyoficios/studio/internal/logger"
)

// Supported upload drivers.
const (
	UploadDriverDisk     = "disk"
	UploadDriverSupabase = "supabase"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Upload    Upload
	Mail      Mail
	AMQP      AMQP
	Cache     Cache
	Admin     Admin
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
	AllowOrigins   string // comma separated CORS origins, empty means *
	BodyLimitMB    int    // request body limit, uploads included
}

// Upload configures the blob store used for image uploads.
type Upload struct {
	Driver     string // disk or supabase
	Dir        string // disk: target directory
	PublicPath string // disk: url prefix the files are served under
	Supabase   Supabase
}

// Supabase storage bucket settings.
type Supabase struct {
	URL    string
	Key    string
	Bucket string
}

// Mail configures the smtp confirmation notifier.
type Mail struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Timeout  time.Duration
}

// AMQP configures the broker notifier publishing paid reservations.
type AMQP struct {
	Enabled bool
	URL     string
	Queue   string
}

// Cache configures the last-known-good settings cache.
type Cache struct {
	Redis Redis
}

// Redis connection settings.
type Redis struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// Admin holds the admin gate settings.
type Admin struct {
	MasterPIN    string        // universal override pin
	DefaultPIN   string        // used while no admin_pin setting was ever stored
	EnforceToken bool          // require a bearer token on admin endpoints
	TokenSecret  string        // HS256 signing secret
	TokenTTL     time.Duration // lifetime of issued tokens
}
