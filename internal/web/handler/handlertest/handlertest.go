// Package handlertest builds fiber apps with in-memory dependencies for the
// handler tests.
package handlertest

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/auth"
	"github.com/artesyoficios/studio/internal/blob"
	"github.com/artesyoficios/studio/internal/booking"
	"github.com/artesyoficios/studio/internal/config"
	"github.com/artesyoficios/studio/internal/db/dbtest"
	"github.com/artesyoficios/studio/internal/notify"
	"github.com/artesyoficios/studio/internal/site"
	"github.com/artesyoficios/studio/internal/web/handler"
)

// MasterPIN and DefaultPIN of the test configuration.
const (
	MasterPIN  = "100202"
	DefaultPIN = "1234"
)

// NoOpViews is a minimal fiber views engine. It writes the "Error" entry of
// the data map when present, the template name otherwise.
type NoOpViews struct{}

// Load implements fiber.Views.
func (NoOpViews) Load() error { return nil }

// Render implements fiber.Views.
func (NoOpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		if v, exists := m["Error"].(string); exists && v != "" {
			_, _ = io.WriteString(w, v)
			return nil
		}
	}

	_, _ = io.WriteString(w, name)

	return nil
}

// Config returns a configuration for tests.
func Config() *config.Config {
	return &config.Config{
		Title: "Artes y Oficios",
		Webserver: config.Webserver{
			URL:  "http://localhost",
			Port: 4000,
		},
		Admin: config.Admin{
			MasterPIN:   MasterPIN,
			DefaultPIN:  DefaultPIN,
			TokenSecret: "test-secret",
			TokenTTL:    time.Hour,
		},
	}
}

// Env is a test app with its collaborators.
type Env struct {
	App  *fiber.App
	DB   *gorm.DB
	Deps *handler.Deps
}

// New returns the collaborators backed by an in-memory database and a disk
// blob store in a temporary directory. The notifier may be nil.
func New(t *testing.T, cfg *config.Config, notifier booking.Notifier) *Env {
	t.Helper()

	if cfg == nil {
		cfg = Config()
	}

	if notifier == nil {
		notifier = notify.Discard
	}

	db := dbtest.Open(t)

	store, err := blob.NewDisk(t.TempDir(), blob.DefaultPublicPath)
	require.NoError(t, err)

	bookingService := booking.New(db, notifier)
	t.Cleanup(bookingService.Wait)

	return &Env{
		App: fiber.New(fiber.Config{Views: NoOpViews{}}),
		DB:  db,
		Deps: &handler.Deps{
			Cfg:     cfg,
			DB:      db,
			Auth:    auth.NewService(db, cfg.Admin),
			Booking: bookingService,
			Blob:    store,
			Site:    site.NewLoader(site.DBSource{DB: db}, nil),
		},
	}
}

// API mounts h below the API prefix.
func (e *Env) API(t *testing.T, h handler.Service) *Env {
	t.Helper()

	require.NoError(t, h.Init(e.App.Group(handler.APIPrefix), e.Deps))

	return e
}

// Token returns a valid admin bearer token.
func (e *Env) Token(t *testing.T) string {
	t.Helper()

	token, err := e.Deps.Auth.Issue()
	require.NoError(t, err)

	return token
}

// Response is a decoded test response.
type Response struct {
	Status int
	Body   []byte
	Header http.Header
}

// Decode unmarshals the body into out.
func (r Response) Decode(t *testing.T, out interface{}) {
	t.Helper()

	require.NoError(t, json.Unmarshal(r.Body, out), string(r.Body))
}

// Map decodes the body as a JSON object.
func (r Response) Map(t *testing.T) map[string]interface{} {
	t.Helper()

	var m map[string]interface{}
	r.Decode(t, &m)

	return m
}

// Do sends a JSON request. A nil body sends none, an empty token no
// Authorization header.
func (e *Env) Do(t *testing.T, method, path string, body interface{}, token string) Response {
	t.Helper()

	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	return e.send(t, req, token)
}

// Upload sends a multipart request carrying content under field.
func (e *Env) Upload(t *testing.T, path, field, filename string, content []byte, token string) Response {
	t.Helper()

	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)

		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	return e.send(t, req, token)
}

// Send issues an arbitrary request.
func (e *Env) Send(t *testing.T, req *http.Request) Response {
	t.Helper()

	return e.send(t, req, "")
}

func (e *Env) send(t *testing.T, req *http.Request, token string) Response {
	t.Helper()

	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.App.Test(req, -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return Response{Status: resp.StatusCode, Body: raw, Header: resp.Header}
}
