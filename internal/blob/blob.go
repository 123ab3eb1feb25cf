// Package blob stores uploaded files and returns the URL they are served at.
package blob

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/artesyoficios/studio/internal/config"
	"github.com/artesyoficios/studio/internal/uniuri"
)

// ErrUnknownDriver is returned by New for an unsupported upload driver.
var ErrUnknownDriver = errors.New("unknown upload driver")

// Store persists a file and returns its public URL.
type Store interface {
	Put(ctx context.Context, filename string, r io.Reader) (string, error)
}

// New returns the store selected by cfg.Driver.
func New(cfg config.Upload) (Store, error) {
	switch cfg.Driver {
	case "", config.UploadDriverDisk:
		return NewDisk(cfg.Dir, cfg.PublicPath)
	case config.UploadDriverSupabase:
		return NewSupabase(cfg.Supabase)
	default:
		return nil, errors.Wrap(ErrUnknownDriver, cfg.Driver)
	}
}

// objectName is a random name keeping the extension of the uploaded file.
func objectName(filename string) string {
	return uniuri.New() + strings.ToLower(filepath.Ext(filepath.Base(filename)))
}
