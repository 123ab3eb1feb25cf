package blob

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultPublicPath is the URL prefix of the disk store.
const DefaultPublicPath = "/uploads"

// Disk writes files into a local directory that the web server exposes under
// its public path.
type Disk struct {
	dir        string
	publicPath string
}

// NewDisk creates dir if needed.
func NewDisk(dir, publicPath string) (*Disk, error) {
	if dir == "" {
		dir = "uploads"
	}

	if publicPath == "" {
		publicPath = DefaultPublicPath
	}

	if err := os.MkdirAll(dir, 0o750); err != nil { //nolint:mnd
		return nil, errors.Wrap(err, "create upload directory")
	}

	return &Disk{dir: dir, publicPath: publicPath}, nil
}

// Dir is the directory files are written to.
func (d *Disk) Dir() string {
	return d.dir
}

// PublicPath is the URL prefix files are served under.
func (d *Disk) PublicPath() string {
	return d.publicPath
}

// Put implements Store.
func (d *Disk) Put(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := objectName(filename)

	f, err := os.OpenFile(filepath.Join(d.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640) //nolint:mnd
	if err != nil {
		return "", errors.Wrap(err, "create upload")
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())

		return "", errors.Wrap(err, "write upload")
	}

	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, "close upload")
	}

	return path.Join(d.publicPath, name), nil
}
