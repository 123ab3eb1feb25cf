package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artesyoficios/studio/internal/config"
)

func TestDiskPut(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	d, err := NewDisk(dir, "/uploads")
	require.NoError(t, err)

	url, err := d.Put(context.Background(), "Foto Taller.JPG", strings.NewReader("image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))

	other, err := d.Put(context.Background(), "Foto Taller.JPG", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotEqual(t, url, other, "every upload gets its own name")
}

func TestDiskPutCanceled(t *testing.T) {
	d, err := NewDisk(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPublicPath, d.PublicPath())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = d.Put(ctx, "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestObjectName(t *testing.T) {
	testCases := []struct {
		filename string
		ext      string
	}{
		{filename: "a.png", ext: ".png"},
		{filename: "../../etc/passwd", ext: ""},
		{filename: "noext", ext: ""},
		{filename: "archive.tar.GZ", ext: ".gz"},
	}

	for _, tc := range testCases {
		t.Run(tc.filename, func(t *testing.T) {
			name := objectName(tc.filename)
			assert.Equal(t, tc.ext, filepath.Ext(name))
			assert.NotContains(t, name, "/")
		})
	}
}

func TestNew(t *testing.T) {
	s, err := New(config.Upload{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &Disk{}, s)

	_, err = New(config.Upload{Driver: config.UploadDriverSupabase})
	assert.ErrorIs(t, err, ErrSupabaseConfig)

	s, err = New(config.Upload{Driver: config.UploadDriverSupabase, Supabase: config.Supabase{
		URL: "https://example.supabase.co", Key: "k", Bucket: "images",
	}})
	require.NoError(t, err)
	assert.IsType(t, &Supabase{}, s)

	_, err = New(config.Upload{Driver: "ftp"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
