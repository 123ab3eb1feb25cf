package blob

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	storage_go "github.com/supabase-community/storage-go"

	"github.com/artesyoficios/studio/internal/config"
)

// ErrSupabaseConfig is returned when the bucket settings are incomplete.
var ErrSupabaseConfig = errors.New("supabase upload needs URL, Key and Bucket")

const sniffLen = 512

// Supabase uploads into a public storage bucket.
type Supabase struct {
	client *storage_go.Client
	bucket string
}

// NewSupabase returns a store for cfg.
func NewSupabase(cfg config.Supabase) (*Supabase, error) {
	if cfg.URL == "" || cfg.Key == "" || cfg.Bucket == "" {
		return nil, ErrSupabaseConfig
	}

	client := storage_go.NewClient(strings.TrimRight(cfg.URL, "/")+"/storage/v1", cfg.Key, nil)

	return &Supabase{client: client, bucket: cfg.Bucket}, nil
}

// Put implements Store.
func (s *Supabase) Put(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	br := bufio.NewReaderSize(r, sniffLen)

	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "read upload")
	}

	contentType := http.DetectContentType(head)
	name := objectName(filename)

	if _, err := s.client.UploadFile(s.bucket, name, br, storage_go.FileOptions{ContentType: &contentType}); err != nil {
		return "", errors.Wrap(err, "supabase upload")
	}

	return s.client.GetPublicUrl(s.bucket, name).SignedURL, nil
}
