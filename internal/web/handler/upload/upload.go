// Package upload provides the image upload endpoint.
package upload

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/artesyoficios/studio/internal/apperror"
	"github.com/artesyoficios/studio/internal/blob"
	"github.com/artesyoficios/studio/internal/web/handler"
)

const (
	// Path is the path of the upload endpoint below the API prefix.
	Path = "/upload"

	// FormField is the multipart field carrying the file.
	FormField = "file"

	// MsgFileRequired is returned when the request carries no file.
	MsgFileRequired = "file required"
)

// Service is the upload handler service.
type Service struct {
	handler.Service
	store blob.Store
}

// Handler is the upload handler.
var Handler = Service{}

// Init registers the upload route.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil || !deps.Valid() || deps.Blob == nil {
		return handler.ErrNilDeps
	}

	s.store = deps.Blob

	router.Post(Path, deps.Admin(), s.Post)

	return nil
}

// Post stores the uploaded file and returns {url}.
func (s *Service) Post(c *fiber.Ctx) error {
	fh, err := c.FormFile(FormField)
	if err != nil {
		return handler.Error(c, apperror.Validation(MsgFileRequired))
	}

	f, err := fh.Open()
	if err != nil {
		return handler.Error(c, err)
	}
	defer func() { _ = f.Close() }()

	url, err := s.store.Put(c.UserContext(), fh.Filename, f)
	if err != nil {
		return handler.Error(c, apperror.Dependency("blob store", err))
	}

	log.Info().Str("filename", fh.Filename).Int64("size", fh.Size).Str("url", url).Msg("file uploaded")

	return c.JSON(fiber.Map{"url": url})
}
