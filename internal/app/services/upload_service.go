package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mikerosasdev/crud-alumnos/internal/app/models"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/filestorage"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/imagecheck"
	"github.com/rs/zerolog"
)

// UploadConfig limits accepted photos
type UploadConfig struct {
	MaxBytes          int64
	PhotoWidth        int
	PhotoHeight       int
	EnforceDimensions bool
	// URLPrefix is the public prefix of stored files; photos outside it are never released
	URLPrefix string
}

// PhotoReleaser frees a stored photo once no alumno points to it
type PhotoReleaser interface {
	ReleasePhoto(url string)
}

// UploadService stores alumno photos
type UploadService interface {
	PhotoReleaser
	UploadPhoto(ctx context.Context, content io.Reader) (*models.Photo, error)
}

type uploadServiceImpl struct {
	storage filestorage.FileStorage
	config  UploadConfig
	logger  zerolog.Logger
}

// NewUploadService creates a new upload service instance
func NewUploadService(storage filestorage.FileStorage, config UploadConfig, logger zerolog.Logger) UploadService {
	return &uploadServiceImpl{
		storage: storage,
		config:  config,
		logger:  logger,
	}
}

// UploadPhoto checks size, format and dimensions before writing the photo to storage
func (s *uploadServiceImpl) UploadPhoto(ctx context.Context, content io.Reader) (*models.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// one extra byte tells an oversized file apart from one exactly at the limit
	data, err := io.ReadAll(io.LimitReader(content, s.config.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("error reading upload: %w", err)
	}
	if int64(len(data)) > s.config.MaxBytes {
		return nil, apperrors.NewCustomError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("La fotografía no debe exceder %d MB", s.config.MaxBytes/(1024*1024)))
	}

	dims, err := imagecheck.Decode(bytes.NewReader(data))
	if err != nil {
		s.logger.Debug().Err(err).Msg("Rejected upload with unknown image format")
		return nil, apperrors.NewCustomError(apperrors.ErrUnsupportedImage,
			"La fotografía debe ser una imagen JPG, PNG, GIF o WEBP")
	}

	if s.config.EnforceDimensions && !dims.Matches(s.config.PhotoWidth, s.config.PhotoHeight) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidPhotoFormat,
			fmt.Sprintf("La fotografía debe medir %dx%d píxeles", s.config.PhotoWidth, s.config.PhotoHeight)).
			WithDetails(map[string]interface{}{"width": dims.Width, "height": dims.Height})
	}

	url, err := s.storage.Save(bytes.NewReader(data), dims.Extension())
	if err != nil {
		return nil, fmt.Errorf("error storing photo: %w", err)
	}

	return &models.Photo{
		URL:    url,
		Width:  dims.Width,
		Height: dims.Height,
		Format: dims.Format,
	}, nil
}

// ReleasePhoto deletes a photo stored by this service. External URLs are left alone.
func (s *uploadServiceImpl) ReleasePhoto(url string) {
	if url == "" || s.config.URLPrefix == "" || !strings.HasPrefix(url, s.config.URLPrefix+"/") {
		return
	}
	if err := s.storage.Delete(url); err != nil {
		s.logger.Warn().Err(err).Str("url", url).Msg("Failed to release photo")
	}
}
