package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/filestorage"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func newUploadFixture(t *testing.T, cfg UploadConfig) (UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)
	if cfg.MaxBytes == 0 {
		cfg.MaxBytes = 1 << 20
	}
	cfg.URLPrefix = "/uploads"
	return NewUploadService(storage, cfg, zerolog.Nop()), dir
}

func TestUploadPhoto_StoresImage(t *testing.T) {
	svc, dir := newUploadFixture(t, UploadConfig{PhotoWidth: 350, PhotoHeight: 350, EnforceDimensions: true})

	photo, err := svc.UploadPhoto(context.Background(), bytes.NewReader(pngBytes(t, 350, 350)))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(photo.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(photo.URL, ".png"))
	assert.Equal(t, 350, photo.Width)
	assert.Equal(t, "png", photo.Format)
	_, err = os.Stat(filepath.Join(dir, filepath.Base(photo.URL)))
	assert.NoError(t, err)
}

func TestUploadPhoto_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		cfg     UploadConfig
		content func(t *testing.T) []byte
		target  error
	}{
		{
			name:    "wrong dimensions",
			cfg:     UploadConfig{PhotoWidth: 350, PhotoHeight: 350, EnforceDimensions: true},
			content: func(t *testing.T) []byte { return pngBytes(t, 200, 350) },
			target:  apperrors.ErrInvalidPhotoFormat,
		},
		{
			name:    "not an image",
			cfg:     UploadConfig{PhotoWidth: 350, PhotoHeight: 350},
			content: func(t *testing.T) []byte { return []byte("%PDF-1.4 not a photo") },
			target:  apperrors.ErrUnsupportedImage,
		},
		{
			name:    "too large",
			cfg:     UploadConfig{MaxBytes: 16, PhotoWidth: 350, PhotoHeight: 350},
			content: func(t *testing.T) []byte { return pngBytes(t, 350, 350) },
			target:  apperrors.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, dir := newUploadFixture(t, tt.cfg)

			_, err := svc.UploadPhoto(context.Background(), bytes.NewReader(tt.content(t)))

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target))
			entries, _ := os.ReadDir(dir)
			assert.Empty(t, entries)
		})
	}
}

func TestUploadPhoto_DimensionsNotEnforced(t *testing.T) {
	svc, _ := newUploadFixture(t, UploadConfig{PhotoWidth: 350, PhotoHeight: 350})

	photo, err := svc.UploadPhoto(context.Background(), bytes.NewReader(pngBytes(t, 20, 10)))

	require.NoError(t, err)
	assert.Equal(t, 20, photo.Width)
	assert.Equal(t, 10, photo.Height)
}

func TestReleasePhoto(t *testing.T) {
	svc, dir := newUploadFixture(t, UploadConfig{PhotoWidth: 1, PhotoHeight: 1})
	photo, err := svc.UploadPhoto(context.Background(), bytes.NewReader(pngBytes(t, 1, 1)))
	require.NoError(t, err)

	// external URLs are never touched
	svc.ReleasePhoto("https://cdn.example.com/uploads/" + filepath.Base(photo.URL))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(photo.URL)))
	require.NoError(t, err)

	svc.ReleasePhoto(photo.URL)
	_, err = os.Stat(filepath.Join(dir, filepath.Base(photo.URL)))
	assert.True(t, os.IsNotExist(err))
}
