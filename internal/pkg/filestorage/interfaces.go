package filestorage

import (
	"io"
)

// FileStorage defines the storage operations used for alumno photos
type FileStorage interface {
	// Save stores the content under a generated name keeping ext, and returns the public URL
	Save(content io.Reader, ext string) (string, error)

	// Delete removes a previously stored file given its public URL or path
	Delete(fileURL string) error

	// FullPath returns the filesystem path for a given public URL
	FullPath(fileURL string) string
}
