// Package services holds the business logic of the alumnos panel.
//
// Services defined in this package:
//   - AlumnoService: list, get-for-edit and the create/update/delete operations that keep the
//     phone registry consistent with the alumnos that own each number
//   - UploadService: stores alumno photos after checking size, format and dimensions
//   - AuthService: admin login when the panel runs with authentication enabled
//
// AlumnoService can be wrapped with NewNotifyingAlumnoService so connected panels learn about writes.
package services

import (
	"github.com/mikerosasdev/crud-alumnos/internal/app/repositories"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/auth"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/filestorage"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// Services groups every service instance the controllers depend on
type Services struct {
	AlumnoService AlumnoService
	UploadService UploadService
	AuthService   AuthService
}

// Options carries what NewServices needs besides the repositories
type Options struct {
	Upload     UploadConfig
	Admin      AdminCredentials
	JWTService *auth.JWTService
	// Notifier, when set, hears about every committed alumno write
	Notifier ChangeNotifier
}

// NewServices wires the services on top of repos and the transaction manager
func NewServices(
	repos *repositories.Repositories,
	tx repositories.TxManager,
	storage filestorage.FileStorage,
	opts Options,
	logger zerolog.Logger,
) *Services {
	uploads := NewUploadService(storage, opts.Upload, logger)

	alumnos := NewAlumnoService(repos, tx, validation.New(), uploads, logger)
	if opts.Notifier != nil {
		alumnos = NewNotifyingAlumnoService(alumnos, opts.Notifier)
	}

	return &Services{
		AlumnoService: alumnos,
		UploadService: uploads,
		AuthService:   NewAuthService(opts.Admin, opts.JWTService, logger),
	}
}
