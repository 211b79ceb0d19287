package seed

import (
	"context"
	"errors"

	"github.com/mikerosasdev/crud-alumnos/internal/app/models"
	"github.com/mikerosasdev/crud-alumnos/internal/app/services"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// DemoAlumnos are created on an empty database so the panel has something to show
var DemoAlumnos = []models.AlumnoInput{
	{
		Status:     models.StatusActivo,
		Nombre:     "Ana",
		Apellidos:  "López Pérez",
		Calle:      "Av. Juárez 120",
		Colonia:    "Centro",
		Correo:     "ana.lopez@example.com",
		Fotografia: "/public/img/avatar.svg",
		Telefonos:  []string{"5551234567", "5559876543"},
	},
	{
		Status:     models.StatusActivo,
		Nombre:     "Luis",
		Apellidos:  "Hernández Ruiz",
		Calle:      "Calle 5 de Mayo 33",
		Colonia:    "Roma Norte",
		Correo:     "luis.hernandez@example.com",
		Fotografia: "/public/img/avatar.svg",
		Telefonos:  []string{"5552223344"},
	},
	{
		Status:     models.StatusInactivo,
		Nombre:     "María",
		Apellidos:  "Gómez Torres",
		Calle:      "Insurgentes Sur 1500",
		Colonia:    "Del Valle",
		Correo:     "maria.gomez@example.com",
		Fotografia: "/public/img/avatar.svg",
		Telefonos:  []string{"5556667788", "5551112233"},
	},
}

// CreateDefaultData creates the demo alumnos through the regular reconciliation logic.
// Nothing is written when alumnos already exist unless force is set; conflicting records are skipped.
func CreateDefaultData(ctx context.Context, svc services.AlumnoService, lgr zerolog.Logger, force bool) (int, error) {
	count, err := svc.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 && !force {
		lgr.Info().Int64("alumnos", count).Msg("Alumnos already present, skipping seed")
		return 0, nil
	}

	lgr.Info().Msg("Creating demo alumnos...")
	var (
		created  int
		finalErr error
	)
	for _, in := range DemoAlumnos {
		_, err := svc.Create(ctx, in)
		switch {
		case err == nil:
			created++
		case apperrors.Is(err, apperrors.ErrDuplicatePhone, apperrors.ErrConflict):
			lgr.Debug().Str("correo", in.Correo).Msg("Demo alumno already exists")
		default:
			lgr.Error().Err(err).Str("correo", in.Correo).Msg("Error creating demo alumno")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("created", created).Msg("Demo data created")
	return created, finalErr
}
