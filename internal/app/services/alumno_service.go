package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mikerosasdev/crud-alumnos/internal/app/models"
	"github.com/mikerosasdev/crud-alumnos/internal/app/repositories"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// AlumnoService defines the interface for alumno-related operations
type AlumnoService interface {
	List(ctx context.Context) ([]*models.AlumnoListItem, error)
	GetForEdit(ctx context.Context, id string) (*models.Alumno, error)
	Create(ctx context.Context, in models.AlumnoInput) (*models.Alumno, error)
	Update(ctx context.Context, id string, in models.AlumnoInput) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// alumnoServiceImpl reconciles the phone registry on every write.
// Reads go through repos; writes run inside a single transaction obtained from tx.
type alumnoServiceImpl struct {
	repos     *repositories.Repositories
	tx        repositories.TxManager
	validator *validation.Validator
	photos    PhotoReleaser
	logger    zerolog.Logger
}

// NewAlumnoService creates a new alumno service instance
func NewAlumnoService(
	repos *repositories.Repositories,
	tx repositories.TxManager,
	validator *validation.Validator,
	photos PhotoReleaser,
	logger zerolog.Logger,
) AlumnoService {
	return &alumnoServiceImpl{
		repos:     repos,
		tx:        tx,
		validator: validator,
		photos:    photos,
		logger:    logger,
	}
}

// releasePhoto runs after commit; photos is optional
func (s *alumnoServiceImpl) releasePhoto(url string) {
	if s.photos != nil && url != "" {
		s.photos.ReleasePhoto(url)
	}
}

// parseID turns a path id into a UUID. A malformed id cannot name an alumno, so it is NotFound.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperrors.ErrAlumnoNotFound
	}
	return parsed, nil
}

func (s *alumnoServiceImpl) validate(in models.AlumnoInput) error {
	message, ok, err := s.validator.Struct(in)
	if err != nil {
		return fmt.Errorf("error validating alumno: %w", err)
	}
	if !ok {
		return apperrors.NewValidationError(message)
	}
	return nil
}

// alreadyRegistered fails with DuplicatePhone when any of numbers is in the phone registry.
// Offending numbers are listed in the order they were submitted.
func alreadyRegistered(ctx context.Context, phones repositories.PhoneStore, numbers []string) error {
	if len(numbers) == 0 {
		return nil
	}

	existing, err := phones.FindByNumbers(ctx, numbers)
	if err != nil {
		return fmt.Errorf("error checking phone registry: %w", err)
	}
	if len(existing) == 0 {
		return nil
	}

	found := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		found[p.Number] = struct{}{}
	}
	dup := make([]string, 0, len(existing))
	for _, n := range numbers {
		if _, ok := found[n]; ok {
			dup = append(dup, n)
		}
	}
	return apperrors.NewDuplicatePhoneError(dup)
}

// List returns every alumno with its phone numbers resolved
func (s *alumnoServiceImpl) List(ctx context.Context) ([]*models.AlumnoListItem, error) {
	items, err := s.repos.AlumnoRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving alumnos: %w", err)
	}
	return items, nil
}

// GetForEdit returns one alumno with its full phone records
func (s *alumnoServiceImpl) GetForEdit(ctx context.Context, id string) (*models.Alumno, error) {
	alumnoID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	alumno, err := s.repos.AlumnoRepository.GetByID(ctx, alumnoID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlumnoNotFound) {
			return nil, apperrors.ErrAlumnoNotFound
		}
		return nil, fmt.Errorf("error retrieving alumno: %w", err)
	}
	return alumno, nil
}

// Create registers the alumno and one phone record per submitted number
func (s *alumnoServiceImpl) Create(ctx context.Context, in models.AlumnoInput) (*models.Alumno, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	alumno := &models.Alumno{}
	alumno.Apply(in)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		if err := alreadyRegistered(ctx, repos.PhoneRepository, in.Telefonos); err != nil {
			return err
		}

		phones, err := repos.PhoneRepository.CreateMany(ctx, in.Telefonos)
		if err != nil {
			return err
		}

		alumno.PhoneIDs = models.IDs(phones)
		alumno.Telefonos = phones
		return repos.AlumnoRepository.Create(ctx, alumno)
	})
	if err != nil {
		return nil, s.writeError("create", err)
	}

	s.logger.Info().Str("alumnoId", alumno.ID.String()).Int("telefonos", len(alumno.Telefonos)).Msg("Alumno created")
	return alumno, nil
}

// Update rewrites the alumno fields and reconciles its phones against the submitted numbers.
// Numbers kept across the update keep their phone record.
func (s *alumnoServiceImpl) Update(ctx context.Context, id string, in models.AlumnoInput) error {
	alumnoID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.validate(in); err != nil {
		return err
	}

	var (
		added, removed int
		oldPhoto       string
	)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		alumno, err := repos.AlumnoRepository.GetByIDForUpdate(ctx, alumnoID)
		if err != nil {
			return err
		}

		byNumber := make(map[string]uuid.UUID, len(alumno.Telefonos)+len(in.Telefonos))
		for _, p := range alumno.Telefonos {
			byNumber[p.Number] = p.ID
		}

		var newNumbers []string
		wanted := make(map[string]struct{}, len(in.Telefonos))
		for _, n := range in.Telefonos {
			wanted[n] = struct{}{}
			if _, ok := byNumber[n]; !ok {
				newNumbers = append(newNumbers, n)
			}
		}

		if err := alreadyRegistered(ctx, repos.PhoneRepository, newNumbers); err != nil {
			return err
		}

		created, err := repos.PhoneRepository.CreateMany(ctx, newNumbers)
		if err != nil {
			return err
		}
		for _, p := range created {
			byNumber[p.Number] = p.ID
		}

		var stale []uuid.UUID
		for _, p := range alumno.Telefonos {
			if _, ok := wanted[p.Number]; !ok {
				stale = append(stale, p.ID)
			}
		}
		if err := repos.PhoneRepository.DeleteByIDs(ctx, stale); err != nil {
			return err
		}

		phones := make([]models.Phone, len(in.Telefonos))
		for i, n := range in.Telefonos {
			phones[i] = models.Phone{ID: byNumber[n], Number: n}
		}

		oldPhoto = alumno.Fotografia
		alumno.Apply(in)
		if err := repos.AlumnoRepository.Update(ctx, alumno); err != nil {
			return err
		}
		if err := repos.AlumnoRepository.SetPhones(ctx, alumno.ID, phones); err != nil {
			return err
		}

		added, removed = len(created), len(stale)
		return nil
	})
	if err != nil {
		return s.writeError("update", err)
	}
	if oldPhoto != in.Fotografia {
		s.releasePhoto(oldPhoto)
	}

	s.logger.Info().
		Str("alumnoId", alumnoID.String()).
		Int("phonesAdded", added).
		Int("phonesRemoved", removed).
		Msg("Alumno updated")
	return nil
}

// Delete removes the alumno and every phone record it owned
func (s *alumnoServiceImpl) Delete(ctx context.Context, id string) error {
	alumnoID, err := parseID(id)
	if err != nil {
		return err
	}

	var photo string
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		alumno, err := repos.AlumnoRepository.GetByIDForUpdate(ctx, alumnoID)
		if err != nil {
			return err
		}
		photo = alumno.Fotografia
		if err := repos.PhoneRepository.DeleteByIDs(ctx, alumno.PhoneIDs); err != nil {
			return err
		}
		return repos.AlumnoRepository.Delete(ctx, alumnoID)
	})
	if err != nil {
		return s.writeError("delete", err)
	}
	s.releasePhoto(photo)

	s.logger.Info().Str("alumnoId", alumnoID.String()).Msg("Alumno deleted")
	return nil
}

// Count returns the number of registered alumnos
func (s *alumnoServiceImpl) Count(ctx context.Context) (int64, error) {
	n, err := s.repos.AlumnoRepository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting alumnos: %w", err)
	}
	return n, nil
}

// writeError passes domain errors through untouched and wraps everything else
func (s *alumnoServiceImpl) writeError(op string, err error) error {
	if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrDuplicatePhone, apperrors.ErrConflict, apperrors.ErrValidationFailed) {
		return err
	}
	s.logger.Error().Err(err).Str("operation", op).Msg("Alumno write failed")
	return fmt.Errorf("error on alumno %s: %w", op, err)
}
