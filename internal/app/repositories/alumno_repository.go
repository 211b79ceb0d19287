package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mikerosasdev/crud-alumnos/internal/app/models"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/dberrors"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/logger"
)

var alumnoColumns = []string{
	"a.id", "a.status", "a.nombre", "a.apellidos", "a.calle", "a.colonia",
	"a.correo", "a.fotografia", "a.created_at", "a.updated_at",
}

// AlumnoRepository handles database operations for the student registry
type AlumnoRepository struct {
	db DBTX
}

// NewAlumnoRepository creates a new alumno repository
func NewAlumnoRepository(db DBTX) *AlumnoRepository {
	return &AlumnoRepository{db: db}
}

func (r *AlumnoRepository) selectAlumnoQuery() squirrel.SelectBuilder {
	return psql.Select(alumnoColumns...).From("alumnos a")
}

func scanAlumno(row pgx.Row) (*models.Alumno, error) {
	var a models.Alumno
	err := row.Scan(
		&a.ID, &a.Status, &a.Nombre, &a.Apellidos, &a.Calle, &a.Colonia,
		&a.Correo, &a.Fotografia, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlumnoNotFound
		}
		return nil, fmt.Errorf("error scanning alumno: %w", err)
	}
	return &a, nil
}

// List returns every alumno with its phone numbers resolved, oldest first
func (r *AlumnoRepository) List(ctx context.Context) ([]*models.AlumnoListItem, error) {
	sql, args, err := psql.Select(
		"a.id", "a.status", "a.nombre", "a.apellidos", "a.calle", "a.colonia", "a.correo", "a.fotografia",
		"COALESCE(array_agg(p.number ORDER BY at.position) FILTER (WHERE p.id IS NOT NULL), '{}') AS numbers",
	).
		From("alumnos a").
		LeftJoin("alumno_telefonos at ON at.alumno_id = a.id").
		LeftJoin("phones p ON p.id = at.phone_id").
		GroupBy("a.id").
		OrderBy("a.created_at", "a.id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list alumnos SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing alumnos: %w", err)
	}
	defer rows.Close()

	items := make([]*models.AlumnoListItem, 0)
	for rows.Next() {
		var (
			item    models.AlumnoListItem
			numbers []string
		)
		if err := rows.Scan(
			&item.ID, &item.Status, &item.Nombre, &item.Apellidos, &item.Calle,
			&item.Colonia, &item.Correo, &item.Fotografia, &numbers,
		); err != nil {
			return nil, fmt.Errorf("error scanning alumno row: %w", err)
		}
		item.TelefonosDetails = make([]models.PhoneNumber, len(numbers))
		for i, n := range numbers {
			item.TelefonosDetails[i] = models.PhoneNumber{Number: n}
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alumno rows: %w", err)
	}
	return items, nil
}

// GetByID returns the alumno with its phones resolved, or apperrors.ErrAlumnoNotFound
func (r *AlumnoRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Alumno, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate is GetByID taking a row lock; only meaningful inside a transaction
func (r *AlumnoRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Alumno, error) {
	return r.getByID(ctx, id, true)
}

func (r *AlumnoRepository) getByID(ctx context.Context, id uuid.UUID, lock bool) (*models.Alumno, error) {
	builder := r.selectAlumnoQuery().Where(squirrel.Eq{"a.id": id.String()})
	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get alumno SQL")
		return nil, err
	}

	alumno, err := scanAlumno(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}

	phones, err := r.phonesOf(ctx, id)
	if err != nil {
		return nil, err
	}
	alumno.Telefonos = phones
	alumno.PhoneIDs = models.IDs(phones)
	return alumno, nil
}

func (r *AlumnoRepository) phonesOf(ctx context.Context, alumnoID uuid.UUID) ([]models.Phone, error) {
	sql, args, err := psql.Select("p.id", "p.number").
		From("alumno_telefonos at").
		Join("phones p ON p.id = at.phone_id").
		Where(squirrel.Eq{"at.alumno_id": alumnoID.String()}).
		OrderBy("at.position").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building alumno phones SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error loading alumno phones: %w", err)
	}
	defer rows.Close()

	phones := make([]models.Phone, 0)
	for rows.Next() {
		var p models.Phone
		if err := rows.Scan(&p.ID, &p.Number); err != nil {
			return nil, fmt.Errorf("error scanning alumno phone: %w", err)
		}
		phones = append(phones, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alumno phones: %w", err)
	}
	return phones, nil
}

// Create inserts the alumno and links its Telefonos in order. ID is generated when zero.
func (r *AlumnoRepository) Create(ctx context.Context, alumno *models.Alumno) error {
	if alumno.ID == uuid.Nil {
		alumno.ID = uuid.New()
	}

	sql, args, err := psql.Insert("alumnos").
		Columns("id", "status", "nombre", "apellidos", "calle", "colonia", "correo", "fotografia").
		Values(alumno.ID.String(), string(alumno.Status), alumno.Nombre, alumno.Apellidos,
			alumno.Calle, alumno.Colonia, alumno.Correo, alumno.Fotografia).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create alumno SQL")
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&alumno.CreatedAt, &alumno.UpdatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.AlumnoEmailConstraint) {
			return apperrors.ErrDuplicateEmail
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrWriteConflict
		}
		return fmt.Errorf("error creating alumno: %w", err)
	}

	return r.SetPhones(ctx, alumno.ID, alumno.Telefonos)
}

// Update writes the editable fields. Phone links are changed with SetPhones.
func (r *AlumnoRepository) Update(ctx context.Context, alumno *models.Alumno) error {
	sql, args, err := psql.Update("alumnos").
		Set("status", string(alumno.Status)).
		Set("nombre", alumno.Nombre).
		Set("apellidos", alumno.Apellidos).
		Set("calle", alumno.Calle).
		Set("colonia", alumno.Colonia).
		Set("correo", alumno.Correo).
		Set("fotografia", alumno.Fotografia).
		// updated_at is handled by trigger
		Where(squirrel.Eq{"id": alumno.ID.String()}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update alumno SQL")
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&alumno.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAlumnoNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, dberrors.AlumnoEmailConstraint) {
			return apperrors.ErrDuplicateEmail
		}
		return fmt.Errorf("error updating alumno: %w", err)
	}
	return nil
}

// SetPhones replaces the ordered phone list of an alumno.
// A phone already linked to another alumno yields a *apperrors.DuplicatePhoneError.
func (r *AlumnoRepository) SetPhones(ctx context.Context, alumnoID uuid.UUID, phones []models.Phone) error {
	sql, args, err := psql.Delete("alumno_telefonos").
		Where(squirrel.Eq{"alumno_id": alumnoID.String()}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building clear alumno phones SQL")
		return err
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error clearing alumno phones: %w", err)
	}

	if len(phones) == 0 {
		return nil
	}

	builder := psql.Insert("alumno_telefonos").Columns("alumno_id", "phone_id", "position")
	for i, p := range phones {
		builder = builder.Values(alumnoID.String(), p.ID.String(), i)
	}
	sql, args, err = builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building link alumno phones SQL")
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.PhoneOwnerConstraint) {
			return apperrors.NewDuplicatePhoneError(linkedNumbers(phones, dberrors.DuplicateValue(err)))
		}
		return fmt.Errorf("error linking alumno phones: %w", err)
	}
	return nil
}

// linkedNumbers returns the number of the phone whose id is dupID, or every number when it is not among phones
func linkedNumbers(phones []models.Phone, dupID string) []string {
	numbers := make([]string, 0, len(phones))
	for _, p := range phones {
		if p.ID.String() == dupID {
			return []string{p.Number}
		}
		numbers = append(numbers, p.Number)
	}
	return numbers
}

// Delete removes the alumno row
func (r *AlumnoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := psql.Delete("alumnos").
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete alumno SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting alumno: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlumnoNotFound
	}
	return nil
}

// Count returns the number of alumnos
func (r *AlumnoRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM alumnos").Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting alumnos: %w", err)
	}
	return n, nil
}
