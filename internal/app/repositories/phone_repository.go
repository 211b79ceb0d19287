package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mikerosasdev/crud-alumnos/internal/app/models"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/dberrors"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/logger"
)

// PhoneRepository handles database operations for the phone registry
type PhoneRepository struct {
	db DBTX
}

// NewPhoneRepository creates a new phone repository
func NewPhoneRepository(db DBTX) *PhoneRepository {
	return &PhoneRepository{db: db}
}

// FindByNumbers returns the registered phones whose number is in numbers, ordered by number
func (r *PhoneRepository) FindByNumbers(ctx context.Context, numbers []string) ([]models.Phone, error) {
	if len(numbers) == 0 {
		return []models.Phone{}, nil
	}

	sql, args, err := psql.Select("id", "number").
		From("phones").
		Where("number = ANY(?)", numbers).
		OrderBy("number").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find phones SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error finding phones: %w", err)
	}
	defer rows.Close()

	phones := make([]models.Phone, 0, len(numbers))
	for rows.Next() {
		var p models.Phone
		if err := rows.Scan(&p.ID, &p.Number); err != nil {
			return nil, fmt.Errorf("error scanning phone: %w", err)
		}
		phones = append(phones, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating phones: %w", err)
	}
	return phones, nil
}

// CreateMany inserts one phone per number, keeping the order of numbers in the result.
// A number that is already registered yields a *apperrors.DuplicatePhoneError.
func (r *PhoneRepository) CreateMany(ctx context.Context, numbers []string) ([]models.Phone, error) {
	phones := make([]models.Phone, len(numbers))
	if len(numbers) == 0 {
		return phones, nil
	}

	builder := psql.Insert("phones").Columns("id", "number")
	for i, number := range numbers {
		phones[i] = models.Phone{ID: uuid.New(), Number: number}
		builder = builder.Values(phones[i].ID.String(), number)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert phones SQL")
		return nil, err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.PhoneNumberConstraint) {
			if dup := dberrors.DuplicateValue(err); dup != "" {
				return nil, apperrors.NewDuplicatePhoneError([]string{dup})
			}
			return nil, apperrors.NewDuplicatePhoneError(numbers)
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrWriteConflict
		}
		return nil, fmt.Errorf("error inserting phones: %w", err)
	}
	return phones, nil
}

// DeleteByIDs removes phones; their links to alumnos go with them (ON DELETE CASCADE)
func (r *PhoneRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	sql, args, err := psql.Delete("phones").
		Where("id = ANY(?::uuid[])", uuidStrings(ids)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete phones SQL")
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting phones: %w", err)
	}
	return nil
}
