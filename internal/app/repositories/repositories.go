package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mikerosasdev/crud-alumnos/internal/app/models"
	"github.com/mikerosasdev/crud-alumnos/internal/db"
)

// psql builds statements with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so repositories run unchanged inside a transaction
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AlumnoStore is the student registry
type AlumnoStore interface {
	List(ctx context.Context) ([]*models.AlumnoListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alumno, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Alumno, error)
	Create(ctx context.Context, alumno *models.Alumno) error
	Update(ctx context.Context, alumno *models.Alumno) error
	SetPhones(ctx context.Context, alumnoID uuid.UUID, phones []models.Phone) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// PhoneStore is the phone registry
type PhoneStore interface {
	FindByNumbers(ctx context.Context, numbers []string) ([]models.Phone, error)
	CreateMany(ctx context.Context, numbers []string) ([]models.Phone, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
}

// Repositories holds all the repository instances
type Repositories struct {
	AlumnoRepository AlumnoStore
	PhoneRepository  PhoneStore
}

// NewRepositories initializes all repositories on top of conn
func NewRepositories(conn DBTX) *Repositories {
	return &Repositories{
		AlumnoRepository: NewAlumnoRepository(conn),
		PhoneRepository:  NewPhoneRepository(conn),
	}
}

// TxManager runs a unit of work against repositories bound to a single transaction
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}

// PgTxManager is the TxManager backed by PostgreSQL
type PgTxManager struct {
	db *db.PostgresDB
}

// NewPgTxManager creates a new PgTxManager
func NewPgTxManager(database *db.PostgresDB) *PgTxManager {
	return &PgTxManager{db: database}
}

// WithinTransaction implements TxManager
func (m *PgTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	return m.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, NewRepositories(tx))
	})
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
