package repositories

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikerosasdev/crud-alumnos/internal/app/migrations"
	"github.com/mikerosasdev/crud-alumnos/internal/app/models"
	"github.com/mikerosasdev/crud-alumnos/internal/db"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
)

// testDatabaseEnv names a disposable PostgreSQL database; its alumno tables are truncated
const testDatabaseEnv = "CRUD_ALUMNOS_TEST_DATABASE_URL"

func openTestDB(t *testing.T) *db.PostgresDB {
	t.Helper()
	dsn := os.Getenv(testDatabaseEnv)
	if dsn == "" {
		t.Skipf("%s not set", testDatabaseEnv)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	dir := filepath.Join("..", "..", "..", "migrations")
	require.NoError(t, migrations.NewMigrator(pool, zerolog.Nop()).MigrateFromDirectory(ctx, dir))
	_, err = pool.Exec(ctx, "TRUNCATE alumno_telefonos, alumnos, phones")
	require.NoError(t, err)

	return &db.PostgresDB{Pool: pool}
}

func insertAlumno(t *testing.T, repos *Repositories, correo string, numbers ...string) *models.Alumno {
	t.Helper()
	ctx := context.Background()
	phones, err := repos.PhoneRepository.CreateMany(ctx, numbers)
	require.NoError(t, err)

	alumno := sampleAlumno(phones...)
	alumno.Correo = correo
	require.NoError(t, repos.AlumnoRepository.Create(ctx, alumno))
	return alumno
}

func TestPostgres_ListResolvesNumbersInStoredOrder(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database.Pool)

	ana := insertAlumno(t, repos, "ana@x.com", "5552222222", "5551111111")
	luis := insertAlumno(t, repos, "luis@x.com")

	items, err := repos.AlumnoRepository.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	byID := map[uuid.UUID]*models.AlumnoListItem{}
	for _, item := range items {
		byID[item.ID] = item
	}
	assert.Equal(t, []models.PhoneNumber{{Number: "5552222222"}, {Number: "5551111111"}}, byID[ana.ID].TelefonosDetails)
	require.Contains(t, byID, luis.ID)
	assert.NotNil(t, byID[luis.ID].TelefonosDetails)
	assert.Empty(t, byID[luis.ID].TelefonosDetails)

	got, err := repos.AlumnoRepository.GetByID(context.Background(), ana.ID)
	require.NoError(t, err)
	assert.Equal(t, ana.PhoneIDs, got.PhoneIDs)
}

func TestPostgres_UniqueViolations(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database.Pool)
	ctx := context.Background()
	ana := insertAlumno(t, repos, "ana@x.com", "5551111111")

	_, err := repos.PhoneRepository.CreateMany(ctx, []string{"5553333333", "5551111111"})
	var dup *apperrors.DuplicatePhoneError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"5551111111"}, dup.Numbers)

	err = repos.AlumnoRepository.Create(ctx, sampleAlumno())
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)

	luis := insertAlumno(t, repos, "luis@x.com")
	err = repos.AlumnoRepository.SetPhones(ctx, luis.ID, ana.Telefonos)
	dup = nil
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"5551111111"}, dup.Numbers)
}

func TestPostgres_FindAndDeletePhones(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database.Pool)
	ctx := context.Background()
	ana := insertAlumno(t, repos, "ana@x.com", "5552222222", "5551111111")

	found, err := repos.PhoneRepository.FindByNumbers(ctx, []string{"5552222222", "5559999999", "5551111111"})
	require.NoError(t, err)
	assert.Equal(t, []string{"5551111111", "5552222222"}, models.Numbers(found))

	require.NoError(t, repos.PhoneRepository.DeleteByIDs(ctx, ana.PhoneIDs[:1]))
	got, err := repos.AlumnoRepository.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"5551111111"}, models.Numbers(got.Telefonos))

	require.NoError(t, repos.AlumnoRepository.Delete(ctx, ana.ID))
	_, err = repos.AlumnoRepository.GetByID(ctx, ana.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlumnoNotFound)
}

func TestPostgres_TransactionRollsBack(t *testing.T) {
	database := openTestDB(t)
	tx := NewPgTxManager(database)
	ctx := context.Background()
	failure := errors.New("alumno write failed")

	err := tx.WithinTransaction(ctx, func(ctx context.Context, repos *Repositories) error {
		if _, err := repos.PhoneRepository.CreateMany(ctx, []string{"5554444444"}); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	found, err := NewRepositories(database.Pool).PhoneRepository.FindByNumbers(ctx, []string{"5554444444"})
	require.NoError(t, err)
	assert.Empty(t, found)
}
