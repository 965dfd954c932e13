package snapshot

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/unitconv/pkg/exchange"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return &Repository{db: db}, mock
}

func TestRepository_Load_NoSnapshot(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT (.+) FROM "rate_snapshots"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rates", "fetched_at", "created_at", "updated_at"}))

	snap, err := repo.Load()
	require.NoError(t, err)
	assert.True(t, snap.IsEmpty())
	assert.True(t, snap.FetchedAt.IsZero())
}

func TestRepository_Load_ReturnsPersistedRates(t *testing.T) {
	repo, mock := newMockRepo(t)
	fetchedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.
		NewRows([]string{"id", "rates", "fetched_at", "created_at", "updated_at"}).
		AddRow(uuid.New(), `{"USD":1,"EUR":0.9}`, fetchedAt, fetchedAt, fetchedAt)
	mock.ExpectQuery(`SELECT (.+) FROM "rate_snapshots"`).WillReturnRows(rows)

	snap, err := repo.Load()
	require.NoError(t, err)
	assert.InDelta(t, 0.9, snap.Rates["EUR"], 0)
	assert.Equal(t, fetchedAt, snap.FetchedAt)
}

func TestRepository_Load_CorruptRates(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.
		NewRows([]string{"id", "rates", "fetched_at", "created_at", "updated_at"}).
		AddRow(uuid.New(), `not json`, time.Now(), time.Now(), time.Now())
	mock.ExpectQuery(`SELECT (.+) FROM "rate_snapshots"`).WillReturnRows(rows)

	snap, err := repo.Load()
	require.Error(t, err)
	assert.True(t, snap.IsEmpty(), "corrupt snapshot degrades to empty")
}

func TestRepository_Save_OverwritesPreviousSnapshot(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "rate_snapshots"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "rate_snapshots"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Save(exchange.Snapshot{
		Rates:     map[string]float64{"USD": 1, "EUR": 0.9},
		FetchedAt: time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save_SkipsEmptySnapshot(t *testing.T) {
	repo, mock := newMockRepo(t)

	err := repo.Save(exchange.EmptySnapshot())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet(), "empty snapshots never touch storage")
}

func TestRepository_Save_RollsBackOnInsertFailure(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "rate_snapshots"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "rate_snapshots"`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Save(exchange.Snapshot{
		Rates:     map[string]float64{"USD": 1},
		FetchedAt: time.Now(),
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
