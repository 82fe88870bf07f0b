package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestEstablishmentFindByID_Found(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEstablishmentRepository()
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "name", "timezone"}).
		AddRow(id, "Chez Camille", "Europe/Paris")
	mock.ExpectQuery(`SELECT \* FROM "establishments"`).WillReturnRows(rows)

	establishment, err := repo.FindByID(db, id)
	require.NoError(t, err)
	require.NotNil(t, establishment)
	assert.Equal(t, "Chez Camille", establishment.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstablishmentFindByID_NotFoundIsNilNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEstablishmentRepository()

	mock.ExpectQuery(`SELECT \* FROM "establishments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	establishment, err := repo.FindByID(db, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, establishment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstablishmentDelete_ReportsAffectedRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEstablishmentRepository()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "establishments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.Delete(db, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "establishments"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err = repo.Delete(db, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
