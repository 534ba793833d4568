package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fyyur-app/fyyur/errs"
	"github.com/fyyur-app/fyyur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (Database, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return New(db), mock
}

func TestVenueDeleteRollsBackOnFailure(t *testing.T) {
	d, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "Venue"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "genres"}).AddRow(1, "The Musical Hop", "Jazz"))
	mock.ExpectExec(`DELETE FROM "Show"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "Venue"`).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	_, err := d.VenueRepo().Delete(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errs.IsPersistence(err))
	assert.False(t, errs.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistUpdateRollsBackOnFailure(t *testing.T) {
	d, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "Artist"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(4, "Guns N Petals"))
	mock.ExpectExec(`UPDATE "Artist"`).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	_, err := d.ArtistRepo().Update(context.Background(), 4, &models.Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA"})
	require.Error(t, err)
	assert.True(t, errs.IsPersistence(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowAddRollsBackOnFailure(t *testing.T) {
	d, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "Artist"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "Venue"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "Show"`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := d.ShowRepo().Add(context.Background(), 4, 1, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.True(t, errs.IsPersistence(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowAddMissingVenueWritesNothing(t *testing.T) {
	d, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "Artist"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "Venue"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	_, err := d.ShowRepo().Add(context.Background(), 4, 99, time.Now())
	require.Error(t, err)
	assert.True(t, errs.IsReferentialIntegrity(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
