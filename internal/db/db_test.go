package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

func TestBackfillTimeSecondsRunsUpdate(t *testing.T) {
	gdb, mock := newMockGorm(t)

	mock.ExpectExec(`(?s)UPDATE bookings.*SET time = time \|\| ':00'.*WHERE length\(time\) = 5`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	backfillTimeSeconds(gdb)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackfillTimeSecondsSurvivesFailure(t *testing.T) {
	gdb, mock := newMockGorm(t)

	mock.ExpectExec(`(?s)UPDATE bookings`).
		WillReturnError(errors.New("relation bookings does not exist"))

	// A falha só pode ir para o log; o boot segue.
	backfillTimeSeconds(gdb)

	assert.NoError(t, mock.ExpectationsWereMet())
}
