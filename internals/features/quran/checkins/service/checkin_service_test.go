package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestCheckinDates(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	rows := sqlmock.NewRows([]string{"quran_checkin_date"}).
		AddRow(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
		AddRow(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)).
		AddRow(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery(`SELECT "quran_checkin_date" FROM "quran_checkins"`).
		WillReturnRows(rows)

	dates, err := CheckinDates(db, userID)
	require.NoError(t, err)
	require.Len(t, dates, 3)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), dates[2])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByDate(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)

		rows := sqlmock.NewRows([]string{
			"quran_checkin_id", "quran_checkin_user_id", "quran_checkin_date",
			"quran_checkin_ayat_count", "quran_checkin_letter_count",
			"quran_checkin_hasanat_count", "quran_checkin_session_count",
		}).AddRow(int64(1), userID.String(), date, int64(12), int64(139), int64(1390), int64(2))

		mock.ExpectQuery(`SELECT \* FROM "quran_checkins"`).
			WillReturnRows(rows)

		got, err := GetByDate(db, userID, date)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 12, got.QuranCheckinAyatCount)
		assert.Equal(t, 139, got.QuranCheckinLetterCount)
		assert.Equal(t, "2025-01-10", got.QuranCheckinDate.Format("2006-01-02"))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "quran_checkins"`).
			WillReturnRows(sqlmock.NewRows([]string{"quran_checkin_id"}))

		got, err := GetByDate(db, userID, date)
		require.NoError(t, err, "hari tanpa check-in bukan error")
		assert.Nil(t, got)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
