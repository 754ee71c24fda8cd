package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"quranku_backend/internals/features/quran/streaks/model"
	"quranku_backend/internals/helpers/dateonly"
)

func TestToStreakResponse(t *testing.T) {
	lastDate := dateonly.From(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))

	t.Run("LiveStreak", func(t *testing.T) {
		m := &model.QuranStreakModel{
			QuranStreakCurrent:  3,
			QuranStreakLongest:  7,
			QuranStreakLastDate: &lastDate,
		}
		got := ToStreakResponse(m, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 3, got.StreakCurrent, "baru sampai kemarin, masih live")
		assert.False(t, got.StreakLapsed)
		assert.Equal(t, "healthy", got.StreakTreeVariant)
	})

	t.Run("StaleRowStillDisplaysLapsed", func(t *testing.T) {
		// Row yang belum keburu disapu scheduler (mis. timezone jauh di
		// depan UTC): tampilan tetap benar karena lapse dievaluasi live,
		// bukan dari kolom tersimpan.
		m := &model.QuranStreakModel{
			QuranStreakCurrent:  5,
			QuranStreakLongest:  5,
			QuranStreakLastDate: &lastDate,
		}
		got := ToStreakResponse(m, time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 0, got.StreakCurrent, "lapsed tampil 0 walau kolom masih 5")
		assert.True(t, got.StreakLapsed)
		assert.Equal(t, 5, got.StreakLongest, "longest tidak terhapus")
		assert.Equal(t, "2025-01-05", *got.StreakLastDate)
		assert.Equal(t, "wilting", got.StreakTreeVariant)
	})

	t.Run("EmptyRecord", func(t *testing.T) {
		got := ToStreakResponse(&model.QuranStreakModel{}, time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 0, got.StreakCurrent)
		assert.False(t, got.StreakLapsed)
		assert.Nil(t, got.StreakLastDate)
	})
}
