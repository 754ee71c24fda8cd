package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregate(t *testing.T) {
	from := day(2025, 1, 1)
	to := day(2025, 1, 31)

	t.Run("Empty", func(t *testing.T) {
		got := Aggregate(nil, nil, from, to)
		assert.Zero(t, got.TotalLetters)
		assert.Zero(t, got.DaysActive)
		assert.Zero(t, got.AveragePerActiveDay, "daysActive 0 bukan division error")
		assert.Nil(t, got.TopSurahByLetters)
	})

	t.Run("SessionsAndCheckinOnlyDay", func(t *testing.T) {
		// dua sesi di tanggal yang sama + satu tanggal check-in tanpa sesi
		sessions := []SessionStat{
			{SurahNumber: 1, DerivedDate: day(2025, 1, 10), LetterCount: 139, HasanatEarned: 1390},
			{SurahNumber: 112, DerivedDate: day(2025, 1, 10), LetterCount: 47, HasanatEarned: 470},
		}
		checkins := []time.Time{day(2025, 1, 10), day(2025, 1, 12)}

		got := Aggregate(sessions, checkins, from, to)
		assert.Equal(t, 186, got.TotalLetters)
		assert.Equal(t, 1860, got.TotalHasanat)
		assert.Equal(t, 2, got.TotalSessions)
		assert.Equal(t, 2, got.DaysActive, "tanggal distinct, bukan jumlah baris")
		assert.Equal(t, 93, got.AveragePerActiveDay)
		require.NotNil(t, got.TopSurahByLetters)
		assert.Equal(t, 1, *got.TopSurahByLetters)
	})

	t.Run("ThreeDistinctDates", func(t *testing.T) {
		sessions := []SessionStat{
			{SurahNumber: 1, DerivedDate: day(2025, 1, 10), LetterCount: 10, HasanatEarned: 100},
			{SurahNumber: 1, DerivedDate: day(2025, 1, 11), LetterCount: 10, HasanatEarned: 100},
		}
		checkins := []time.Time{day(2025, 1, 12)}
		got := Aggregate(sessions, checkins, from, to)
		assert.Equal(t, 3, got.DaysActive)
	})

	t.Run("WindowInclusive", func(t *testing.T) {
		sessions := []SessionStat{
			{SurahNumber: 1, DerivedDate: from, LetterCount: 5, HasanatEarned: 50},
			{SurahNumber: 1, DerivedDate: to, LetterCount: 5, HasanatEarned: 50},
			{SurahNumber: 1, DerivedDate: day(2024, 12, 31), LetterCount: 99, HasanatEarned: 990},
			{SurahNumber: 1, DerivedDate: day(2025, 2, 1), LetterCount: 99, HasanatEarned: 990},
		}
		got := Aggregate(sessions, nil, from, to)
		assert.Equal(t, 10, got.TotalLetters, "batas window inklusif, luar window dibuang")
		assert.Equal(t, 2, got.DaysActive)
	})

	t.Run("TopSurahTieBreakLowestNumber", func(t *testing.T) {
		sessions := []SessionStat{
			{SurahNumber: 36, DerivedDate: day(2025, 1, 10), LetterCount: 50, HasanatEarned: 500},
			{SurahNumber: 2, DerivedDate: day(2025, 1, 11), LetterCount: 50, HasanatEarned: 500},
		}
		got := Aggregate(sessions, nil, from, to)
		require.NotNil(t, got.TopSurahByLetters)
		assert.Equal(t, 2, *got.TopSurahByLetters)
	})

	t.Run("CheckinDateOutsideWindowIgnored", func(t *testing.T) {
		got := Aggregate(nil, []time.Time{day(2024, 6, 1)}, from, to)
		assert.Zero(t, got.DaysActive)
	})
}

func TestKhatamCoverage(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		got := KhatamCoverage(nil)
		assert.Zero(t, got.AyatRead)
		assert.Equal(t, 6236, got.AyatTotal)
		assert.Zero(t, got.Percent)
	})

	t.Run("OverlapNotDoubleCounted", func(t *testing.T) {
		got := KhatamCoverage([]AyatRange{
			{SurahNumber: 2, AyatStart: 1, AyatEnd: 20},
			{SurahNumber: 2, AyatStart: 10, AyatEnd: 30},
			{SurahNumber: 2, AyatStart: 31, AyatEnd: 40}, // bersebelahan, nyambung
			{SurahNumber: 2, AyatStart: 100, AyatEnd: 110},
		})
		assert.Equal(t, 40+11, got.AyatRead)
		assert.Equal(t, 51, got.PerSurah[2])
	})

	t.Run("CompleteSurahCounted", func(t *testing.T) {
		got := KhatamCoverage([]AyatRange{
			{SurahNumber: 1, AyatStart: 1, AyatEnd: 7},
			{SurahNumber: 114, AyatStart: 1, AyatEnd: 3},
		})
		assert.Equal(t, 1, got.SurahComplete, "hanya Al-Fatihah yang khatam")
		assert.Equal(t, 10, got.AyatRead)
	})

	t.Run("OutOfBoundsClamped", func(t *testing.T) {
		got := KhatamCoverage([]AyatRange{
			{SurahNumber: 1, AyatStart: 5, AyatEnd: 99}, // Al-Fatihah cuma 7 ayat
			{SurahNumber: 999, AyatStart: 1, AyatEnd: 3},
			{SurahNumber: 1, AyatStart: 6, AyatEnd: 2}, // range terbalik
		})
		assert.Equal(t, 3, got.AyatRead) // ayat 5..7
	})

	t.Run("PercentOfTotal", func(t *testing.T) {
		got := KhatamCoverage([]AyatRange{{SurahNumber: 2, AyatStart: 1, AyatEnd: 286}})
		assert.InDelta(t, float64(286)*100/6236, got.Percent, 0.0001)
	})
}
