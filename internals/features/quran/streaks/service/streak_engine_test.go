package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateP(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestApplyCheckIn(t *testing.T) {
	t.Run("FirstEver", func(t *testing.T) {
		next, err := ApplyCheckIn(StreakState{}, date(2025, 1, 1))
		require.NoError(t, err)
		assert.Equal(t, 1, next.Current)
		assert.Equal(t, 1, next.Longest)
		require.NotNil(t, next.LastDate)
		assert.Equal(t, date(2025, 1, 1), *next.LastDate)
	})

	t.Run("ConsecutiveDay", func(t *testing.T) {
		existing := StreakState{Current: 2, Longest: 5, LastDate: dateP(2025, 1, 2)}
		next, err := ApplyCheckIn(existing, date(2025, 1, 3))
		require.NoError(t, err)
		assert.Equal(t, 3, next.Current)
		assert.Equal(t, 5, next.Longest)
		assert.Equal(t, date(2025, 1, 3), *next.LastDate)
	})

	t.Run("ConsecutiveDayNewRecord", func(t *testing.T) {
		existing := StreakState{Current: 5, Longest: 5, LastDate: dateP(2025, 1, 5)}
		next, err := ApplyCheckIn(existing, date(2025, 1, 6))
		require.NoError(t, err)
		assert.Equal(t, 6, next.Current)
		assert.Equal(t, 6, next.Longest)
	})

	t.Run("SameDayIdempotent", func(t *testing.T) {
		existing := StreakState{Current: 3, Longest: 7, LastDate: dateP(2025, 1, 3)}
		once, err := ApplyCheckIn(existing, date(2025, 1, 3))
		require.NoError(t, err)
		twice, err := ApplyCheckIn(once, date(2025, 1, 3))
		require.NoError(t, err)
		assert.Equal(t, existing, once)
		assert.Equal(t, once, twice)
	})

	t.Run("GapResetsToOne", func(t *testing.T) {
		existing := StreakState{Current: 4, Longest: 4, LastDate: dateP(2025, 1, 4)}
		next, err := ApplyCheckIn(existing, date(2025, 1, 10))
		require.NoError(t, err)
		assert.Equal(t, 1, next.Current)
		assert.Equal(t, 4, next.Longest)
		assert.Equal(t, date(2025, 1, 10), *next.LastDate)
	})

	t.Run("BackfillNeedsRecompute", func(t *testing.T) {
		existing := StreakState{Current: 2, Longest: 2, LastDate: dateP(2025, 1, 10)}
		_, err := ApplyCheckIn(existing, date(2025, 1, 5))
		assert.ErrorIs(t, err, ErrBackfillDate)
	})

	t.Run("ZeroedLapsedRecordNeedsRecompute", func(t *testing.T) {
		// Record lapsed yang sudah di-nol-kan: panjang run lama (1-2 Jan)
		// tidak terbaca lagi dari record. Fast path wajib menolak hari
		// berikutnya, karena current+1 bakal undercount.
		existing := StreakState{Current: 0, Longest: 2, LastDate: dateP(2025, 1, 2)}
		_, err := ApplyCheckIn(existing, date(2025, 1, 3))
		assert.ErrorIs(t, err, ErrStaleRun)

		// Re-submit tanggal terakhir itu sendiri juga ambigu
		_, err = ApplyCheckIn(existing, date(2025, 1, 2))
		assert.ErrorIs(t, err, ErrStaleRun)

		// Recompute dari seluruh tanggal memberi nilai yang benar
		dates := []time.Time{date(2025, 1, 1), date(2025, 1, 2), date(2025, 1, 3)}
		full, err := RecomputeStreak(StreakState{}, dates, date(2025, 1, 3))
		require.NoError(t, err)
		assert.Equal(t, 3, full.Current)
		assert.Equal(t, 3, full.Longest)

		// Gap > 1 dari record yang sama tetap aman lewat fast path:
		// run baru mulai dari 1, longest lama tidak berubah
		next, err := ApplyCheckIn(existing, date(2025, 1, 10))
		require.NoError(t, err)
		assert.Equal(t, 1, next.Current)
		assert.Equal(t, 2, next.Longest)
	})

	t.Run("InconsistentStateRejected", func(t *testing.T) {
		existing := StreakState{Current: 9, Longest: 3, LastDate: dateP(2025, 1, 1)}
		_, err := ApplyCheckIn(existing, date(2025, 1, 2))
		assert.ErrorIs(t, err, ErrInconsistentState)
	})
}

func TestRecomputeStreak(t *testing.T) {
	t.Run("EmptyDates", func(t *testing.T) {
		got, err := RecomputeStreak(StreakState{}, nil, date(2025, 1, 1))
		require.NoError(t, err)
		assert.Equal(t, StreakState{}, got)
	})

	t.Run("GapScenario", func(t *testing.T) {
		// 1-3 Jan berurutan, bolong, lalu 5 Jan
		dates := []time.Time{
			date(2025, 1, 1), date(2025, 1, 2), date(2025, 1, 3), date(2025, 1, 5),
		}
		got, err := RecomputeStreak(StreakState{}, dates, date(2025, 1, 5))
		require.NoError(t, err)
		assert.Equal(t, 1, got.Current)
		assert.Equal(t, 3, got.Longest)
		assert.Equal(t, date(2025, 1, 5), *got.LastDate)
	})

	t.Run("UnsortedInput", func(t *testing.T) {
		dates := []time.Time{
			date(2025, 1, 5), date(2025, 1, 1), date(2025, 1, 3), date(2025, 1, 2),
		}
		got, err := RecomputeStreak(StreakState{}, dates, date(2025, 1, 5))
		require.NoError(t, err)
		assert.Equal(t, 1, got.Current)
		assert.Equal(t, 3, got.Longest)
	})

	t.Run("CheckedInYesterdayStillLive", func(t *testing.T) {
		dates := []time.Time{date(2025, 1, 1), date(2025, 1, 2)}
		got, err := RecomputeStreak(StreakState{}, dates, date(2025, 1, 3))
		require.NoError(t, err)
		assert.Equal(t, 2, got.Current)
	})

	t.Run("LapsePreservesHistory", func(t *testing.T) {
		dates := []time.Time{
			date(2025, 1, 1), date(2025, 1, 2), date(2025, 1, 3),
			date(2025, 1, 4), date(2025, 1, 5),
		}
		existing := StreakState{Current: 5, Longest: 5, LastDate: dateP(2025, 1, 5)}
		got, err := RecomputeStreak(existing, dates, date(2025, 1, 8))
		require.NoError(t, err)
		assert.Equal(t, 0, got.Current, "streak lapsed")
		assert.Equal(t, 5, got.Longest, "longest tidak terhapus")
		assert.Equal(t, date(2025, 1, 5), *got.LastDate, "last_date tidak terhapus")
	})

	t.Run("TodayBeforeCheckinRejected", func(t *testing.T) {
		dates := []time.Time{date(2025, 1, 10)}
		_, err := RecomputeStreak(StreakState{}, dates, date(2025, 1, 5))
		assert.ErrorIs(t, err, ErrInconsistentState)
	})

	t.Run("SingleDayToday", func(t *testing.T) {
		got, err := RecomputeStreak(StreakState{}, []time.Time{date(2025, 1, 1)}, date(2025, 1, 1))
		require.NoError(t, err)
		assert.Equal(t, 1, got.Current)
		assert.Equal(t, 1, got.Longest)
	})
}

// Fast path harus identik dengan recompute penuh setelah tiap insert.
func TestIncrementalMatchesFullRecompute(t *testing.T) {
	sequence := []time.Time{
		date(2025, 1, 1), date(2025, 1, 2), date(2025, 1, 3),
		date(2025, 1, 5), date(2025, 1, 6),
		date(2025, 1, 20),
		date(2025, 1, 21), date(2025, 1, 22), date(2025, 1, 23), date(2025, 1, 24),
	}

	state := StreakState{}
	var soFar []time.Time
	for _, d := range sequence {
		var err error
		state, err = ApplyCheckIn(state, d)
		require.NoError(t, err)
		soFar = append(soFar, d)

		full, err := RecomputeStreak(StreakState{}, soFar, d)
		require.NoError(t, err)
		assert.Equal(t, full, state, "divergensi setelah tanggal %s", d.Format("2006-01-02"))
	}
}

func TestLongestNeverDecreases(t *testing.T) {
	sequence := []time.Time{
		date(2025, 2, 1), date(2025, 2, 2), date(2025, 2, 3), date(2025, 2, 4),
		date(2025, 2, 10),
		date(2025, 2, 11), date(2025, 2, 12),
	}
	state := StreakState{}
	prevLongest := 0
	for _, d := range sequence {
		var err error
		state, err = ApplyCheckIn(state, d)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, state.Longest, prevLongest)
		prevLongest = state.Longest
	}
	assert.Equal(t, 4, state.Longest)
	assert.Equal(t, 3, state.Current)
}

func TestIsLapsed(t *testing.T) {
	state := StreakState{Current: 3, Longest: 3, LastDate: dateP(2025, 1, 5)}
	assert.False(t, IsLapsed(state, date(2025, 1, 5)), "check-in hari ini")
	assert.False(t, IsLapsed(state, date(2025, 1, 6)), "baru sampai kemarin")
	assert.True(t, IsLapsed(state, date(2025, 1, 7)))
	assert.False(t, IsLapsed(StreakState{}, date(2025, 1, 7)), "belum pernah check-in")
}

func TestTreeVisual(t *testing.T) {
	cases := []struct {
		days  int
		stage TreeStage
	}{
		{0, TreeSprout},
		{1, TreeSprout},
		{2, TreeSprout},
		{3, TreeSapling},
		{9, TreeSapling},
		{10, TreeYoung},
		{29, TreeYoung},
		{30, TreeMature},
		{99, TreeMature},
		{100, TreeAncient},
		{250, TreeAncient},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.stage, StageFor(tc.days), "streak %d hari", tc.days)
	}

	assert.Equal(t, TreeHealthy, VariantFor(false))
	assert.Equal(t, TreeWilting, VariantFor(true))
}
