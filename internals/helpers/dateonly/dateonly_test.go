package dateonly

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instant(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLocalDate(t *testing.T) {
	t.Run("JakartaRollover", func(t *testing.T) {
		// 17:30 UTC = 00:30 WIB besoknya — tanggal lokal, bukan UTC
		got := LocalDate(instant("2025-01-01T17:30:00Z"), "Asia/Jakarta")
		assert.Equal(t, "2025-01-02", got.Format(Layout))
	})

	t.Run("JakartaSameDay", func(t *testing.T) {
		got := LocalDate(instant("2025-01-01T10:00:00Z"), "Asia/Jakarta")
		assert.Equal(t, "2025-01-01", got.Format(Layout))
	})

	t.Run("NegativeOffsetRollsBack", func(t *testing.T) {
		// 03:00 UTC di New York (EDT, UTC-4) masih tanggal sebelumnya
		got := LocalDate(instant("2025-07-01T03:00:00Z"), "America/New_York")
		assert.Equal(t, "2025-06-30", got.Format(Layout))
	})

	t.Run("DSTAware", func(t *testing.T) {
		// Musim dingin New York UTC-5: 04:30 UTC masih kemarin
		winter := LocalDate(instant("2025-01-15T04:30:00Z"), "America/New_York")
		assert.Equal(t, "2025-01-14", winter.Format(Layout))
		// Musim panas UTC-4: jam yang sama sudah hari ini
		summer := LocalDate(instant("2025-07-15T04:30:00Z"), "America/New_York")
		assert.Equal(t, "2025-07-15", summer.Format(Layout))
	})

	t.Run("FractionalOffset", func(t *testing.T) {
		// Kathmandu UTC+5:45 — 18:20 UTC = 00:05 besoknya
		got := LocalDate(instant("2025-01-01T18:20:00Z"), "Asia/Kathmandu")
		assert.Equal(t, "2025-01-02", got.Format(Layout))
	})

	t.Run("UnknownZoneFallsBackToJakarta", func(t *testing.T) {
		want := LocalDate(instant("2025-01-01T17:30:00Z"), DefaultTimezone)
		assert.Equal(t, want, LocalDate(instant("2025-01-01T17:30:00Z"), "Mars/Olympus"))
		assert.Equal(t, want, LocalDate(instant("2025-01-01T17:30:00Z"), ""))
	})

	t.Run("OutputIsUTCMidnight", func(t *testing.T) {
		got := LocalDate(instant("2025-01-01T17:30:00Z"), "Asia/Jakarta")
		assert.Equal(t, time.UTC, got.Location())
		h, m, s := got.Clock()
		assert.Zero(t, h+m+s)
	})
}

func TestDateArithmetic(t *testing.T) {
	a := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 4, DaysBetween(a, b))
	assert.Equal(t, -4, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, b, AddDays(a, 4))
}

func TestDateOnly(t *testing.T) {
	t.Run("ParseFormat", func(t *testing.T) {
		d, err := Parse("2025-03-09")
		require.NoError(t, err)
		assert.Equal(t, "2025-03-09", d.Format(Layout))

		_, err = Parse("09/03/2025")
		assert.Error(t, err)
	})

	t.Run("ScanTime", func(t *testing.T) {
		var d DateOnly
		require.NoError(t, d.Scan(time.Date(2025, 3, 9, 13, 45, 0, 0, time.FixedZone("WIB", 7*3600))))
		assert.Equal(t, "2025-03-09", d.Format(Layout))
	})

	t.Run("ScanString", func(t *testing.T) {
		var d DateOnly
		require.NoError(t, d.Scan("2025-03-09"))
		assert.Equal(t, "2025-03-09", d.Format(Layout))
	})

	t.Run("ScanNil", func(t *testing.T) {
		var d DateOnly
		require.NoError(t, d.Scan(nil))
		assert.True(t, d.Time.IsZero())
	})

	t.Run("Value", func(t *testing.T) {
		d := From(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC))
		v, err := d.Value()
		require.NoError(t, err)
		assert.Equal(t, "2025-03-09", v)

		var zero DateOnly
		v, err = zero.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("JSONRoundTrip", func(t *testing.T) {
		d := From(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC))
		b, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2025-03-09"`, string(b))

		var back DateOnly
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, d.Time, back.Time)
	})

	t.Run("JSONNullForZero", func(t *testing.T) {
		var zero DateOnly
		b, err := json.Marshal(zero)
		require.NoError(t, err)
		assert.Equal(t, "null", string(b))
	})
}
