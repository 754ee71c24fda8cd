package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInviteCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateInviteCode()
		require.NoError(t, err)
		assert.Len(t, code, inviteCodeLen)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(inviteCharset, ch),
				"karakter %q tidak ada di charset", ch)
		}
		seen[code] = true
	}
	// 50 kode dari ruang 31^8, tabrakan praktis mustahil
	assert.Greater(t, len(seen), 45)
}

func TestSortLeaderboard(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	c := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	t.Run("HasanatTerbanyakDulu", func(t *testing.T) {
		stats := []MemberStat{
			{UserID: a, TotalHasanat: 100},
			{UserID: b, TotalHasanat: 900},
			{UserID: c, TotalHasanat: 500},
		}
		SortLeaderboard(stats)
		assert.Equal(t, []uuid.UUID{b, c, a},
			[]uuid.UUID{stats[0].UserID, stats[1].UserID, stats[2].UserID})
	})

	t.Run("SeriHasanatPakaiAyat", func(t *testing.T) {
		stats := []MemberStat{
			{UserID: a, TotalHasanat: 500, TotalAyat: 10},
			{UserID: b, TotalHasanat: 500, TotalAyat: 40},
		}
		SortLeaderboard(stats)
		assert.Equal(t, b, stats[0].UserID)
	})

	t.Run("SeriPenuhDeterministik", func(t *testing.T) {
		stats := []MemberStat{
			{UserID: c, TotalHasanat: 500, TotalAyat: 10},
			{UserID: a, TotalHasanat: 500, TotalAyat: 10},
		}
		SortLeaderboard(stats)
		assert.Equal(t, a, stats[0].UserID)
	})
}

func TestFamilyStreakDays(t *testing.T) {
	tests := []struct {
		name     string
		currents []int
		want     int
	}{
		{"TanpaAnggota", nil, 0},
		{"SatuAnggota", []int{7}, 7},
		{"MinimumDipakai", []int{7, 3, 12}, 3},
		{"SatuAnggotaLapsedMatikanStreakKeluarga", []int{7, 0, 12}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FamilyStreakDays(tt.currents))
		})
	}
}
