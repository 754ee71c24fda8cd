package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcHouseLight(t *testing.T) {
	tests := []struct {
		name             string
		membersReadToday int
		totalMembers     int
		familyStreakDays int
		want             HouseLight
	}{
		{"TanpaAnggota", 0, 0, 0, HouseDark},
		{"BelumAdaYangBaca", 0, 4, 10, HouseDark},
		{"KurangDariSeparuh", 1, 4, 0, HouseDim},
		{"TepatSeparuh", 2, 4, 0, HouseBright},
		{"HampirSemua", 3, 4, 0, HouseBright},
		{"SemuaBacaStreakPendek", 4, 4, 4, HouseBright},
		{"SemuaBacaStreakLima", 4, 4, 5, HouseRadiant},
		{"AnggotaTunggalStreakPanjang", 1, 1, 12, HouseRadiant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcHouseLight(tt.membersReadToday, tt.totalMembers, tt.familyStreakDays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHouseLightLabel(t *testing.T) {
	t.Run("RumahGelap", func(t *testing.T) {
		label := HouseLightLabel(HouseDark, 0, 3)
		assert.Equal(t, "Rumah keluarga masih gelap. 0 dari 3 anggota sudah membaca hari ini (0%).", label)
	})

	t.Run("RumahTerang", func(t *testing.T) {
		label := HouseLightLabel(HouseBright, 2, 3)
		assert.Equal(t, "Rumah sudah terang. 2 dari 3 anggota sudah membaca hari ini (67%).", label)
	})

	t.Run("RumahRadiant", func(t *testing.T) {
		label := HouseLightLabel(HouseRadiant, 3, 3)
		assert.Equal(t, "Rumah bercahaya penuh dengan semangat Qur'an. 3 dari 3 anggota sudah membaca hari ini (100%).", label)
	})

	t.Run("TanpaAnggotaTidakDivideByZero", func(t *testing.T) {
		label := HouseLightLabel(HouseDark, 0, 0)
		assert.Contains(t, label, "(0%)")
	})
}
