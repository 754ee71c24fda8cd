package service

import "fmt"

// Visual "rumah keluarga" di family screen: makin banyak anggota yang sudah
// membaca hari ini, makin terang rumahnya.

type HouseLight string

const (
	HouseDark    HouseLight = "dark"    // belum ada yang baca
	HouseDim     HouseLight = "dim"     // < 50% anggota
	HouseBright  HouseLight = "bright"  // >= 50%, belum semua
	HouseRadiant HouseLight = "radiant" // semua baca + streak keluarga >= 5 hari
)

func CalcHouseLight(membersReadToday, totalMembers, familyStreakDays int) HouseLight {
	if totalMembers <= 0 || membersReadToday <= 0 {
		return HouseDark
	}
	ratio := float64(membersReadToday) / float64(totalMembers)
	switch {
	case ratio < 0.5:
		return HouseDim
	case ratio < 1:
		return HouseBright
	case familyStreakDays >= 5:
		return HouseRadiant
	default:
		return HouseBright
	}
}

// HouseLightLabel: label aksesibilitas berbahasa Indonesia.
func HouseLightLabel(state HouseLight, membersReadToday, totalMembers int) string {
	percent := 0
	if totalMembers > 0 {
		percent = int(float64(membersReadToday)/float64(totalMembers)*100 + 0.5)
	}

	var base string
	switch state {
	case HouseDark:
		base = "Rumah keluarga masih gelap."
	case HouseDim:
		base = "Rumah mulai bercahaya."
	case HouseBright:
		base = "Rumah sudah terang."
	default:
		base = "Rumah bercahaya penuh dengan semangat Qur'an."
	}
	return fmt.Sprintf("%s %d dari %d anggota sudah membaca hari ini (%d%%).",
		base, membersReadToday, totalMembers, percent)
}
