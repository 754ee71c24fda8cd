package service

import (
	"sort"
	"time"

	lettersSvc "quranku_backend/internals/features/quran/letters/service"
	"quranku_backend/internals/helpers/dateonly"
)

// SessionStat: proyeksi ringan satu sesi baca untuk agregasi.
type SessionStat struct {
	SurahNumber   int
	DerivedDate   time.Time
	LetterCount   int
	HasanatEarned int
}

type AggregateResult struct {
	TotalLetters        int  `json:"total_letters"`
	TotalHasanat        int  `json:"total_hasanat"`
	TotalSessions       int  `json:"total_sessions"`
	DaysActive          int  `json:"days_active"`
	AveragePerActiveDay int  `json:"average_per_active_day"`
	TopSurahByLetters   *int `json:"top_surah_by_letters"`
}

// Aggregate merangkum window [from, to] inklusif.
//
// Totals dijumlah dari nilai per-sesi yang TERSIMPAN (bukan recompute dari
// tabel huruf), supaya konsisten dengan apa yang dulu benar-benar dicatat.
// daysActive menghitung tanggal distinct: tanggal yang hanya punya check-in
// langsung (tanpa breakdown sesi) tetap dihitung aktif.
func Aggregate(sessions []SessionStat, checkinDates []time.Time, from, to time.Time) AggregateResult {
	from = dateonly.Normalize(from)
	to = dateonly.Normalize(to)

	activeDays := make(map[time.Time]struct{})
	surahLetters := make(map[int]int)

	var res AggregateResult
	for _, s := range sessions {
		d := dateonly.Normalize(s.DerivedDate)
		if d.Before(from) || d.After(to) {
			continue
		}
		res.TotalLetters += s.LetterCount
		res.TotalHasanat += s.HasanatEarned
		res.TotalSessions++
		activeDays[d] = struct{}{}
		surahLetters[s.SurahNumber] += s.LetterCount
	}
	for _, d := range checkinDates {
		d = dateonly.Normalize(d)
		if d.Before(from) || d.After(to) {
			continue
		}
		activeDays[d] = struct{}{}
	}

	res.DaysActive = len(activeDays)
	if res.DaysActive > 0 {
		res.AveragePerActiveDay = res.TotalLetters / res.DaysActive
	}

	// surah dengan huruf terbanyak; seri dimenangkan nomor surah terkecil
	best := -1
	for surah, letters := range surahLetters {
		if letters > 0 && (best == -1 || letters > surahLetters[best] ||
			(letters == surahLetters[best] && surah < best)) {
			best = surah
		}
	}
	if best != -1 {
		res.TopSurahByLetters = &best
	}
	return res
}

/* ===============================
   Khatam coverage
=================================*/

// AyatRange: range ayat satu sesi, untuk hitung cakupan khatam.
type AyatRange struct {
	SurahNumber int
	AyatStart   int
	AyatEnd     int
}

type KhatamResult struct {
	AyatRead      int         `json:"ayat_read"`
	AyatTotal     int         `json:"ayat_total"`
	Percent       float64     `json:"percent"`
	SurahComplete int         `json:"surah_complete"`
	PerSurah      map[int]int `json:"per_surah"`
}

// KhatamCoverage menghitung ayat DISTINCT yang pernah dibaca per surah
// (range overlap tidak dihitung dobel), lalu persentase terhadap 6.236.
func KhatamCoverage(ranges []AyatRange) KhatamResult {
	bySurah := make(map[int][][2]int)
	for _, r := range ranges {
		max := lettersSvc.AyatInSurah(r.SurahNumber)
		if max == 0 || r.AyatStart > r.AyatEnd {
			continue
		}
		start, end := r.AyatStart, r.AyatEnd
		if start < 1 {
			start = 1
		}
		if end > max {
			end = max
		}
		if start > end {
			continue
		}
		bySurah[r.SurahNumber] = append(bySurah[r.SurahNumber], [2]int{start, end})
	}

	res := KhatamResult{AyatTotal: lettersSvc.TotalAyat, PerSurah: make(map[int]int)}
	for surah, ivs := range bySurah {
		sort.Slice(ivs, func(i, j int) bool { return ivs[i][0] < ivs[j][0] })
		covered := 0
		curStart, curEnd := ivs[0][0], ivs[0][1]
		for _, iv := range ivs[1:] {
			if iv[0] <= curEnd+1 {
				if iv[1] > curEnd {
					curEnd = iv[1]
				}
				continue
			}
			covered += curEnd - curStart + 1
			curStart, curEnd = iv[0], iv[1]
		}
		covered += curEnd - curStart + 1

		res.PerSurah[surah] = covered
		res.AyatRead += covered
		if covered == lettersSvc.AyatInSurah(surah) {
			res.SurahComplete++
		}
	}
	if res.AyatTotal > 0 {
		res.Percent = float64(res.AyatRead) * 100 / float64(res.AyatTotal)
	}
	return res
}
