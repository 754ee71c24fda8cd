package service

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
)

// HasanatPerLetter adalah konstanta produk, bukan setting per-user.
// Mengubahnya berarti migrasi data untuk semua hasanat_earned historis.
const HasanatPerLetter = 10

// TotalAyat = jumlah ayat kanonik seluruh Al-Qur'an.
const TotalAyat = 6236

// AyatCounts: jumlah ayat tiap surah (index 0 = surah 1, Al-Fatihah).
var AyatCounts = [114]int{
	7, 286, 200, 176, 120, 165, 206, 75, 129, 109,
	123, 111, 43, 52, 99, 128, 111, 110, 98, 135,
	112, 78, 118, 64, 77, 227, 93, 88, 69, 60,
	34, 30, 73, 54, 45, 83, 182, 88, 75, 85,
	54, 53, 89, 59, 37, 35, 38, 29, 18, 45,
	60, 49, 62, 55, 78, 96, 29, 22, 24, 13,
	14, 11, 11, 18, 12, 12, 30, 52, 52, 44,
	28, 28, 20, 56, 40, 31, 50, 40, 46, 42,
	29, 19, 36, 25, 22, 17, 19, 26, 30, 20,
	15, 21, 11, 8, 8, 19, 5, 8, 8, 11,
	11, 8, 3, 9, 5, 4, 7, 3, 6, 3,
	5, 4, 5, 6,
}

// AyatInSurah mengembalikan jumlah ayat surah tsb, 0 kalau nomor surah invalid.
func AyatInSurah(surah int) int {
	if surah < 1 || surah > 114 {
		return 0
	}
	return AyatCounts[surah-1]
}

/* ===============================
   LetterCountTable
=================================*/

// Table adalah tabel jumlah huruf per ayat, immutable setelah di-load.
// Di-share read-only ke semua request, tidak ada mutasi setelah startup.
type Table struct {
	counts map[string]int
}

// format file mengikuti letter-counts JSON dari dataset referensi:
// { "data": { "1:1": 19, "1:2": 17, ... } }
type tableFile struct {
	Data map[string]int `json:"data"`
}

// Load membaca tabel dari file JSON.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("letter counts: gagal baca %s: %w", path, err)
	}
	return FromJSON(raw)
}

func FromJSON(raw []byte) (*Table, error) {
	var f tableFile
	if err := sonic.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("letter counts: JSON tidak valid: %w", err)
	}
	if len(f.Data) == 0 {
		// toleransi format lama tanpa envelope "data"
		if err := sonic.Unmarshal(raw, &f.Data); err != nil || len(f.Data) == 0 {
			return nil, fmt.Errorf("letter counts: data kosong")
		}
	}
	return FromMap(f.Data), nil
}

// FromMap membungkus map "surah:ayah" → jumlah huruf (dipakai juga oleh test).
func FromMap(m map[string]int) *Table {
	counts := make(map[string]int, len(m))
	for k, v := range m {
		counts[k] = v
	}
	return &Table{counts: counts}
}

// Validate memastikan tabel menutup seluruh 6.236 ayat tanpa celah dan tanpa
// nilai non-positif. Entri hilang = cacat integritas data, fatal saat startup.
func (t *Table) Validate() error {
	for surah := 1; surah <= 114; surah++ {
		for ayah := 1; ayah <= AyatCounts[surah-1]; ayah++ {
			key := fmt.Sprintf("%d:%d", surah, ayah)
			n, ok := t.counts[key]
			if !ok {
				return fmt.Errorf("letter counts: entri %s tidak ada", key)
			}
			if n <= 0 {
				return fmt.Errorf("letter counts: entri %s tidak positif (%d)", key, n)
			}
		}
	}
	return nil
}

// LettersInRange menjumlahkan huruf untuk ayat ayatStart..ayatEnd (inklusif).
//
// Kebijakan fail-soft: range terbalik atau surah/ayah di luar batas
// mengembalikan 0 + log, bukan error fatal. Salah hitung pahala itu low
// severity, crash tidak bisa diterima.
func (t *Table) LettersInRange(surah, ayatStart, ayatEnd int) int {
	if ayatStart > ayatEnd {
		return 0
	}
	max := AyatInSurah(surah)
	if max == 0 {
		log.Printf("[WARN] LettersInRange: surah %d di luar batas", surah)
		return 0
	}
	if ayatStart < 1 || ayatEnd > max {
		log.Printf("[WARN] LettersInRange: range %d:%d-%d di luar batas (max %d)", surah, ayatStart, ayatEnd, max)
		return 0
	}
	total := 0
	for ayah := ayatStart; ayah <= ayatEnd; ayah++ {
		total += t.counts[fmt.Sprintf("%d:%d", surah, ayah)]
	}
	return total
}

// HasanatFor mengubah jumlah huruf menjadi hasanat (linear, 10x).
func HasanatFor(letterCount int) int {
	if letterCount < 0 {
		return 0
	}
	return letterCount * HasanatPerLetter
}
