package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"quranku_backend/internals/helpers/dateonly"
)

// StreakState adalah potret streak seorang user: consecutive days yang
// berakhir di LastDate, plus rekor terpanjang sepanjang sejarah.
// Semua tanggal = midnight UTC hasil dateonly.LocalDate / Normalize.
type StreakState struct {
	Current  int
	Longest  int
	LastDate *time.Time
}

// ErrBackfillDate: check-in untuk tanggal SEBELUM last_date (backfill).
// Fast path tidak boleh menebak; caller wajib jalankan RecomputeStreak
// dari seluruh tanggal check-in.
var ErrBackfillDate = errors.New("streak: tanggal backfill, perlu recompute penuh")

// ErrStaleRun: record lapsed yang current-nya sudah di-nol-kan (oleh sweeper
// atau recompute saat lapsed) tapi last_date masih ada. Panjang run yang
// berakhir di last_date tidak bisa dibaca lagi dari record, jadi menyambung
// +1 dari situ pasti undercount. Caller wajib RecomputeStreak.
var ErrStaleRun = errors.New("streak: panjang run terakhir tidak diketahui, perlu recompute penuh")

// ErrInconsistentState: precondition dilanggar (bug di layer pemanggil /
// persistence), bukan kondisi yang boleh dikoreksi diam-diam.
var ErrInconsistentState = errors.New("streak: state tidak konsisten")

func validateState(s StreakState) error {
	if s.Current < 0 || s.Longest < 0 {
		return fmt.Errorf("%w: current=%d longest=%d negatif", ErrInconsistentState, s.Current, s.Longest)
	}
	if s.Current > s.Longest {
		return fmt.Errorf("%w: current (%d) > longest (%d)", ErrInconsistentState, s.Current, s.Longest)
	}
	return nil
}

// RecomputeStreak menghitung ulang streak dari nol berdasarkan seluruh
// tanggal check-in user. Deterministik, tanpa side effect; ini jalur
// pemulihan yang aman kalau fast path sempat menghasilkan record rusak.
//
//  1. Input boleh unsorted; di-sort ascending di sini.
//  2. Run = hari kalender berurutan (selisih tepat 1 hari).
//  3. Run yang berakhir di tanggal paling baru = kandidat current streak.
//  4. Lapse: kalau today - last > 1 hari, current dilaporkan 0 tapi
//     longest & last_date TIDAK dihapus (lapse tidak menghapus sejarah).
func RecomputeStreak(existing StreakState, dates []time.Time, today time.Time) (StreakState, error) {
	if err := validateState(existing); err != nil {
		return existing, err
	}
	if len(dates) == 0 {
		return StreakState{}, nil
	}

	sorted := make([]time.Time, len(dates))
	for i, d := range dates {
		sorted[i] = dateonly.Normalize(d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	today = dateonly.Normalize(today)
	last := sorted[len(sorted)-1]
	if today.Before(last) {
		return existing, fmt.Errorf("%w: today %s lebih awal dari check-in %s",
			ErrInconsistentState, today.Format(dateonly.Layout), last.Format(dateonly.Layout))
	}

	longest := 0
	run := 1
	for i := 1; i < len(sorted); i++ {
		if dateonly.DaysBetween(sorted[i-1], sorted[i]) == 1 {
			run++
			continue
		}
		if run > longest {
			longest = run
		}
		run = 1
	}
	if run > longest {
		longest = run
	}

	current := run // run terakhir selalu berakhir di tanggal paling baru
	if dateonly.DaysBetween(last, today) > 1 {
		current = 0 // lapsed: belum baca kemarin maupun hari ini
	}

	return StreakState{Current: current, Longest: longest, LastDate: &last}, nil
}

// ApplyCheckIn adalah fast path untuk satu tanggal check-in baru (kasus umum:
// user baru saja membaca hari ini). Hasilnya wajib identik dengan
// RecomputeStreak atas seluruh tanggal setelah insert.
func ApplyCheckIn(existing StreakState, newDate time.Time) (StreakState, error) {
	if err := validateState(existing); err != nil {
		return existing, err
	}
	newDate = dateonly.Normalize(newDate)

	// Check-in pertama seumur hidup
	if existing.LastDate == nil {
		longest := existing.Longest
		if longest < 1 {
			longest = 1
		}
		return StreakState{Current: 1, Longest: longest, LastDate: &newDate}, nil
	}

	last := dateonly.Normalize(*existing.LastDate)
	gap := dateonly.DaysBetween(last, newDate)

	// current=0 + last_date terisi = record lapsed yang sudah di-nol-kan.
	// Untuk gap 0/1 hasilnya bergantung pada panjang run lama yang hilang;
	// gap > 1 tetap aman (run baru mulai dari 1, longest tidak berubah).
	if existing.Current == 0 && gap >= 0 && gap <= 1 {
		return existing, ErrStaleRun
	}

	switch {
	case gap == 0:
		// Re-submit hari yang sama: idempotent, streak tidak dihitung dobel
		return existing, nil
	case gap == 1:
		current := existing.Current + 1
		longest := existing.Longest
		if current > longest {
			longest = current
		}
		return StreakState{Current: current, Longest: longest, LastDate: &newDate}, nil
	case gap > 1:
		// Streak putus, mulai dari 1
		longest := existing.Longest
		if longest < 1 {
			longest = 1
		}
		return StreakState{Current: 1, Longest: longest, LastDate: &newDate}, nil
	default:
		// newDate < last_date: backfill, fast path tidak boleh dipakai
		return existing, ErrBackfillDate
	}
}

// IsLapsed: streak dianggap putus kalau check-in terakhir lebih dari satu
// hari di belakang "hari ini" menurut timezone user.
func IsLapsed(s StreakState, today time.Time) bool {
	if s.LastDate == nil {
		return false
	}
	return dateonly.DaysBetween(dateonly.Normalize(*s.LastDate), dateonly.Normalize(today)) > 1
}
