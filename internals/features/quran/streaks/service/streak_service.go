package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	checkinSvc "quranku_backend/internals/features/quran/checkins/service"
	"quranku_backend/internals/features/quran/streaks/model"
	"quranku_backend/internals/helpers/dateonly"
)

func toState(m *model.QuranStreakModel) StreakState {
	s := StreakState{
		Current: m.QuranStreakCurrent,
		Longest: m.QuranStreakLongest,
	}
	if m.QuranStreakLastDate != nil && !m.QuranStreakLastDate.Time.IsZero() {
		t := dateonly.Normalize(m.QuranStreakLastDate.Time)
		s.LastDate = &t
	}
	return s
}

func applyState(m *model.QuranStreakModel, s StreakState) {
	m.QuranStreakCurrent = s.Current
	m.QuranStreakLongest = s.Longest
	if s.LastDate != nil {
		d := dateonly.From(*s.LastDate)
		m.QuranStreakLastDate = &d
	} else {
		m.QuranStreakLastDate = nil
	}
}

// lockForUpdate mengambil row streak user dengan SELECT ... FOR UPDATE.
// Semua mutasi streak harus lewat sini supaya dua check-in bersamaan tidak
// sama-sama baca record basi (lost update). Row dibuat kalau belum ada.
func lockForUpdate(tx *gorm.DB, userID uuid.UUID) (*model.QuranStreakModel, error) {
	var row model.QuranStreakModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("quran_streak_user_id = ?", userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = model.QuranStreakModel{QuranStreakUserID: userID}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "quran_streak_user_id"}},
			DoNothing: true,
		}).Create(&row).Error; err != nil {
			return nil, err
		}
		// re-read dengan lock, jaga-jaga kalau kalah race saat create
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("quran_streak_user_id = ?", userID).
			First(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateAfterCheckin menjalankan fast path ApplyCheckIn di dalam transaksi
// caller. Tanggal backfill (lebih awal dari last_date) dan record lapsed
// yang current-nya sudah di-nol-kan otomatis jatuh ke recompute penuh dari
// seluruh tanggal check-in.
func UpdateAfterCheckin(tx *gorm.DB, userID uuid.UUID, newDate, today time.Time) (*model.QuranStreakModel, error) {
	row, err := lockForUpdate(tx, userID)
	if err != nil {
		return nil, err
	}

	next, err := ApplyCheckIn(toState(row), newDate)
	if errors.Is(err, ErrBackfillDate) || errors.Is(err, ErrStaleRun) {
		log.Printf("[SERVICE] Fast path streak tidak bisa dipakai (%v) untuk user %s, recompute penuh",
			err, userID)
		return recomputeLocked(tx, row, userID, today)
	}
	if err != nil {
		return nil, err
	}

	applyState(row, next)
	if err := tx.Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Recalculate menghitung ulang streak user dari seluruh tanggal check-in di
// dalam satu transaksi. Idempotent; dipakai endpoint recalculate dan sebagai
// jalur repair kalau record sempat tidak konsisten.
func Recalculate(db *gorm.DB, userID uuid.UUID, today time.Time) (*model.QuranStreakModel, error) {
	var out *model.QuranStreakModel
	err := db.Transaction(func(tx *gorm.DB) error {
		row, err := lockForUpdate(tx, userID)
		if err != nil {
			return err
		}
		row, err = recomputeLocked(tx, row, userID, today)
		if err != nil {
			return err
		}
		out = row
		return nil
	})
	return out, err
}

func recomputeLocked(tx *gorm.DB, row *model.QuranStreakModel, userID uuid.UUID, today time.Time) (*model.QuranStreakModel, error) {
	dates, err := checkinSvc.CheckinDates(tx, userID)
	if err != nil {
		return nil, err
	}
	next, err := RecomputeStreak(toState(row), dates, today)
	if err != nil {
		return nil, err
	}
	applyState(row, next)
	if err := tx.Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// GetOrEmpty baca row streak tanpa lock (untuk GET); row kosong kalau user
// belum pernah check-in.
func GetOrEmpty(db *gorm.DB, userID uuid.UUID) (*model.QuranStreakModel, error) {
	var row model.QuranStreakModel
	err := db.Where("quran_streak_user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.QuranStreakModel{QuranStreakUserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
