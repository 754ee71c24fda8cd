package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	checkinSvc "quranku_backend/internals/features/quran/checkins/service"
	lettersSvc "quranku_backend/internals/features/quran/letters/service"
	"quranku_backend/internals/features/quran/sessions/model"
	streakModel "quranku_backend/internals/features/quran/streaks/model"
	streakSvc "quranku_backend/internals/features/quran/streaks/service"
	"quranku_backend/internals/helpers/dateonly"
)

// SessionInput: satu aksi baca dari client. OccurredAt UTC; Timezone IANA
// milik user (boleh kosong, fallback Asia/Jakarta).
type SessionInput struct {
	SurahNumber int
	AyatStart   int
	AyatEnd     int
	OccurredAt  time.Time
	Timezone    string
}

// BuildSession menghitung field turunan sesi tanpa menyentuh DB:
// letter_count dari tabel huruf, hasanat 10x, derived_date dari timezone.
// Dihitung SEKALI di sini; recompute dari tabel harus selalu mereproduksi
// nilai yang tersimpan.
func BuildSession(table *lettersSvc.Table, userID uuid.UUID, in SessionInput) model.QuranReadingSessionModel {
	letters := table.LettersInRange(in.SurahNumber, in.AyatStart, in.AyatEnd)
	return model.QuranReadingSessionModel{
		QuranReadingSessionUserID:        userID,
		QuranReadingSessionSurahNumber:   in.SurahNumber,
		QuranReadingSessionAyatStart:     in.AyatStart,
		QuranReadingSessionAyatEnd:       in.AyatEnd,
		QuranReadingSessionOccurredAt:    in.OccurredAt.UTC(),
		QuranReadingSessionDerivedDate:   dateonly.From(dateonly.LocalDate(in.OccurredAt, in.Timezone)),
		QuranReadingSessionLetterCount:   letters,
		QuranReadingSessionHasanatEarned: lettersSvc.HasanatFor(letters),
	}
}

// RecordSession menyimpan sesi + efek turunannya dalam satu transaksi:
// insert sesi, merge additive ke check-in harian, lalu update streak
// (fast path, dengan row lock per user di service streaks).
func RecordSession(db *gorm.DB, table *lettersSvc.Table, userID uuid.UUID, in SessionInput) (*model.QuranReadingSessionModel, *streakModel.QuranStreakModel, error) {
	session := BuildSession(table, userID, in)
	derived := dateonly.Normalize(session.QuranReadingSessionDerivedDate.Time)
	today := dateonly.Today(in.Timezone)

	var streak *streakModel.QuranStreakModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		delta := checkinSvc.CheckinDelta{
			AyatCount:    in.AyatEnd - in.AyatStart + 1,
			LetterCount:  session.QuranReadingSessionLetterCount,
			HasanatCount: session.QuranReadingSessionHasanatEarned,
			SessionCount: 1,
		}
		if err := checkinSvc.UpsertMerge(tx, userID, derived, delta); err != nil {
			return err
		}
		row, err := streakSvc.UpdateAfterCheckin(tx, userID, derived, today)
		if err != nil {
			return err
		}
		streak = row
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &session, streak, nil
}

// ListRange: riwayat sesi dalam window [from, to] atas derived_date,
// terbaru dulu.
func ListRange(db *gorm.DB, userID uuid.UUID, from, to time.Time, offset, limit int) ([]model.QuranReadingSessionModel, int64, error) {
	q := db.Model(&model.QuranReadingSessionModel{}).
		Where("quran_reading_session_user_id = ?", userID).
		Where("quran_reading_session_derived_date BETWEEN ? AND ?",
			dateonly.From(from), dateonly.From(to))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.QuranReadingSessionModel
	if err := q.Order("quran_reading_session_occurred_at DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
