package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	checkinModel "quranku_backend/internals/features/quran/checkins/model"
	sessionModel "quranku_backend/internals/features/quran/sessions/model"
	"quranku_backend/internals/helpers/dateonly"
)

// HasanatStats memuat sesi + tanggal check-in user dalam window lalu
// menyerahkan ke agregator murni.
func HasanatStats(db *gorm.DB, userID uuid.UUID, from, to time.Time) (AggregateResult, error) {
	var sessions []sessionModel.QuranReadingSessionModel
	if err := db.
		Select("quran_reading_session_surah_number",
			"quran_reading_session_derived_date",
			"quran_reading_session_letter_count",
			"quran_reading_session_hasanat_earned").
		Where("quran_reading_session_user_id = ?", userID).
		Where("quran_reading_session_derived_date BETWEEN ? AND ?",
			dateonly.From(from), dateonly.From(to)).
		Find(&sessions).Error; err != nil {
		return AggregateResult{}, err
	}

	var rawDates []dateonly.DateOnly
	if err := db.Model(&checkinModel.QuranCheckinModel{}).
		Where("quran_checkin_user_id = ?", userID).
		Where("quran_checkin_date BETWEEN ? AND ?", dateonly.From(from), dateonly.From(to)).
		Pluck("quran_checkin_date", &rawDates).Error; err != nil {
		return AggregateResult{}, err
	}

	stats := make([]SessionStat, 0, len(sessions))
	for _, s := range sessions {
		stats = append(stats, SessionStat{
			SurahNumber:   s.QuranReadingSessionSurahNumber,
			DerivedDate:   s.QuranReadingSessionDerivedDate.Time,
			LetterCount:   s.QuranReadingSessionLetterCount,
			HasanatEarned: s.QuranReadingSessionHasanatEarned,
		})
	}
	dates := make([]time.Time, 0, len(rawDates))
	for _, d := range rawDates {
		dates = append(dates, d.Time)
	}
	return Aggregate(stats, dates, from, to), nil
}

// Daily: breakdown harian N hari terakhir dari agregat check-in (ascending).
func Daily(db *gorm.DB, userID uuid.UUID, days int, tz string) ([]checkinModel.QuranCheckinModel, error) {
	if days <= 0 {
		days = 30
	}
	since := dateonly.AddDays(dateonly.Today(tz), -days)

	var rows []checkinModel.QuranCheckinModel
	err := db.Where("quran_checkin_user_id = ?", userID).
		Where("quran_checkin_date >= ?", dateonly.From(since)).
		Order("quran_checkin_date ASC").
		Find(&rows).Error
	return rows, err
}

// Khatam: cakupan ayat distinct seluruh riwayat sesi user.
func Khatam(db *gorm.DB, userID uuid.UUID) (KhatamResult, error) {
	var sessions []sessionModel.QuranReadingSessionModel
	if err := db.
		Select("quran_reading_session_surah_number",
			"quran_reading_session_ayat_start",
			"quran_reading_session_ayat_end").
		Where("quran_reading_session_user_id = ?", userID).
		Find(&sessions).Error; err != nil {
		return KhatamResult{}, err
	}

	ranges := make([]AyatRange, 0, len(sessions))
	for _, s := range sessions {
		ranges = append(ranges, AyatRange{
			SurahNumber: s.QuranReadingSessionSurahNumber,
			AyatStart:   s.QuranReadingSessionAyatStart,
			AyatEnd:     s.QuranReadingSessionAyatEnd,
		})
	}
	return KhatamCoverage(ranges), nil
}
