package model

import (
	"time"

	"github.com/google/uuid"

	"quranku_backend/internals/helpers/dateonly"
)

// QuranReadingSessionModel: satu aksi baca diskrit (surah + range ayat).
// letter_count & hasanat_earned dihitung sekali saat insert dari tabel huruf
// dan disimpan redundan supaya agregasi cepat. derived_date di-fix saat
// create; ganti timezone tidak menggeser sesi historis.
type QuranReadingSessionModel struct {
	QuranReadingSessionID            uint              `gorm:"column:quran_reading_session_id;primaryKey" json:"quran_reading_session_id"`
	QuranReadingSessionUserID        uuid.UUID         `gorm:"column:quran_reading_session_user_id;type:uuid;not null;index:idx_quran_session_user_date" json:"quran_reading_session_user_id"`
	QuranReadingSessionSurahNumber   int               `gorm:"column:quran_reading_session_surah_number;not null" json:"quran_reading_session_surah_number"`
	QuranReadingSessionAyatStart     int               `gorm:"column:quran_reading_session_ayat_start;not null" json:"quran_reading_session_ayat_start"`
	QuranReadingSessionAyatEnd       int               `gorm:"column:quran_reading_session_ayat_end;not null" json:"quran_reading_session_ayat_end"`
	QuranReadingSessionOccurredAt    time.Time         `gorm:"column:quran_reading_session_occurred_at;not null" json:"quran_reading_session_occurred_at"`
	QuranReadingSessionDerivedDate   dateonly.DateOnly `gorm:"column:quran_reading_session_derived_date;type:date;not null;index:idx_quran_session_user_date" json:"quran_reading_session_derived_date"`
	QuranReadingSessionLetterCount   int               `gorm:"column:quran_reading_session_letter_count;not null;default:0" json:"quran_reading_session_letter_count"`
	QuranReadingSessionHasanatEarned int               `gorm:"column:quran_reading_session_hasanat_earned;not null;default:0" json:"quran_reading_session_hasanat_earned"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (QuranReadingSessionModel) TableName() string {
	return "quran_reading_sessions"
}
