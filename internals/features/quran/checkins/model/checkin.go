package model

import (
	"time"

	"github.com/google/uuid"

	"quranku_backend/internals/helpers/dateonly"
)

// QuranCheckinModel: agregat bacaan satu user untuk satu hari lokal.
// Maksimal satu baris per (user, date); submit ulang di-merge (ditambah),
// tidak pernah bikin duplikat atau overwrite dengan nilai lebih kecil.
type QuranCheckinModel struct {
	QuranCheckinID           uint              `gorm:"column:quran_checkin_id;primaryKey" json:"quran_checkin_id"`
	QuranCheckinUserID       uuid.UUID         `gorm:"column:quran_checkin_user_id;type:uuid;not null;uniqueIndex:idx_quran_checkin_user_date" json:"quran_checkin_user_id"`
	QuranCheckinDate         dateonly.DateOnly `gorm:"column:quran_checkin_date;type:date;not null;uniqueIndex:idx_quran_checkin_user_date" json:"quran_checkin_date"`
	QuranCheckinAyatCount    int               `gorm:"column:quran_checkin_ayat_count;not null;default:0" json:"quran_checkin_ayat_count"`
	QuranCheckinLetterCount  int               `gorm:"column:quran_checkin_letter_count;not null;default:0" json:"quran_checkin_letter_count"`
	QuranCheckinHasanatCount int               `gorm:"column:quran_checkin_hasanat_count;not null;default:0" json:"quran_checkin_hasanat_count"`
	QuranCheckinSessionCount int               `gorm:"column:quran_checkin_session_count;not null;default:0" json:"quran_checkin_session_count"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (QuranCheckinModel) TableName() string {
	return "quran_checkins"
}
