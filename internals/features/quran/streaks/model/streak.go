package model

import (
	"time"

	"github.com/google/uuid"

	"quranku_backend/internals/helpers/dateonly"
)

// QuranStreakModel: satu baris per user, satu-satunya state engine yang
// persist. Dimutasi eksklusif lewat service streak (row lock per user).
type QuranStreakModel struct {
	QuranStreakID       uint               `gorm:"column:quran_streak_id;primaryKey" json:"quran_streak_id"`
	QuranStreakUserID   uuid.UUID          `gorm:"column:quran_streak_user_id;type:uuid;not null;uniqueIndex" json:"quran_streak_user_id"`
	QuranStreakCurrent  int                `gorm:"column:quran_streak_current;not null;default:0" json:"quran_streak_current"`
	QuranStreakLongest  int                `gorm:"column:quran_streak_longest;not null;default:0" json:"quran_streak_longest"`
	QuranStreakLastDate *dateonly.DateOnly `gorm:"column:quran_streak_last_date;type:date" json:"quran_streak_last_date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (QuranStreakModel) TableName() string {
	return "quran_streaks"
}
