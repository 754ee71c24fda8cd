package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// UserProfileModel menyimpan setting yang dipakai engine: timezone untuk
// resolusi hari lokal dan flag tampilan hasanat. Auth-nya sendiri di provider
// eksternal; user_id di sini opaque.
type UserProfileModel struct {
	UserProfileID             uint              `gorm:"column:user_profile_id;primaryKey" json:"user_profile_id"`
	UserProfileUserID         uuid.UUID         `gorm:"column:user_profile_user_id;type:uuid;not null;uniqueIndex" json:"user_profile_user_id"`
	UserProfileTimezone       string            `gorm:"column:user_profile_timezone;type:varchar(64);not null;default:'Asia/Jakarta'" json:"user_profile_timezone"`
	UserProfileHasanatVisible bool              `gorm:"column:user_profile_hasanat_visible;not null;default:true" json:"user_profile_hasanat_visible"`
	UserProfileFavoriteSurahs pq.Int64Array     `gorm:"column:user_profile_favorite_surahs;type:bigint[]" json:"user_profile_favorite_surahs"`
	UserProfilePreferences    datatypes.JSONMap `gorm:"column:user_profile_preferences" json:"user_profile_preferences"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}
