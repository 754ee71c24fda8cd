package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quranku_backend/internals/features/users/profile/model"
	"quranku_backend/internals/helpers/dateonly"
)

// GetOrCreate ambil profil user; kalau belum ada dibuat dengan default
// produk (timezone Asia/Jakarta, hasanat tampil).
func GetOrCreate(db *gorm.DB, userID uuid.UUID) (*model.UserProfileModel, error) {
	var row model.UserProfileModel
	err := db.Where("user_profile_user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = model.UserProfileModel{
			UserProfileUserID:         userID,
			UserProfileTimezone:       dateonly.DefaultTimezone,
			UserProfileHasanatVisible: true,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_profile_user_id"}},
			DoNothing: true,
		}).Create(&row).Error; err != nil {
			return nil, err
		}
		// Insert kalah race (DoNothing) → baca baris milik request lain.
		if row.UserProfileID == 0 {
			if err := db.Where("user_profile_user_id = ?", userID).First(&row).Error; err != nil {
				return nil, err
			}
		}
		return &row, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Timezone resolve timezone user untuk penentuan hari lokal. Tidak pernah
// gagal: profil hilang / DB error → default produk, bukan error ke user.
func Timezone(db *gorm.DB, userID uuid.UUID) string {
	var row model.UserProfileModel
	err := db.Select("user_profile_timezone").
		Where("user_profile_user_id = ?", userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dateonly.DefaultTimezone
	}
	if err != nil {
		log.Printf("[WARN] Gagal ambil timezone user %s: %v", userID, err)
		return dateonly.DefaultTimezone
	}
	if row.UserProfileTimezone == "" {
		return dateonly.DefaultTimezone
	}
	return row.UserProfileTimezone
}
