package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quranku_backend/internals/features/quran/checkins/model"
	"quranku_backend/internals/helpers/dateonly"
)

// CheckinDelta: tambahan yang di-merge ke agregat harian. Semua field
// non-negatif; merge selalu additive, tidak pernah overwrite.
type CheckinDelta struct {
	AyatCount    int
	LetterCount  int
	HasanatCount int
	SessionCount int
}

// UpsertMerge menulis/me-merge check-in untuk (user, date) dalam SATU
// statement INSERT ... ON CONFLICT. Atomic di level DB, jadi dua device yang
// submit bersamaan tidak saling menimpa (lihat juga row lock streak di
// service streaks).
func UpsertMerge(db *gorm.DB, userID uuid.UUID, date time.Time, delta CheckinDelta) error {
	row := model.QuranCheckinModel{
		QuranCheckinUserID:       userID,
		QuranCheckinDate:         dateonly.From(date),
		QuranCheckinAyatCount:    delta.AyatCount,
		QuranCheckinLetterCount:  delta.LetterCount,
		QuranCheckinHasanatCount: delta.HasanatCount,
		QuranCheckinSessionCount: delta.SessionCount,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "quran_checkin_user_id"},
			{Name: "quran_checkin_date"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quran_checkin_ayat_count":    gorm.Expr("quran_checkins.quran_checkin_ayat_count + EXCLUDED.quran_checkin_ayat_count"),
			"quran_checkin_letter_count":  gorm.Expr("quran_checkins.quran_checkin_letter_count + EXCLUDED.quran_checkin_letter_count"),
			"quran_checkin_hasanat_count": gorm.Expr("quran_checkins.quran_checkin_hasanat_count + EXCLUDED.quran_checkin_hasanat_count"),
			"quran_checkin_session_count": gorm.Expr("quran_checkins.quran_checkin_session_count + EXCLUDED.quran_checkin_session_count"),
			"updated_at":                  time.Now(),
		}),
	}).Create(&row).Error
}

// CheckinDates mengambil seluruh tanggal check-in distinct milik user —
// input otoritatif untuk RecomputeStreak.
func CheckinDates(db *gorm.DB, userID uuid.UUID) ([]time.Time, error) {
	var raw []dateonly.DateOnly
	if err := db.Model(&model.QuranCheckinModel{}).
		Where("quran_checkin_user_id = ?", userID).
		Order("quran_checkin_date ASC").
		Pluck("quran_checkin_date", &raw).Error; err != nil {
		return nil, err
	}
	dates := make([]time.Time, 0, len(raw))
	for _, d := range raw {
		dates = append(dates, dateonly.Normalize(d.Time))
	}
	return dates, nil
}

// GetByDate ambil satu agregat harian; (nil, nil) kalau belum ada.
func GetByDate(db *gorm.DB, userID uuid.UUID, date time.Time) (*model.QuranCheckinModel, error) {
	var row model.QuranCheckinModel
	err := db.Where("quran_checkin_user_id = ? AND quran_checkin_date = ?",
		userID, dateonly.From(date)).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListRange ambil agregat harian dalam window [from, to] inklusif, terbaru
// dulu, dengan offset/limit dari helper pagination.
func ListRange(db *gorm.DB, userID uuid.UUID, from, to time.Time, offset, limit int) ([]model.QuranCheckinModel, int64, error) {
	q := db.Model(&model.QuranCheckinModel{}).
		Where("quran_checkin_user_id = ?", userID).
		Where("quran_checkin_date BETWEEN ? AND ?", dateonly.From(from), dateonly.From(to))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.QuranCheckinModel
	if err := q.Order("quran_checkin_date DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
