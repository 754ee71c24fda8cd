package scheduler

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	streakModel "quranku_backend/internals/features/quran/streaks/model"
	streakSvc "quranku_backend/internals/features/quran/streaks/service"
	profileModel "quranku_backend/internals/features/users/profile/model"
	"quranku_backend/internals/helpers/dateonly"
)

// StartStreakLapseScheduler menjalankan sweep tiap jam: streak yang sudah
// lewat "kemarin" di timezone user masing-masing di-nol-kan current-nya
// (longest & last_date tidak disentuh). Tiap jam, bukan tiap hari, karena
// midnight tiap timezone jatuh di jam UTC yang berbeda.
//
// Sweep ini hanya merapikan tampilan; kebenaran streak tetap dijamin
// evaluasi lapse di read path dan recompute penuh.
func StartStreakLapseScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() { sweepLapsedStreaks(db) }); err != nil {
		log.Printf("[ERROR] Gagal daftar job streak lapse: %v", err)
		return c
	}
	c.Start()
	log.Println("✅ Scheduler streak lapse aktif (tiap jam)")
	return c
}

const sweepBatchSize = 500

func sweepLapsedStreaks(db *gorm.DB) {
	// Prefilter konservatif di SQL. Timezone jauh di depan UTC (+12..+14)
	// bisa sudah lapsed sebelum last_date lewat cutoff UTC ini; baris itu
	// baru kena sweep sehari UTC kemudian. Tidak masalah: read path selalu
	// evaluasi lapse live, sweep cuma merapikan kolom tersimpan.
	cutoff := dateonly.From(dateonly.AddDays(dateonly.Normalize(time.Now().UTC()), -1))

	lapsed := 0
	lastID := uint(0)
	for {
		var rows []streakModel.QuranStreakModel
		if err := db.
			Where("quran_streak_id > ?", lastID).
			Where("quran_streak_current > 0").
			Where("quran_streak_last_date IS NOT NULL AND quran_streak_last_date < ?", cutoff).
			Order("quran_streak_id ASC").
			Limit(sweepBatchSize).
			Find(&rows).Error; err != nil {
			log.Printf("[ERROR] Sweep streak lapse gagal ambil kandidat: %v", err)
			return
		}
		if len(rows) == 0 {
			break
		}
		lastID = rows[len(rows)-1].QuranStreakID
		lapsed += sweepBatch(db, rows)
		if len(rows) < sweepBatchSize {
			break
		}
	}
	if lapsed > 0 {
		log.Printf("[CLEANUP] %d streak lapsed di-nol-kan", lapsed)
	}
}

func sweepBatch(db *gorm.DB, rows []streakModel.QuranStreakModel) int {
	// Ambil timezone semua kandidat sekali jalan
	userIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		userIDs = append(userIDs, r.QuranStreakUserID)
	}
	var profiles []profileModel.UserProfileModel
	if err := db.
		Select("user_profile_user_id", "user_profile_timezone").
		Where("user_profile_user_id IN ?", userIDs).
		Find(&profiles).Error; err != nil {
		log.Printf("[ERROR] Sweep streak lapse gagal ambil profil: %v", err)
		return 0
	}
	tzByUser := make(map[uuid.UUID]string, len(profiles))
	for _, p := range profiles {
		tzByUser[p.UserProfileUserID] = p.UserProfileTimezone
	}

	lapsed := 0
	for _, r := range rows {
		today := dateonly.Today(tzByUser[r.QuranStreakUserID])
		state := streakSvc.StreakState{Current: r.QuranStreakCurrent, Longest: r.QuranStreakLongest}
		if r.QuranStreakLastDate != nil {
			t := dateonly.Normalize(r.QuranStreakLastDate.Time)
			state.LastDate = &t
		}
		if !streakSvc.IsLapsed(state, today) {
			continue
		}
		if err := db.Model(&streakModel.QuranStreakModel{}).
			Where("quran_streak_user_id = ? AND quran_streak_current = ?",
				r.QuranStreakUserID, r.QuranStreakCurrent).
			Update("quran_streak_current", 0).Error; err != nil {
			log.Printf("[ERROR] Gagal nol-kan streak user %s: %v", r.QuranStreakUserID, err)
			continue
		}
		lapsed++
	}
	return lapsed
}
