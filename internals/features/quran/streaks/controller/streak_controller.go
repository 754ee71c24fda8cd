package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/quran/streaks/dto"
	streakSvc "quranku_backend/internals/features/quran/streaks/service"
	profileSvc "quranku_backend/internals/features/users/profile/service"
	helper "quranku_backend/internals/helpers"
	"quranku_backend/internals/helpers/dateonly"
)

type StreakController struct {
	DB *gorm.DB
}

func NewStreakController(db *gorm.DB) *StreakController {
	return &StreakController{DB: db}
}

// GET /api/u/streaks
// Record yang tersimpan + evaluasi lapse live menurut timezone user.
func (ctrl *StreakController) GetByUser(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	row, err := streakSvc.GetOrEmpty(ctrl.DB, userID)
	if err != nil {
		log.Println("[ERROR] Gagal ambil streak:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data streak")
	}

	tz := profileSvc.Timezone(ctrl.DB, userID)
	return helper.JsonOK(c, "", dto.ToStreakResponse(row, dateonly.Today(tz)))
}

// POST /api/u/streaks/recalculate
// Recompute penuh dari seluruh tanggal check-in — jalur repair idempotent
// kalau record sempat rusak (mis. serialisasi per-user terlanggar).
func (ctrl *StreakController) Recalculate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tz := profileSvc.Timezone(ctrl.DB, userID)
	today := dateonly.Today(tz)

	row, err := streakSvc.Recalculate(ctrl.DB, userID, today)
	if err != nil {
		if errors.Is(err, streakSvc.ErrInconsistentState) {
			log.Println("[ERROR] State streak tidak konsisten:", err)
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		log.Println("[ERROR] Gagal recalculate streak:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ulang streak")
	}

	return helper.JsonUpdated(c, "Streak dihitung ulang", dto.ToStreakResponse(row, today))
}
