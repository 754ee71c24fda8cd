package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/quran/checkins/dto"
	checkinSvc "quranku_backend/internals/features/quran/checkins/service"
	streakDto "quranku_backend/internals/features/quran/streaks/dto"
	streakSvc "quranku_backend/internals/features/quran/streaks/service"
	profileSvc "quranku_backend/internals/features/users/profile/service"
	helper "quranku_backend/internals/helpers"
	"quranku_backend/internals/helpers/dateonly"
)

var validate = validator.New()

type CheckinController struct {
	DB *gorm.DB
}

func NewCheckinController(db *gorm.DB) *CheckinController {
	return &CheckinController{DB: db}
}

// POST /api/u/checkins
// Merge additive ke agregat hari tsb + update streak dalam satu transaksi.
func (ctrl *CheckinController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	tz := profileSvc.Timezone(ctrl.DB, userID)
	today := dateonly.Today(tz)

	date := today
	if req.CheckinDate != "" {
		parsed, err := dateonly.Parse(req.CheckinDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
		}
		date = parsed.Time
	}
	if date.After(today) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Tidak bisa mencatat bacaan untuk tanggal yang akan datang")
	}

	var streakResp *streakDto.StreakResponse
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		delta := checkinSvc.CheckinDelta{AyatCount: req.CheckinAyatCount}
		if err := checkinSvc.UpsertMerge(tx, userID, date, delta); err != nil {
			return err
		}
		row, err := streakSvc.UpdateAfterCheckin(tx, userID, date, today)
		if err != nil {
			return err
		}
		streakResp = streakDto.ToStreakResponse(row, today)
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Gagal simpan checkin:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan check-in")
	}

	checkin, err := checkinSvc.GetByDate(ctrl.DB, userID, date)
	if err != nil || checkin == nil {
		log.Println("[ERROR] Gagal baca checkin setelah upsert:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca check-in")
	}

	return helper.JsonCreated(c, "Check-in tercatat", fiber.Map{
		"checkin": dto.ToCheckinResponse(checkin),
		"streak":  streakResp,
	})
}

// GET /api/u/checkins/today
func (ctrl *CheckinController) GetToday(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tz := profileSvc.Timezone(ctrl.DB, userID)
	checkin, err := checkinSvc.GetByDate(ctrl.DB, userID, dateonly.Today(tz))
	if err != nil {
		log.Println("[ERROR] Gagal ambil checkin hari ini:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if checkin == nil {
		return helper.JsonOK(c, "Belum ada bacaan hari ini", nil)
	}
	return helper.JsonOK(c, "", dto.ToCheckinResponse(checkin))
}

// GET /api/u/checkins?from=&to=&page=&per_page=
func (ctrl *CheckinController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tz := profileSvc.Timezone(ctrl.DB, userID)
	today := dateonly.Today(tz)

	from := dateonly.AddDays(today, -365)
	to := today
	if s := c.Query("from"); s != "" {
		d, err := dateonly.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter from tidak valid")
		}
		from = d.Time
	}
	if s := c.Query("to"); s != "" {
		d, err := dateonly.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter to tidak valid")
		}
		to = d.Time
	}

	paging := helper.ResolvePaging(c, 30, 100)
	rows, total, err := checkinSvc.ListRange(ctrl.DB, userID, from, to, paging.Offset, paging.Limit)
	if err != nil {
		log.Println("[ERROR] Gagal ambil daftar checkin:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "", dto.ToCheckinResponseList(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
