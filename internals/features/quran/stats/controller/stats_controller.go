package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkinDto "quranku_backend/internals/features/quran/checkins/dto"
	statsSvc "quranku_backend/internals/features/quran/stats/service"
	profileSvc "quranku_backend/internals/features/users/profile/service"
	helper "quranku_backend/internals/helpers"
	"quranku_backend/internals/helpers/dateonly"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// GET /api/u/stats/hasanat?from=&to=  (default: 30 hari terakhir)
func (ctrl *StatsController) Hasanat(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tz := profileSvc.Timezone(ctrl.DB, userID)
	today := dateonly.Today(tz)

	from := dateonly.AddDays(today, -30)
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

	result, err := statsSvc.HasanatStats(ctrl.DB, userID, from, to)
	if err != nil {
		log.Println("[ERROR] Gagal hitung statistik hasanat:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"from":  from.Format(dateonly.Layout),
		"to":    to.Format(dateonly.Layout),
		"stats": result,
	})
}

// GET /api/u/stats/daily?days=30
func (ctrl *StatsController) Daily(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	days, _ := strconv.Atoi(c.Query("days", "30"))
	tz := profileSvc.Timezone(ctrl.DB, userID)

	rows, err := statsSvc.Daily(ctrl.DB, userID, days, tz)
	if err != nil {
		log.Println("[ERROR] Gagal ambil breakdown harian:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "", checkinDto.ToCheckinResponseList(rows))
}

// GET /api/u/stats/khatam
func (ctrl *StatsController) Khatam(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	result, err := statsSvc.Khatam(ctrl.DB, userID)
	if err != nil {
		log.Println("[ERROR] Gagal hitung progres khatam:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "", result)
}
