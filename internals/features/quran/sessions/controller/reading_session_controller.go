package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lettersSvc "quranku_backend/internals/features/quran/letters/service"
	"quranku_backend/internals/features/quran/sessions/dto"
	sessionSvc "quranku_backend/internals/features/quran/sessions/service"
	streakDto "quranku_backend/internals/features/quran/streaks/dto"
	profileSvc "quranku_backend/internals/features/users/profile/service"
	helper "quranku_backend/internals/helpers"
	"quranku_backend/internals/helpers/dateonly"
)

var validate = validator.New()

type ReadingSessionController struct {
	DB    *gorm.DB
	Table *lettersSvc.Table
}

func NewReadingSessionController(db *gorm.DB, table *lettersSvc.Table) *ReadingSessionController {
	return &ReadingSessionController{DB: db, Table: table}
}

// POST /api/u/reading-sessions
func (ctrl *ReadingSessionController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ReadingSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.SessionAyatEnd > lettersSvc.AyatInSurah(req.SessionSurahNumber) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Ayat melebihi jumlah ayat surah tersebut")
	}

	occurredAt := time.Now().UTC()
	if req.SessionOccurredAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.SessionOccurredAt)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format occurred_at tidak valid (RFC3339)")
		}
		occurredAt = parsed.UTC()
	}

	tz := profileSvc.Timezone(ctrl.DB, userID)
	if dateonly.LocalDate(occurredAt, tz).After(dateonly.Today(tz)) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Tidak bisa mencatat bacaan untuk tanggal yang akan datang")
	}

	session, streak, err := sessionSvc.RecordSession(ctrl.DB, ctrl.Table, userID, sessionSvc.SessionInput{
		SurahNumber: req.SessionSurahNumber,
		AyatStart:   req.SessionAyatStart,
		AyatEnd:     req.SessionAyatEnd,
		OccurredAt:  occurredAt,
		Timezone:    tz,
	})
	if err != nil {
		log.Println("[ERROR] Gagal simpan reading session:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi bacaan")
	}

	return helper.JsonCreated(c, "Sesi bacaan tercatat", fiber.Map{
		"session": dto.ToReadingSessionResponse(session),
		"streak":  streakDto.ToStreakResponse(streak, dateonly.Today(tz)),
	})
}

// GET /api/u/reading-sessions?from=&to=&page=&per_page=
func (ctrl *ReadingSessionController) List(c *fiber.Ctx) error {
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

	paging := helper.ResolvePaging(c, 20, 100)
	rows, total, err := sessionSvc.ListRange(ctrl.DB, userID, from, to, paging.Offset, paging.Limit)
	if err != nil {
		log.Println("[ERROR] Gagal ambil riwayat sesi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "", dto.ToReadingSessionResponseList(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
