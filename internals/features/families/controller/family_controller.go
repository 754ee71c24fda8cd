package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/families/dto"
	familySvc "quranku_backend/internals/features/families/service"
	profileSvc "quranku_backend/internals/features/users/profile/service"
	helper "quranku_backend/internals/helpers"
	"quranku_backend/internals/helpers/dateonly"
)

var validate = validator.New()

type FamilyController struct {
	DB *gorm.DB
}

func NewFamilyController(db *gorm.DB) *FamilyController {
	return &FamilyController{DB: db}
}

func parseFamilyID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("family_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, helper.JsonError(c, fiber.StatusBadRequest, "Parameter family_id tidak valid")
	}
	return uint(id), nil
}

// POST /api/u/families
// Pembuat otomatis jadi anggota dengan role owner.
func (ctrl *FamilyController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	family, err := familySvc.CreateFamily(ctrl.DB, userID, req.FamilyName)
	if err != nil {
		log.Println("[ERROR] Gagal membuat family:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat family")
	}

	return helper.JsonCreated(c, "Family berhasil dibuat", dto.ToFamilyResponse(family))
}

// GET /api/u/families
// Semua family yang diikuti requester, plus role-nya di masing-masing.
func (ctrl *FamilyController) MyFamilies(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	rows, err := familySvc.MyFamilies(ctrl.DB, userID)
	if err != nil {
		log.Println("[ERROR] Gagal ambil daftar family:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar family")
	}
	return helper.JsonOK(c, "", dto.ToFamilyResponseList(rows))
}

// GET /api/u/families/:family_id/members
func (ctrl *FamilyController) Members(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	familyID, err := parseFamilyID(c)
	if err != nil {
		return err
	}

	rows, err := familySvc.Members(ctrl.DB, familyID, userID)
	if err != nil {
		if errors.Is(err, familySvc.ErrNotFamilyMember) {
			return helper.JsonError(c, fiber.StatusForbidden, "Kamu bukan anggota family ini")
		}
		log.Println("[ERROR] Gagal ambil anggota family:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota family")
	}
	return helper.JsonOK(c, "", dto.ToFamilyMemberResponseList(rows))
}

// POST /api/u/families/:family_id/invites
// Kode bisa dipakai berulang sampai kedaluwarsa, default 24 jam.
func (ctrl *FamilyController) CreateInvite(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	familyID, err := parseFamilyID(c)
	if err != nil {
		return err
	}

	var req dto.CreateInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	ttl := time.Duration(req.InviteTTLMinutes) * time.Minute
	invite, err := familySvc.CreateInvite(ctrl.DB, familyID, userID, ttl)
	if err != nil {
		if errors.Is(err, familySvc.ErrNotFamilyMember) {
			return helper.JsonError(c, fiber.StatusForbidden, "Kamu bukan anggota family ini")
		}
		log.Println("[ERROR] Gagal membuat invite:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kode undangan")
	}
	return helper.JsonCreated(c, "Kode undangan berhasil dibuat", dto.ToFamilyInviteResponse(invite))
}

// POST /api/u/families/join
// Idempotent: redeem ulang oleh anggota yang sama tidak bikin baris duplikat.
func (ctrl *FamilyController) Join(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RedeemInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	family, err := familySvc.RedeemInvite(ctrl.DB, userID, req.InviteCode)
	if err != nil {
		if errors.Is(err, familySvc.ErrInviteInvalid) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kode undangan tidak valid atau sudah kedaluwarsa")
		}
		log.Println("[ERROR] Gagal redeem invite:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal bergabung ke family")
	}
	return helper.JsonOK(c, "Berhasil bergabung ke family", dto.ToFamilyResponse(family))
}

// GET /api/u/families/:family_id/stats?from=&to=  (default: 30 hari terakhir)
// Leaderboard anggota + cahaya rumah, "hari ini" menurut timezone requester.
func (ctrl *FamilyController) Stats(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	familyID, err := parseFamilyID(c)
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

	stats, err := familySvc.Stats(ctrl.DB, familyID, userID, from, to, today)
	if err != nil {
		if errors.Is(err, familySvc.ErrNotFamilyMember) {
			return helper.JsonError(c, fiber.StatusForbidden, "Kamu bukan anggota family ini")
		}
		log.Println("[ERROR] Gagal hitung statistik family:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik family")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"from":  from.Format(dateonly.Layout),
		"to":    to.Format(dateonly.Layout),
		"stats": stats,
	})
}
