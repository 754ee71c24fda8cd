package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"quranku_backend/internals/features/users/profile/dto"
	profileSvc "quranku_backend/internals/features/users/profile/service"
	helper "quranku_backend/internals/helpers"
)

var validate = validator.New()

type UserProfileController struct {
	DB *gorm.DB
}

func NewUserProfileController(db *gorm.DB) *UserProfileController {
	return &UserProfileController{DB: db}
}

// GET /api/u/profile
func (ctrl *UserProfileController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	row, err := profileSvc.GetOrCreate(ctrl.DB, userID)
	if err != nil {
		log.Println("[ERROR] Gagal ambil profil:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "", dto.ToProfileResponse(row))
}

// PATCH /api/u/profile
// Ganti timezone hanya mempengaruhi resolusi hari untuk event BARU;
// derived_date historis tidak pernah dihitung ulang.
func (ctrl *UserProfileController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.ProfileTimezone != nil {
		if _, err := time.LoadLocation(*req.ProfileTimezone); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Timezone tidak dikenal")
		}
	}

	row, err := profileSvc.GetOrCreate(ctrl.DB, userID)
	if err != nil {
		log.Println("[ERROR] Gagal ambil profil:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	if req.ProfileTimezone != nil {
		row.UserProfileTimezone = *req.ProfileTimezone
	}
	if req.ProfileHasanatVisible != nil {
		row.UserProfileHasanatVisible = *req.ProfileHasanatVisible
	}
	if req.ProfileFavoriteSurahs != nil {
		row.UserProfileFavoriteSurahs = pq.Int64Array(req.ProfileFavoriteSurahs)
	}
	if req.ProfilePreferences != nil {
		row.UserProfilePreferences = req.ProfilePreferences
	}

	if err := ctrl.DB.Save(row).Error; err != nil {
		log.Println("[ERROR] Gagal update profil:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
	}
	return helper.JsonUpdated(c, "Profil diperbarui", dto.ToProfileResponse(row))
}
