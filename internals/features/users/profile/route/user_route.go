package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileController "quranku_backend/internals/features/users/profile/controller"
)

func ProfileUserRoutes(router fiber.Router, db *gorm.DB) {
	controller := profileController.NewUserProfileController(db)
	profileRoutes := router.Group("/profile")

	profileRoutes.Get("/", controller.Get)
	profileRoutes.Patch("/", controller.Update)
}
