package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	streakController "quranku_backend/internals/features/quran/streaks/controller"
)

func StreakUserRoutes(router fiber.Router, db *gorm.DB) {
	controller := streakController.NewStreakController(db)
	streakRoutes := router.Group("/streaks")

	streakRoutes.Get("/", controller.GetByUser)
	streakRoutes.Post("/recalculate", controller.Recalculate)
}
