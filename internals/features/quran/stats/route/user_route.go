package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsController "quranku_backend/internals/features/quran/stats/controller"
)

func StatsUserRoutes(router fiber.Router, db *gorm.DB) {
	controller := statsController.NewStatsController(db)
	statsRoutes := router.Group("/stats")

	statsRoutes.Get("/hasanat", controller.Hasanat)
	statsRoutes.Get("/daily", controller.Daily)
	statsRoutes.Get("/khatam", controller.Khatam)
}
