package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkinController "quranku_backend/internals/features/quran/checkins/controller"
	"quranku_backend/internals/middlewares"
)

func CheckinUserRoutes(router fiber.Router, db *gorm.DB) {
	controller := checkinController.NewCheckinController(db)
	checkinRoutes := router.Group("/checkins")

	checkinRoutes.Post("/", middlewares.WriteRateLimiter(), controller.Create)
	checkinRoutes.Get("/", controller.List)
	checkinRoutes.Get("/today", controller.GetToday)
}
