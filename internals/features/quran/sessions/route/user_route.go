package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lettersSvc "quranku_backend/internals/features/quran/letters/service"
	sessionController "quranku_backend/internals/features/quran/sessions/controller"
	"quranku_backend/internals/middlewares"
)

func ReadingSessionUserRoutes(router fiber.Router, db *gorm.DB, table *lettersSvc.Table) {
	controller := sessionController.NewReadingSessionController(db, table)
	sessionRoutes := router.Group("/reading-sessions")

	sessionRoutes.Post("/", middlewares.WriteRateLimiter(), controller.Create)
	sessionRoutes.Get("/", controller.List)
}
