package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	familyController "quranku_backend/internals/features/families/controller"
	"quranku_backend/internals/middlewares"
)

func FamilyUserRoutes(router fiber.Router, db *gorm.DB) {
	controller := familyController.NewFamilyController(db)
	familyRoutes := router.Group("/families")

	familyRoutes.Post("/", middlewares.WriteRateLimiter(), controller.Create)
	familyRoutes.Get("/", controller.MyFamilies)
	familyRoutes.Post("/join", middlewares.WriteRateLimiter(), controller.Join)
	familyRoutes.Get("/:family_id/members", controller.Members)
	familyRoutes.Post("/:family_id/invites", middlewares.WriteRateLimiter(), controller.CreateInvite)
	familyRoutes.Get("/:family_id/stats", controller.Stats)
}
