// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	familyRoutes "quranku_backend/internals/features/families/route"
	checkinRoutes "quranku_backend/internals/features/quran/checkins/route"
	lettersSvc "quranku_backend/internals/features/quran/letters/service"
	sessionRoutes "quranku_backend/internals/features/quran/sessions/route"
	statsRoutes "quranku_backend/internals/features/quran/stats/route"
	streakRoutes "quranku_backend/internals/features/quran/streaks/route"
	profileRoutes "quranku_backend/internals/features/users/profile/route"
	authMiddleware "quranku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, table *lettersSvc.Table) {
	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())

	log.Println("[INFO] Mounting Profile routes...")
	profileRoutes.ProfileUserRoutes(private, db)

	log.Println("[INFO] Mounting Checkin routes...")
	checkinRoutes.CheckinUserRoutes(private, db)

	log.Println("[INFO] Mounting Streak routes...")
	streakRoutes.StreakUserRoutes(private, db)

	log.Println("[INFO] Mounting Reading Session routes...")
	sessionRoutes.ReadingSessionUserRoutes(private, db, table)

	log.Println("[INFO] Mounting Stats routes...")
	statsRoutes.StatsUserRoutes(private, db)

	log.Println("[INFO] Mounting Family routes...")
	familyRoutes.FamilyUserRoutes(private, db)
}
