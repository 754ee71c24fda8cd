package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"quranku_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware global dengan urutan:
// recovery → logger → CORS → rate limiter
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
