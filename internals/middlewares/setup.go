package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares pasang middleware dasar (urutan penting: recovery paling awal).
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Setting up middlewares...")

	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
