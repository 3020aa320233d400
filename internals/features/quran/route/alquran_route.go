package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quranController "hafalanku_backend/internals/features/quran/controller"
	authMiddleware "hafalanku_backend/internals/middlewares/auth"
)

func AlquranRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := quranController.NewAlquranController(db)

	alquran := app.Group("/api/alquran", authMiddleware.AuthMiddleware(db))
	alquran.Get("/", ctrl.GetAllSurah)
	alquran.Get("/:nomor", ctrl.GetSurahByNomor)
}
