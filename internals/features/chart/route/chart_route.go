package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chartController "hafalanku_backend/internals/features/chart/controller"
	authMiddleware "hafalanku_backend/internals/middlewares/auth"
)

// ChartRoutes: grafik poin harian. Semua role terautentikasi boleh lihat
// (ortu memantau anaknya, santri melihat dirinya sendiri).
func ChartRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := chartController.NewChartController(db)

	chart := app.Group("/api/chart", authMiddleware.AuthMiddleware(db))
	chart.Get("/:santriId", ctrl.GetSetoranChart)
}
