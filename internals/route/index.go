package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	databases "hafalanku_backend/internals/databases"
	chartRoute "hafalanku_backend/internals/features/chart/route"
	hafalanRoute "hafalanku_backend/internals/features/hafalan/route"
	ortuRoute "hafalanku_backend/internals/features/ortu/route"
	quranRoute "hafalanku_backend/internals/features/quran/route"
	santriRoute "hafalanku_backend/internals/features/santri/route"
	authRoute "hafalanku_backend/internals/features/users/auth/route"
	ustadzRoute "hafalanku_backend/internals/features/ustadz/route"
	helper "hafalanku_backend/internals/helpers"
	"hafalanku_backend/internals/mailer"
	authMiddleware "hafalanku_backend/internals/middlewares/auth"
	seeds "hafalanku_backend/internals/seeds"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB, m mailer.Mailer) {
	BaseRoutes(app, db)

	authRoute.AuthRoutes(app, db, m)
	quranRoute.AlquranRoutes(app, db)
	santriRoute.SantriRoutes(app, db, m)
	ustadzRoute.UstadzRoutes(app, db, m)
	ortuRoute.OrtuRoutes(app, db, m)
	hafalanRoute.HafalanRoutes(app, db, m)
	chartRoute.ChartRoutes(app, db)

	// Trigger ulang seeder katalog, untuk refresh data referensi tanpa restart.
	app.Post("/api/seed",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("seed data"), constants.AdminOnly),
		func(c *fiber.Ctx) error {
			seeds.RunAllSeeds(db)
			return helper.Success(c, "Seeder selesai dijalankan", nil)
		},
	)
}

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hafalanku backend up 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := databases.DB.DB()
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
