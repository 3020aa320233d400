package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	hafalanController "hafalanku_backend/internals/features/hafalan/controller"
	"hafalanku_backend/internals/mailer"
	authMiddleware "hafalanku_backend/internals/middlewares/auth"
)

// HafalanRoutes: progress engine. Baca progress/riwayat boleh semua role
// (ortu/santri hanya data sendiri, dicek di level route santri), tulis dan
// hapus khusus ustadz/admin.
func HafalanRoutes(app *fiber.App, db *gorm.DB, m mailer.Mailer) {
	ctrl := hafalanController.NewHafalanController(db, m)

	hafalan := app.Group("/api/hafalan", authMiddleware.AuthMiddleware(db))

	// Dashboard setoran terbaru untuk ustadz/admin. Didaftarkan sebelum
	// route berparameter supaya "terbaru" tidak tertangkap :santriId.
	hafalan.Get("/terbaru",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorUstadz("setoran terbaru"), constants.UstadzAndAdmin),
		ctrl.GetLatestAllSantri,
	)

	hafalan.Get("/:santriId/progress", ctrl.GetProgress)
	hafalan.Get("/:santriId/surah/:surahId", ctrl.GetDetailSurah)
	hafalan.Get("/:santriId/riwayat", ctrl.GetRiwayat)
	hafalan.Get("/:santriId/riwayat/detail", ctrl.GetRiwayatDetail)

	hafalan.Post("/:santriId",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorUstadz("simpan hafalan"), constants.UstadzAndAdmin),
		ctrl.SimpanHafalan,
	)
	hafalan.Delete("/:santriId/riwayat",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorUstadz("hapus riwayat hafalan"), constants.UstadzAndAdmin),
		ctrl.DeleteRiwayat,
	)
}
