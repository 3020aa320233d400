package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	santriController "hafalanku_backend/internals/features/santri/controller"
	"hafalanku_backend/internals/mailer"
	authMiddleware "hafalanku_backend/internals/middlewares/auth"
)

func SantriRoutes(app *fiber.App, db *gorm.DB, m mailer.Mailer) {
	ctrl := santriController.NewSantriController(db, m)

	santri := app.Group("/api/santri", authMiddleware.AuthMiddleware(db))

	// Papan peringkat boleh dilihat semua role terautentikasi. Didaftarkan
	// sebelum /:id supaya tidak tertangkap parameter.
	santri.Get("/peringkat", ctrl.GetPeringkat)

	santri.Get("/",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorUstadz("daftar santri"), constants.UstadzAndAdmin),
		ctrl.GetAll,
	)
	santri.Post("/",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("pendaftaran santri"), constants.AdminOnly),
		ctrl.Create,
	)
	santri.Post("/reset-poin",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("reset poin"), constants.AdminOnly),
		ctrl.ResetAllPoin,
	)

	// Profil: santri hanya boleh lihat miliknya sendiri, ustadz/admin bebas.
	santri.Get("/:id", authMiddleware.IsAdminUstadzSantri(), ctrl.GetByID)

	santri.Put("/:id",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("ubah santri"), constants.AdminOnly),
		ctrl.Update,
	)
	santri.Delete("/:id",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("hapus santri"), constants.AdminOnly),
		ctrl.Delete,
	)
	santri.Post("/:id/kurangi-poin",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorUstadz("kurangi poin"), constants.UstadzAndAdmin),
		ctrl.DeductPoin,
	)
}
