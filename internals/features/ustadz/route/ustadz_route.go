package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	ustadzController "hafalanku_backend/internals/features/ustadz/controller"
	"hafalanku_backend/internals/mailer"
	authMiddleware "hafalanku_backend/internals/middlewares/auth"
)

func UstadzRoutes(app *fiber.App, db *gorm.DB, m mailer.Mailer) {
	ctrl := ustadzController.NewUstadzController(db, m)

	ustadz := app.Group("/api/ustadz", authMiddleware.AuthMiddleware(db))

	ustadz.Post("/",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("pendaftaran ustadz"), constants.AdminOnly),
		ctrl.Create,
	)
	ustadz.Get("/",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorUstadz("daftar ustadz"), constants.UstadzAndAdmin),
		ctrl.GetAll,
	)

	// Ustadz boleh lihat profilnya sendiri, admin bebas.
	ustadz.Get("/:id", authMiddleware.IsUstadzOrAdmin(), ctrl.GetByID)

	ustadz.Put("/:id",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("ubah ustadz"), constants.AdminOnly),
		ctrl.Update,
	)
	ustadz.Delete("/:id",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("hapus ustadz"), constants.AdminOnly),
		ctrl.Delete,
	)
}
