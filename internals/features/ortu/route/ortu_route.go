package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	ortuController "hafalanku_backend/internals/features/ortu/controller"
	"hafalanku_backend/internals/mailer"
	authMiddleware "hafalanku_backend/internals/middlewares/auth"
)

func OrtuRoutes(app *fiber.App, db *gorm.DB, m mailer.Mailer) {
	ctrl := ortuController.NewOrtuController(db, m)

	ortu := app.Group("/api/ortu", authMiddleware.AuthMiddleware(db))

	ortu.Post("/",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("pendaftaran orang tua"), constants.AdminOnly),
		ctrl.Create,
	)
	ortu.Get("/",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorUstadz("daftar orang tua"), constants.UstadzAndAdmin),
		ctrl.GetAll,
	)

	// Ortu boleh lihat profilnya sendiri (beserta anak-anaknya), admin bebas.
	ortu.Get("/:id", authMiddleware.IsOrtuOrAdmin(), ctrl.GetByID)

	ortu.Put("/:id",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("ubah orang tua"), constants.AdminOnly),
		ctrl.Update,
	)
	ortu.Delete("/:id",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("hapus orang tua"), constants.AdminOnly),
		ctrl.Delete,
	)
}
