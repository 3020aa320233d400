package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "hafalanku_backend/internals/features/users/auth/controller"
	"hafalanku_backend/internals/mailer"
	"hafalanku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, m mailer.Mailer) {
	authCtrl := authController.NewAuthController(db)
	resetCtrl := authController.NewResetPasswordController(db, m)

	auth := app.Group("/api/auth")

	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/logout", authCtrl.Logout)

	auth.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), resetCtrl.ForgotPassword)
	auth.Post("/verify-token", resetCtrl.VerifyToken)
	auth.Post("/reset-password", resetCtrl.ResetPassword)
}
