package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "hafalanku_backend/internals/features/users/auth/service"
	helper "hafalanku_backend/internals/helpers"
	"hafalanku_backend/internals/mailer"
)

type ResetPasswordController struct {
	DB       *gorm.DB
	Mailer   mailer.Mailer
	Validate *validator.Validate
}

func NewResetPasswordController(db *gorm.DB, m mailer.Mailer) *ResetPasswordController {
	return &ResetPasswordController{DB: db, Mailer: m, Validate: validator.New()}
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyTokenRequest struct {
	Token string `json:"token" validate:"required,len=6,numeric"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// POST /api/auth/forgot-password
func (ctrl *ResetPasswordController) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := authService.ForgotPassword(ctrl.DB, ctrl.Mailer, req.Email); err != nil {
		if errors.Is(err, authService.ErrEmailNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses permintaan reset password")
	}

	return helper.Success(c, "Token reset password sudah dikirim ke email Anda", nil)
}

// POST /api/auth/verify-token
func (ctrl *ResetPasswordController) VerifyToken(c *fiber.Ctx) error {
	var req VerifyTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	valid, err := authService.VerifyResetToken(ctrl.DB, req.Token)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal verifikasi token")
	}
	if !valid {
		return helper.Error(c, fiber.StatusBadRequest, "Token tidak valid atau sudah kadaluarsa")
	}
	return helper.Success(c, "Token valid", fiber.Map{"valid": true})
}

// POST /api/auth/reset-password
func (ctrl *ResetPasswordController) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := authService.ResetPasswordWithToken(ctrl.DB, req.Token, req.NewPassword); err != nil {
		if errors.Is(err, authService.ErrResetTokenInvalid) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal reset password")
	}

	return helper.Success(c, "Password berhasil direset", nil)
}
