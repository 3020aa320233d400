package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "hafalanku_backend/internals/features/users/auth/service"
	helper "hafalanku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	platform := c.Get("X-Platform")
	if platform != "web" && platform != "mobile" {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid or missing X-Platform header")
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := authService.Login(ctrl.DB, req.Email, req.Password, platform)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal login")
	}

	return helper.Success(c, "Login berhasil", result)
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Token missing")
	}

	if err := authService.Logout(ctrl.DB, parts[1]); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal logout")
	}
	return helper.Success(c, "Logout berhasil", nil)
}
