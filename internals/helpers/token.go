package helper

import (
	"github.com/gofiber/fiber/v2"
)

// AuthUser: principal hasil verifikasi token, disimpan di Locals oleh
// AuthMiddleware. RoleID adalah id entitas profil (santri/ustadz/ortu),
// 0 untuk admin.
type AuthUser struct {
	ID     uint
	Role   string
	RoleID uint
}

// GetAuthUser mengambil principal dari context request.
func GetAuthUser(c *fiber.Ctx) (AuthUser, error) {
	raw := c.Locals("auth_user")
	if raw == nil {
		return AuthUser{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: principal tidak ditemukan")
	}
	user, ok := raw.(AuthUser)
	if !ok {
		return AuthUser{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: principal tidak valid")
	}
	return user, nil
}
