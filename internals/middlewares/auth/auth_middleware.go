// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"hafalanku_backend/internals/configs"
	authModel "hafalanku_backend/internals/features/users/auth/model"
	helper "hafalanku_backend/internals/helpers"
)

// AuthMiddleware: verifikasi token + platform.
//   - Header X-Platform wajib (web|mobile).
//   - Token web punya exp; token mobile tanpa exp tapi harus ada di token_stores
//     (revoke = hapus baris).
//   - Token mobile tidak boleh dipakai di web.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		platform := c.Get("X-Platform")
		if platform != "web" && platform != "mobile" {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid or missing X-Platform header")
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token invalid")
		}

		isMobile, _ := claims["is_mobile"].(bool)

		if platform == "web" && isMobile {
			return fiber.NewError(fiber.StatusForbidden, "Mobile token cannot be used on web")
		}

		if platform == "mobile" {
			var stored authModel.TokenStoreModel
			if err := db.Where("token = ?", tokenString).First(&stored).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusUnauthorized, "Token not found or revoked for mobile")
				}
				log.Println("[ERROR] DB error saat cek token store:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			if stored.Platform != "mobile" {
				return fiber.NewError(fiber.StatusForbidden, "Token only valid for "+stored.Platform)
			}
		}

		user, err := claimsToAuthUser(claims)
		if err != nil {
			log.Println("[ERROR] Klaim token tidak lengkap:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid claims")
		}

		c.Locals("auth_user", user)
		c.Locals("userRole", user.Role)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("Token missing")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("Invalid Authorization header")
	}
	return parts[1], nil
}

func claimsToAuthUser(claims jwt.MapClaims) (helper.AuthUser, error) {
	idF, ok := claims["id"].(float64)
	if !ok || idF <= 0 {
		return helper.AuthUser{}, errors.New("missing id claim")
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return helper.AuthUser{}, errors.New("missing role claim")
	}

	// role_id opsional (admin tidak punya entitas profil)
	var roleID uint
	if ridF, ok := claims["role_id"].(float64); ok && ridF > 0 {
		roleID = uint(ridF)
	}

	return helper.AuthUser{ID: uint(idF), Role: role, RoleID: roleID}, nil
}
