package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"hafalanku_backend/internals/configs"
)

const webTokenLifetime = 12 * time.Hour

// GenerateWebToken: token web dengan exp 12 jam.
func GenerateWebToken(userID uint, role string, roleID uint) (string, error) {
	claims := jwt.MapClaims{
		"id":      userID,
		"role":    role,
		"role_id": roleID,
		"exp":     time.Now().Add(webTokenLifetime).Unix(),
	}
	return signToken(claims)
}

// GenerateMobileToken: token mobile tanpa exp; validitas dicek lewat
// token_stores sehingga bisa direvoke dari server.
func GenerateMobileToken(userID uint, role string, roleID uint) (string, error) {
	claims := jwt.MapClaims{
		"id":        userID,
		"role":      role,
		"role_id":   roleID,
		"is_mobile": true,
	}
	return signToken(claims)
}

func signToken(claims jwt.MapClaims) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
