package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"hafalanku_backend/internals/configs"
)

func parseClaims(t *testing.T, tokenStr string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		t.Fatalf("token tidak bisa diparse: %v", err)
	}
	return claims
}

func TestGenerateWebToken(t *testing.T) {
	configs.JWTSecret = "test-secret"

	tokenStr, err := GenerateWebToken(7, "ustadz", 3)
	if err != nil {
		t.Fatalf("GenerateWebToken error: %v", err)
	}

	claims := parseClaims(t, tokenStr)
	if claims["role"] != "ustadz" {
		t.Errorf("role = %v, want ustadz", claims["role"])
	}
	if claims["id"].(float64) != 7 || claims["role_id"].(float64) != 3 {
		t.Errorf("id/role_id salah: %v / %v", claims["id"], claims["role_id"])
	}
	if _, ok := claims["is_mobile"]; ok {
		t.Error("token web tidak boleh membawa claim is_mobile")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("token web wajib punya exp")
	}
	sisa := time.Until(time.Unix(int64(exp), 0))
	if sisa < 11*time.Hour || sisa > 13*time.Hour {
		t.Errorf("umur token = %v, want sekitar 12 jam", sisa)
	}
}

func TestGenerateMobileToken(t *testing.T) {
	configs.JWTSecret = "test-secret"

	tokenStr, err := GenerateMobileToken(7, "santri", 12)
	if err != nil {
		t.Fatalf("GenerateMobileToken error: %v", err)
	}

	claims := parseClaims(t, tokenStr)
	if claims["is_mobile"] != true {
		t.Error("token mobile wajib membawa is_mobile=true")
	}
	if _, ok := claims["exp"]; ok {
		t.Error("token mobile tidak boleh punya exp, revokasi lewat token_stores")
	}
}

func TestSignTokenTanpaSecret(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = ""
	defer func() { configs.JWTSecret = old }()

	if _, err := GenerateWebToken(1, "admin", 0); err == nil {
		t.Error("tanpa JWT_SECRET harus error")
	}
}
