package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "hafalanku_backend/internals/features/users/auth/model"
	userModel "hafalanku_backend/internals/features/users/user/model"
	"hafalanku_backend/internals/mailer"
)

const resetTokenLifetime = 5 * time.Minute

var (
	ErrEmailNotFound     = errors.New("user dengan email tersebut tidak ditemukan")
	ErrResetTokenInvalid = errors.New("token tidak valid atau sudah kadaluarsa")
)

// ForgotPassword: buat token 6 digit (umur 5 menit), token lama milik user
// dihapus dulu, lalu kirim email.
func ForgotPassword(db *gorm.DB, m mailer.Mailer, email string) error {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmailNotFound
		}
		return err
	}

	if err := db.Where("user_id = ?", user.ID).Delete(&authModel.ResetTokenModel{}).Error; err != nil {
		log.Printf("[RESET] gagal hapus token lama user=%d: %v", user.ID, err)
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}

	record := authModel.ResetTokenModel{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenLifetime),
	}
	if err := db.Create(&record).Error; err != nil {
		return err
	}

	m.Send(mailer.NewResetPasswordMessage(user.Email, token))
	return nil
}

// VerifyResetToken: true jika token ada dan belum kadaluarsa. Token yang
// sudah lewat umurnya sekalian dihapus.
func VerifyResetToken(db *gorm.DB, token string) (bool, error) {
	var record authModel.ResetTokenModel
	if err := db.Where("token = ?", token).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if time.Now().After(record.ExpiresAt) {
		_ = db.Delete(&record).Error
		return false, nil
	}
	return true, nil
}

// ResetPasswordWithToken: ganti password user pemilik token, token langsung
// dikonsumsi.
func ResetPasswordWithToken(db *gorm.DB, token, newPassword string) error {
	var record authModel.ResetTokenModel
	if err := db.Where("token = ?", token).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}

	if time.Now().After(record.ExpiresAt) {
		_ = db.Delete(&record).Error
		return ErrResetTokenInvalid
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := db.Model(&userModel.UserModel{}).
		Where("id = ?", record.UserID).
		Update("password", string(hashed)).Error; err != nil {
		return err
	}

	return db.Delete(&record).Error
}

// PurgeExpiredResetTokens: dipanggil scheduler. Return jumlah token terhapus.
func PurgeExpiredResetTokens(db *gorm.DB) (int64, error) {
	result := db.Where("expires_at < ?", time.Now()).Delete(&authModel.ResetTokenModel{})
	return result.RowsAffected, result.Error
}

func generateResetToken() (string, error) {
	// 6 digit, 100000-999999
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
