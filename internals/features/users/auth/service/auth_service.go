package service

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	ortuModel "hafalanku_backend/internals/features/ortu/model"
	santriModel "hafalanku_backend/internals/features/santri/model"
	authModel "hafalanku_backend/internals/features/users/auth/model"
	userModel "hafalanku_backend/internals/features/users/user/model"
	ustadzModel "hafalanku_backend/internals/features/ustadz/model"
)

var (
	ErrInvalidCredentials = errors.New("email atau password salah")
)

type LoginResult struct {
	Token  string               `json:"token"`
	User   *userModel.UserModel `json:"user"`
	RoleID uint                 `json:"role_id"`
}

// Login: verifikasi kredensial lalu terbitkan token sesuai platform.
// Token mobile disimpan di token_stores supaya bisa direvoke.
func Login(db *gorm.DB, email, password, platform string) (*LoginResult, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	roleID, err := resolveRoleID(db, &user)
	if err != nil {
		return nil, err
	}

	var token string
	if platform == "mobile" {
		token, err = GenerateMobileToken(user.ID, user.Role, roleID)
		if err != nil {
			return nil, err
		}
		store := authModel.TokenStoreModel{
			UserID:   user.ID,
			Token:    token,
			Platform: "mobile",
		}
		if err := db.Create(&store).Error; err != nil {
			return nil, err
		}
	} else {
		token, err = GenerateWebToken(user.ID, user.Role, roleID)
		if err != nil {
			return nil, err
		}
	}

	log.Printf("[AUTH] login berhasil user=%d role=%s platform=%s", user.ID, user.Role, platform)
	return &LoginResult{Token: token, User: &user, RoleID: roleID}, nil
}

// Logout: revoke token mobile. Token web cukup dibuang client-side.
func Logout(db *gorm.DB, token string) error {
	result := db.Where("token = ?", token).Delete(&authModel.TokenStoreModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Println("[AUTH] token mobile direvoke")
	}
	return nil
}

// resolveRoleID cari id entitas profil sesuai role. Admin tidak punya profil.
func resolveRoleID(db *gorm.DB, user *userModel.UserModel) (uint, error) {
	switch user.Role {
	case constants.RoleSantri:
		var santri santriModel.SantriModel
		if err := db.Select("id").Where("user_id = ?", user.ID).First(&santri).Error; err != nil {
			return 0, err
		}
		return santri.ID, nil
	case constants.RoleUstadz:
		var ustadz ustadzModel.UstadzModel
		if err := db.Select("id").Where("user_id = ?", user.ID).First(&ustadz).Error; err != nil {
			return 0, err
		}
		return ustadz.ID, nil
	case constants.RoleOrtu:
		var ortu ortuModel.OrangTuaModel
		if err := db.Select("id").Where("user_id = ?", user.ID).First(&ortu).Error; err != nil {
			return 0, err
		}
		return ortu.ID, nil
	default:
		return 0, nil
	}
}
