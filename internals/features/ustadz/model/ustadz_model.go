package model

import (
	"time"

	userModel "hafalanku_backend/internals/features/users/user/model"
)

type UstadzModel struct {
	ID             uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID         uint      `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Nama           string    `gorm:"column:nama;not null;index" json:"nama"`
	NomorHp        string    `gorm:"column:nomor_hp" json:"nomor_hp"`
	Alamat         string    `gorm:"column:alamat" json:"alamat"`
	WaliKelasTahap *string   `gorm:"column:wali_kelas_tahap" json:"wali_kelas_tahap,omitempty"` // Level1|Level2|Level3, null jika bukan wali kelas
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	User *userModel.UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (UstadzModel) TableName() string {
	return "ustadzs"
}
