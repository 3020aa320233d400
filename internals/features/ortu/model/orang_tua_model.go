package model

import (
	"time"

	userModel "hafalanku_backend/internals/features/users/user/model"
)

// OrangTuaModel: wali santri. UserID nullable, tidak semua orang tua punya
// akun login (notifikasi email hanya untuk yang punya).
type OrangTuaModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID    *uint     `gorm:"column:user_id;uniqueIndex" json:"user_id,omitempty"`
	Nama      string    `gorm:"column:nama;not null;index" json:"nama"`
	NomorHp   string    `gorm:"column:nomor_hp" json:"nomor_hp"`
	Alamat    string    `gorm:"column:alamat" json:"alamat"`
	Tipe      string    `gorm:"column:tipe;not null" json:"tipe"` // Ayah|Ibu|Wali
	Pekerjaan string    `gorm:"column:pekerjaan" json:"pekerjaan"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	User *userModel.UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (OrangTuaModel) TableName() string {
	return "orang_tuas"
}
