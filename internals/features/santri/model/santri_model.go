package model

import (
	"time"

	ortuModel "hafalanku_backend/internals/features/ortu/model"
	userModel "hafalanku_backend/internals/features/users/user/model"
)

// SantriModel: poin hanya dimutasi lewat progress engine (increment/decrement
// dalam transaksi), peringkat hanya ditulis oleh ranking engine.
type SantriModel struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID        uint      `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Nama          string    `gorm:"column:nama;not null;index" json:"nama"`
	NoInduk       string    `gorm:"column:no_induk;uniqueIndex;not null" json:"no_induk"`
	NomorHp       string    `gorm:"column:nomor_hp" json:"nomor_hp"`
	Alamat        string    `gorm:"column:alamat" json:"alamat"`
	JenisKelamin  string    `gorm:"column:jenis_kelamin;not null" json:"jenis_kelamin"` // LakiLaki|Perempuan
	TanggalLahir  time.Time `gorm:"column:tanggal_lahir" json:"tanggal_lahir"`
	TahapHafalan  string    `gorm:"column:tahap_hafalan;not null;index" json:"tahap_hafalan"` // Level1|Level2|Level3
	TotalPoin     int       `gorm:"column:total_poin;not null;default:0" json:"total_poin"`
	Peringkat     int       `gorm:"column:peringkat;not null;default:0" json:"peringkat"`
	PoinUpdatedAt time.Time `gorm:"column:poin_updated_at" json:"poin_updated_at"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	User     *userModel.UserModel       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	OrangTua []ortuModel.OrangTuaModel  `gorm:"many2many:santri_orang_tua;joinForeignKey:SantriID;joinReferences:OrangTuaID" json:"orang_tua,omitempty"`
}

func (SantriModel) TableName() string {
	return "santris"
}
