package dto

import (
	"time"

	helper "hafalanku_backend/internals/helpers"
)

type CreateSantriRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Nama         string `json:"nama" validate:"required,max=100"`
	NoInduk      string `json:"no_induk" validate:"required,max=30"`
	NomorHp      string `json:"nomor_hp" validate:"omitempty,max=20"`
	Alamat       string `json:"alamat" validate:"omitempty,max=255"`
	JenisKelamin string `json:"jenis_kelamin" validate:"required,oneof=LakiLaki Perempuan"`
	TanggalLahir string `json:"tanggal_lahir" validate:"omitempty,datetime=2006-01-02"`
	TahapHafalan string `json:"tahap_hafalan" validate:"required,oneof=Level1 Level2 Level3"`
	OrangTuaIDs  []uint `json:"orang_tua_ids" validate:"required,min=1,max=3,dive,gt=0"`
}

// UpdateSantriRequest: semua field opsional, hanya yang dikirim yang diubah.
type UpdateSantriRequest struct {
	Email        *string `json:"email" validate:"omitempty,email"`
	Nama         *string `json:"nama" validate:"omitempty,max=100"`
	NoInduk      *string `json:"no_induk" validate:"omitempty,max=30"`
	NomorHp      *string `json:"nomor_hp" validate:"omitempty,max=20"`
	Alamat       *string `json:"alamat" validate:"omitempty,max=255"`
	JenisKelamin *string `json:"jenis_kelamin" validate:"omitempty,oneof=LakiLaki Perempuan"`
	TanggalLahir *string `json:"tanggal_lahir" validate:"omitempty,datetime=2006-01-02"`
	TahapHafalan *string `json:"tahap_hafalan" validate:"omitempty,oneof=Level1 Level2 Level3"`
	OrangTuaIDs  []uint  `json:"orang_tua_ids" validate:"omitempty,min=1,max=3,dive,gt=0"`
}

type DeductPoinRequest struct {
	Poin int `json:"poin" validate:"required,gt=0"`
}

type OrangTuaItem struct {
	ID      uint   `json:"id"`
	Nama    string `json:"nama"`
	Tipe    string `json:"tipe"`
	NomorHp string `json:"nomor_hp,omitempty"`
	Email   string `json:"email,omitempty"`
}

type WaliKelasItem struct {
	ID   uint   `json:"id"`
	Nama string `json:"nama"`
}

type SantriDetailResponse struct {
	ID            uint           `json:"id"`
	Email         string         `json:"email"`
	Nama          string         `json:"nama"`
	NoInduk       string         `json:"no_induk"`
	NomorHp       string         `json:"nomor_hp,omitempty"`
	Alamat        string         `json:"alamat,omitempty"`
	JenisKelamin  string         `json:"jenis_kelamin"`
	TanggalLahir  *time.Time     `json:"tanggal_lahir,omitempty"`
	TahapHafalan  string         `json:"tahap_hafalan"`
	TotalPoin     int            `json:"total_poin"`
	Peringkat     int            `json:"peringkat"`
	OrangTua      []OrangTuaItem `json:"orang_tua"`
	WaliKelas     *WaliKelasItem `json:"wali_kelas,omitempty"`
}

type SantriListItem struct {
	ID           uint   `json:"id"`
	Nama         string `json:"nama"`
	NoInduk      string `json:"no_induk"`
	JenisKelamin string `json:"jenis_kelamin"`
	TahapHafalan string `json:"tahap_hafalan"`
	TotalPoin    int    `json:"total_poin"`
	Peringkat    int    `json:"peringkat"`
}

type SantriListResponse struct {
	Meta helper.Meta      `json:"meta"`
	Data []SantriListItem `json:"data"`
}

type PeringkatItem struct {
	Peringkat    int    `json:"peringkat"`
	ID           uint   `json:"id"`
	Nama         string `json:"nama"`
	NoInduk      string `json:"no_induk"`
	TahapHafalan string `json:"tahap_hafalan"`
	TotalPoin    int    `json:"total_poin"`
}
