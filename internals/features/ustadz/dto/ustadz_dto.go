package dto

import helper "hafalanku_backend/internals/helpers"

type CreateUstadzRequest struct {
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=6"`
	Nama           string  `json:"nama" validate:"required,max=100"`
	NomorHp        string  `json:"nomor_hp" validate:"omitempty,max=20"`
	Alamat         string  `json:"alamat" validate:"omitempty,max=255"`
	WaliKelasTahap *string `json:"wali_kelas_tahap" validate:"omitempty,oneof=Level1 Level2 Level3"`
}

type UpdateUstadzRequest struct {
	Email          *string `json:"email" validate:"omitempty,email"`
	Nama           *string `json:"nama" validate:"omitempty,max=100"`
	NomorHp        *string `json:"nomor_hp" validate:"omitempty,max=20"`
	Alamat         *string `json:"alamat" validate:"omitempty,max=255"`
	WaliKelasTahap *string `json:"wali_kelas_tahap" validate:"omitempty,oneof=Level1 Level2 Level3"`
	HapusWaliKelas bool    `json:"hapus_wali_kelas"` // true: lepas status wali kelas
}

type UstadzItem struct {
	ID             uint    `json:"id"`
	Email          string  `json:"email,omitempty"`
	Nama           string  `json:"nama"`
	NomorHp        string  `json:"nomor_hp,omitempty"`
	Alamat         string  `json:"alamat,omitempty"`
	WaliKelasTahap *string `json:"wali_kelas_tahap,omitempty"`
}

type UstadzListResponse struct {
	Meta helper.Meta  `json:"meta"`
	Data []UstadzItem `json:"data"`
}
