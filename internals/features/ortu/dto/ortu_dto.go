package dto

import helper "hafalanku_backend/internals/helpers"

// CreateOrtuRequest: akun login opsional. Email dan password harus dikirim
// berpasangan; tanpa keduanya ortu tercatat tapi tidak bisa login (dan tidak
// menerima notifikasi email).
type CreateOrtuRequest struct {
	Email     string `json:"email" validate:"omitempty,email,required_with=Password"`
	Password  string `json:"password" validate:"omitempty,min=6,required_with=Email"`
	Nama      string `json:"nama" validate:"required,max=100"`
	NomorHp   string `json:"nomor_hp" validate:"omitempty,max=20"`
	Alamat    string `json:"alamat" validate:"omitempty,max=255"`
	Tipe      string `json:"tipe" validate:"required,oneof=Ayah Ibu Wali"`
	Pekerjaan string `json:"pekerjaan" validate:"omitempty,max=100"`
}

type UpdateOrtuRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	Nama      *string `json:"nama" validate:"omitempty,max=100"`
	NomorHp   *string `json:"nomor_hp" validate:"omitempty,max=20"`
	Alamat    *string `json:"alamat" validate:"omitempty,max=255"`
	Tipe      *string `json:"tipe" validate:"omitempty,oneof=Ayah Ibu Wali"`
	Pekerjaan *string `json:"pekerjaan" validate:"omitempty,max=100"`
}

type AnakItem struct {
	ID           uint   `json:"id"`
	Nama         string `json:"nama"`
	NoInduk      string `json:"no_induk"`
	TahapHafalan string `json:"tahap_hafalan"`
	TotalPoin    int    `json:"total_poin"`
	Peringkat    int    `json:"peringkat"`
}

type OrtuDetailResponse struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email,omitempty"`
	Nama      string     `json:"nama"`
	NomorHp   string     `json:"nomor_hp,omitempty"`
	Alamat    string     `json:"alamat,omitempty"`
	Tipe      string     `json:"tipe"`
	Pekerjaan string     `json:"pekerjaan,omitempty"`
	Anak      []AnakItem `json:"anak"`
}

type OrtuListItem struct {
	ID      uint   `json:"id"`
	Email   string `json:"email,omitempty"`
	Nama    string `json:"nama"`
	NomorHp string `json:"nomor_hp,omitempty"`
	Tipe    string `json:"tipe"`
}

type OrtuListResponse struct {
	Meta helper.Meta    `json:"meta"`
	Data []OrtuListItem `json:"data"`
}
