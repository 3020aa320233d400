package dto

import (
	quranModel "hafalanku_backend/internals/features/quran/model"
)

/* ===================== REQUESTS ===================== */

type SimpanHafalanRequest struct {
	UstadzID uint   `json:"ustadz_id" validate:"omitempty,gt=0"` // wajib kalau pemanggil admin
	AyatIDs  []uint `json:"ayat_ids" validate:"required,min=1,dive,gt=0"`
	Status   string `json:"status" validate:"required,oneof=TambahHafalan Murajaah"`
	Catatan  string `json:"catatan" validate:"omitempty,max=500"`
}

type DeleteRiwayatRequest struct {
	SurahID uint   `json:"surah_id" validate:"required,gt=0"`
	Tanggal string `json:"tanggal" validate:"required,datetime=2006-01-02"`
	Status  string `json:"status" validate:"required,oneof=TambahHafalan Murajaah"`
}

/* ===================== RESPONSES ===================== */

type SurahProgressItem struct {
	ID        uint   `json:"id"`
	Nomor     int    `json:"nomor"`
	Nama      string `json:"nama"`
	NamaLatin string `json:"nama_latin"`
	TotalAyat int    `json:"total_ayat"`
	Progress  string `json:"progress"` // "sudah/total"
}

type SurahProgressResponse struct {
	Santri SantriRingkas       `json:"santri"`
	Data   []SurahProgressItem `json:"data"`
}

type SantriRingkas struct {
	ID           uint   `json:"id"`
	Nama         string `json:"nama"`
	NoInduk      string `json:"no_induk"`
	TahapHafalan string `json:"tahap_hafalan"`
	TotalPoin    int    `json:"total_poin"`
}

type AyatChecked struct {
	ID        uint   `json:"id"`
	NomorAyat int    `json:"nomor_ayat"`
	Arab      string `json:"arab"`
	Latin     string `json:"latin"`
	Terjemah  string `json:"terjemah"`
	Juz       int    `json:"juz"`
	Checked   bool   `json:"checked"`
}

type DetailSurahResponse struct {
	Surah    *quranModel.SurahModel `json:"surah"`
	SantriID uint                   `json:"santri_id"`
	Mode     string                 `json:"mode"`
	Ayat     []AyatChecked          `json:"ayat"`
}

type SimpanHafalanResult struct {
	Message          string `json:"message"`
	Count            int    `json:"count"`
	Dilewati         int    `json:"dilewati,omitempty"`
	TotalPoinDidapat int    `json:"total_poin_didapat,omitempty"`
}

// RiwayatGroup: satu baris ringkasan riwayat per (tanggal, status, surah).
type RiwayatGroup struct {
	Tanggal        string `json:"tanggal"` // YYYY-MM-DD
	Status         string `json:"status"`
	SurahID        uint   `json:"surah_id"`
	NamaSurah      string `json:"nama_surah"`
	NamaSurahLatin string `json:"nama_surah_latin"`
	JumlahAyat     int    `json:"jumlah_ayat"`
	TotalPoin      int    `json:"total_poin"`
}

type RiwayatPagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalData  int `json:"total_data"`
	TotalPages int `json:"total_pages"`
}

type RiwayatResponse struct {
	Santri     SantriRingkas     `json:"santri"`
	Pagination RiwayatPagination `json:"pagination"`
	Data       []RiwayatGroup    `json:"data"`
}

type AyatDenganPoin struct {
	ID          uint   `json:"id"`
	NomorAyat   int    `json:"nomor_ayat"`
	Arab        string `json:"arab"`
	Latin       string `json:"latin"`
	Terjemah    string `json:"terjemah"`
	Juz         int    `json:"juz"`
	PoinDidapat int    `json:"poin_didapat"`
}

type UstadzRingkas struct {
	ID   uint   `json:"id"`
	Nama string `json:"nama"`
}

type SurahRingkas struct {
	ID        uint   `json:"id"`
	Nama      string `json:"nama"`
	NamaLatin string `json:"nama_latin"`
}

type RiwayatDetailResponse struct {
	Tanggal    string           `json:"tanggal"`
	Status     string           `json:"status"`
	Ustadz     UstadzRingkas    `json:"ustadz"`
	Catatan    string           `json:"catatan"`
	TotalPoin  int              `json:"total_poin"`
	Surah      SurahRingkas     `json:"surah"`
	DaftarAyat []AyatDenganPoin `json:"daftar_ayat"`
}

// LatestHafalanInfo: ringkasan setoran terakhir satu santri.
type LatestHafalanInfo struct {
	Tanggal    string `json:"tanggal"`
	Status     string `json:"status"`
	Surah      string `json:"surah"`
	SurahID    uint   `json:"surah_id"`
	AyatDetail string `json:"ayat_detail"` // "12" untuk TambahHafalan, "3 - 7" untuk Murajaah
}

type LatestSantriItem struct {
	ID                uint               `json:"id"`
	Nama              string             `json:"nama"`
	NoInduk           string             `json:"no_induk"`
	TahapHafalan      string             `json:"tahap_hafalan"`
	TerakhirHafalan   *LatestHafalanInfo `json:"terakhir_hafalan"`
	AyatTerakhirNomor int                `json:"-"` // kunci sort, tidak diserialisasi
}

type LatestFilter struct {
	TahapHafalan string `json:"tahap_hafalan,omitempty"`
	Status       string `json:"status"`
	Name         string `json:"name,omitempty"`
}

type LatestPagination struct {
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalData  int64        `json:"total_data"`
	TotalPages int          `json:"total_pages"`
	Filter     LatestFilter `json:"filter"`
}

type LatestResponse struct {
	Message    string             `json:"message"`
	Pagination LatestPagination   `json:"pagination"`
	Data       []LatestSantriItem `json:"data"`
}
