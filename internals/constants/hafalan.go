package constants

import "time"

// Status riwayat hafalan (closed set, dipakai di kolom status).
const (
	StatusTambahHafalan = "TambahHafalan"
	StatusMurajaah      = "Murajaah"
)

// Tahap hafalan santri (closed set, peringkat dihitung per tahap).
const (
	TahapLevel1 = "Level1"
	TahapLevel2 = "Level2"
	TahapLevel3 = "Level3"
)

var TahapHafalanOrder = []string{TahapLevel1, TahapLevel2, TahapLevel3}

// Tipe orang tua/wali (maksimal satu per tipe untuk tiap santri).
const (
	TipeAyah = "Ayah"
	TipeIbu  = "Ibu"
	TipeWali = "Wali"
)

// Jenis kelamin
const (
	JenisKelaminLakiLaki  = "LakiLaki"
	JenisKelaminPerempuan = "Perempuan"
)

// PoinPerAyat: poin yang didapat untuk tiap ayat baru yang dihafal.
// Murajaah tidak menambah poin.
const PoinPerAyat = 5

func IsValidStatusHafalan(status string) bool {
	return status == StatusTambahHafalan || status == StatusMurajaah
}

func IsValidTahapHafalan(tahap string) bool {
	for _, t := range TahapHafalanOrder {
		if t == tahap {
			return true
		}
	}
	return false
}

func IsValidTipeOrtu(tipe string) bool {
	return tipe == TipeAyah || tipe == TipeIbu || tipe == TipeWali
}

// AppTimezone: batas hari (grouping tanggal) selalu dihitung di zona ini.
var AppTimezone = mustLoadLocation("Asia/Jakarta")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("WIB", 7*3600)
	}
	return loc
}
