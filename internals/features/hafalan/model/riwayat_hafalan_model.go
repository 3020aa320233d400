package model

import (
	"time"

	quranModel "hafalanku_backend/internals/features/quran/model"
	santriModel "hafalanku_backend/internals/features/santri/model"
	ustadzModel "hafalanku_backend/internals/features/ustadz/model"
)

// RiwayatHafalanModel: satu baris per ayat per sesi setoran. Append-mostly;
// dihapus hanya per grup (santri, surah, hari kalender, status).
// Dedup TambahHafalan per (santri, ayat) ditegakkan di service, bukan lewat
// constraint, karena Murajaah boleh berulang untuk ayat yang sama.
type RiwayatHafalanModel struct {
	ID             uint      `gorm:"column:id;primaryKey" json:"id"`
	SantriID       uint      `gorm:"column:santri_id;not null;index:idx_riwayat_santri_status" json:"santri_id"`
	UstadzID       uint      `gorm:"column:ustadz_id;not null" json:"ustadz_id"`
	AyatID         uint      `gorm:"column:ayat_id;not null;index" json:"ayat_id"`
	TanggalHafalan time.Time `gorm:"column:tanggal_hafalan;not null;index" json:"tanggal_hafalan"`
	Status         string    `gorm:"column:status;not null;index:idx_riwayat_santri_status" json:"status"` // TambahHafalan|Murajaah
	Catatan        string    `gorm:"column:catatan" json:"catatan"`
	PoinDidapat    int       `gorm:"column:poin_didapat;not null;default:0" json:"poin_didapat"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Santri *santriModel.SantriModel `gorm:"foreignKey:SantriID" json:"santri,omitempty"`
	Ustadz *ustadzModel.UstadzModel `gorm:"foreignKey:UstadzID" json:"ustadz,omitempty"`
	Ayat   *quranModel.AyatModel    `gorm:"foreignKey:AyatID" json:"ayat,omitempty"`
}

func (RiwayatHafalanModel) TableName() string {
	return "riwayat_hafalans"
}
