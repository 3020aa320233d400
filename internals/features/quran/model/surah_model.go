package model

// SurahModel: katalog 114 surat. Data referensi, di-seed sekali dan tidak
// pernah diubah lewat API.
type SurahModel struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	Nomor       int    `gorm:"column:nomor;uniqueIndex;not null" json:"nomor"`
	Nama        string `gorm:"column:nama;not null" json:"nama"`
	NamaLatin   string `gorm:"column:nama_latin;not null" json:"nama_latin"`
	TotalAyat   int    `gorm:"column:total_ayat;not null" json:"total_ayat"`
	TempatTurun string `gorm:"column:tempat_turun;not null" json:"tempat_turun"` // Makkiyyah|Madaniyyah
	Arti        string `gorm:"column:arti" json:"arti"`
	Deskripsi   string `gorm:"column:deskripsi" json:"deskripsi"`
	Audio       string `gorm:"column:audio" json:"audio"`

	Ayat []AyatModel `gorm:"foreignKey:SurahID" json:"ayat,omitempty"`
}

func (SurahModel) TableName() string {
	return "surahs"
}
