package model

type AyatModel struct {
	ID        uint   `gorm:"column:id;primaryKey" json:"id"`
	SurahID   uint   `gorm:"column:surah_id;not null;uniqueIndex:idx_surah_nomor_ayat" json:"surah_id"`
	NomorAyat int    `gorm:"column:nomor_ayat;not null;uniqueIndex:idx_surah_nomor_ayat" json:"nomor_ayat"`
	Arab      string `gorm:"column:arab;not null" json:"arab"`
	Latin     string `gorm:"column:latin" json:"latin"`
	Terjemah  string `gorm:"column:terjemah" json:"terjemah"`
	Juz       int    `gorm:"column:juz;not null" json:"juz"`
}

func (AyatModel) TableName() string {
	return "ayats"
}
