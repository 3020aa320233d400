package quran

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"hafalanku_backend/internals/configs"
	"hafalanku_backend/internals/features/quran/model"
)

// Format file data: array surah, tiap surah membawa daftar ayatnya.
type AyatSeed struct {
	NomorAyat int    `json:"nomor_ayat"`
	Arab      string `json:"arab"`
	Latin     string `json:"latin"`
	Terjemah  string `json:"terjemah"`
	Juz       int    `json:"juz"`
}

type SurahSeed struct {
	Nomor       int        `json:"nomor"`
	Nama        string     `json:"nama"`
	NamaLatin   string     `json:"nama_latin"`
	TotalAyat   int        `json:"jumlah_ayat"`
	TempatTurun string     `json:"tempat_turun"`
	Arti        string     `json:"arti"`
	Deskripsi   string     `json:"deskripsi"`
	Ayat        []AyatSeed `json:"ayat"`
}

// SeedQuranFromJSON: isi katalog surah + ayat dari file JSON. Idempoten:
// surah yang sudah ada dilewati, jadi aman dipanggil di tiap startup.
func SeedQuranFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file data Al-Quran:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []SurahSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	inserted := 0
	for _, data := range inputs {
		var existing model.SurahModel
		if err := db.Where("nomor = ?", data.Nomor).First(&existing).Error; err == nil {
			continue
		}

		surah := model.SurahModel{
			Nomor:       data.Nomor,
			Nama:        data.Nama,
			NamaLatin:   data.NamaLatin,
			TotalAyat:   data.TotalAyat,
			TempatTurun: data.TempatTurun,
			Arti:        data.Arti,
			Deskripsi:   data.Deskripsi,
			Audio:       AudioURL(data.Nomor),
		}

		// Surah dan ayatnya satu transaksi, jangan sampai ada surah
		// setengah terisi kalau insert ayat gagal di tengah.
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&surah).Error; err != nil {
				return err
			}
			ayat := make([]model.AyatModel, 0, len(data.Ayat))
			for _, a := range data.Ayat {
				ayat = append(ayat, model.AyatModel{
					SurahID:   surah.ID,
					NomorAyat: a.NomorAyat,
					Arab:      a.Arab,
					Latin:     a.Latin,
					Terjemah:  a.Terjemah,
					Juz:       a.Juz,
				})
			}
			if len(ayat) == 0 {
				return nil
			}
			return tx.CreateInBatches(&ayat, 200).Error
		})
		if err != nil {
			log.Printf("❌ Gagal insert surah '%s': %v", data.NamaLatin, err)
			continue
		}
		inserted++
	}

	if inserted > 0 {
		log.Printf("✅ Seeder Al-Quran selesai: %d surah baru", inserted)
	} else {
		log.Println("ℹ️ Katalog Al-Quran sudah lengkap, tidak ada yang di-seed")
	}
}

// AudioURL: URL audio murottal per surah, nomor dipad 3 digit.
func AudioURL(nomor int) string {
	base := strings.TrimRight(configs.PublicBaseURL, "/")
	return fmt.Sprintf("%s/audio/%03d.mp3", base, nomor)
}
