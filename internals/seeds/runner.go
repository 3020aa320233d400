package seeds

import (
	"gorm.io/gorm"

	quranSeed "hafalanku_backend/internals/seeds/quran"
)

// RunAllSeeds: seeder data referensi, dipanggil saat startup setelah migrasi.
func RunAllSeeds(db *gorm.DB) {
	quranSeed.SeedQuranFromJSON(db, "internals/seeds/quran/alquran.json")
}
