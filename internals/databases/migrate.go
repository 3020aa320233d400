package database

import (
	"log"

	hafalanModel "hafalanku_backend/internals/features/hafalan/model"
	ortuModel "hafalanku_backend/internals/features/ortu/model"
	quranModel "hafalanku_backend/internals/features/quran/model"
	santriModel "hafalanku_backend/internals/features/santri/model"
	ustadzModel "hafalanku_backend/internals/features/ustadz/model"
	authModel "hafalanku_backend/internals/features/users/auth/model"
	userModel "hafalanku_backend/internals/features/users/user/model"
)

// Migrate: auto-migrate seluruh skema. Urutan penting: tabel yang direferensi
// FK harus dibuat lebih dulu.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenStoreModel{},
		&authModel.ResetTokenModel{},
		&quranModel.SurahModel{},
		&quranModel.AyatModel{},
		&ortuModel.OrangTuaModel{},
		&santriModel.SantriModel{},
		&ustadzModel.UstadzModel{},
		&hafalanModel.RiwayatHafalanModel{},
	)
	if err != nil {
		log.Fatalf("❌ Gagal migrasi skema: %v", err)
	}
	log.Println("✅ Migrasi skema selesai.")
}
