package service

import (
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hafalanku_backend/internals/constants"
	santriModel "hafalanku_backend/internals/features/santri/model"
	userModel "hafalanku_backend/internals/features/users/user/model"
)

// openTestDB: tes di file ini butuh Postgres sungguhan karena ranking engine
// pakai DENSE_RANK dan clamp poin dieksekusi di SQL. Di-skip kalau
// TEST_DATABASE_URL tidak di-set.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL tidak di-set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("database tidak bisa diakses: %v", err)
	}
	if err := db.AutoMigrate(&userModel.UserModel{}, &santriModel.SantriModel{}); err != nil {
		t.Fatalf("migrate gagal: %v", err)
	}
	return db
}

func seedSantri(t *testing.T, db *gorm.DB, nama, tahap string, poin int, poinAt time.Time) *santriModel.SantriModel {
	t.Helper()
	user := userModel.UserModel{
		Email:    fmt.Sprintf("%s-%d@tes.local", nama, time.Now().UnixNano()),
		Password: "x",
		Role:     constants.RoleSantri,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user gagal: %v", err)
	}
	s := santriModel.SantriModel{
		UserID:        user.ID,
		Nama:          nama,
		NoInduk:       fmt.Sprintf("TES-%d", user.ID),
		JenisKelamin:  "LakiLaki",
		TahapHafalan:  tahap,
		TotalPoin:     poin,
		PoinUpdatedAt: poinAt,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed santri gagal: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM santris WHERE id = ?", s.ID)
		db.Exec("DELETE FROM users WHERE id = ?", user.ID)
	})
	return &s
}

func peringkatOf(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var s santriModel.SantriModel
	if err := db.First(&s, id).Error; err != nil {
		t.Fatalf("baca santri %d gagal: %v", id, err)
	}
	return s.Peringkat
}

func TestUpdatePeringkatUrutanDanSeri(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, constants.AppTimezone)
	// Dua santri seri 80 poin: yang poin-nya lebih dulu update menang.
	juara := seedSantri(t, db, "tes-juara", constants.TahapLevel1, 100, base)
	seriAwal := seedSantri(t, db, "tes-seri-awal", constants.TahapLevel1, 80, base.Add(1*time.Hour))
	seriAkhir := seedSantri(t, db, "tes-seri-akhir", constants.TahapLevel1, 80, base.Add(2*time.Hour))
	buncit := seedSantri(t, db, "tes-buncit", constants.TahapLevel1, 10, base)
	// Tahap lain dipartisi sendiri: poin kecil pun bisa peringkat 1.
	tahapLain := seedSantri(t, db, "tes-tahap-lain", constants.TahapLevel2, 5, base)

	if err := UpdatePeringkat(db); err != nil {
		t.Fatalf("UpdatePeringkat gagal: %v", err)
	}

	if got := peringkatOf(t, db, juara.ID); got != 1 {
		t.Errorf("juara peringkat = %d, want 1", got)
	}
	if got := peringkatOf(t, db, seriAwal.ID); got != 2 {
		t.Errorf("seri dengan update lebih awal peringkat = %d, want 2", got)
	}
	if got := peringkatOf(t, db, seriAkhir.ID); got != 3 {
		t.Errorf("seri dengan update lebih akhir peringkat = %d, want 3", got)
	}
	if got := peringkatOf(t, db, buncit.ID); got != 4 {
		t.Errorf("poin terkecil peringkat = %d, want 4", got)
	}
	if got := peringkatOf(t, db, tahapLain.ID); got != 1 {
		t.Errorf("tahap lain harus punya partisi sendiri, peringkat = %d, want 1", got)
	}

	// Idempotent: tanpa perubahan poin, jalan kedua tidak menggeser apa pun.
	if err := UpdatePeringkat(db); err != nil {
		t.Fatalf("UpdatePeringkat kedua gagal: %v", err)
	}
	if got := peringkatOf(t, db, seriAwal.ID); got != 2 {
		t.Errorf("setelah jalan kedua peringkat berubah jadi %d, want tetap 2", got)
	}
}

func TestDeductPointsTidakPernahNegatif(t *testing.T) {
	db := openTestDB(t)

	s := seedSantri(t, db, "tes-kurangi", constants.TahapLevel1, 20, time.Now())

	got, err := DeductPoints(db, s.ID, 50)
	if err != nil {
		t.Fatalf("DeductPoints gagal: %v", err)
	}
	if got.TotalPoin != 0 {
		t.Errorf("saldo harus mentok di nol, dapat %d", got.TotalPoin)
	}

	// Kurangi lagi saat saldo sudah nol: tetap nol.
	got, err = DeductPoints(db, s.ID, 5)
	if err != nil {
		t.Fatalf("DeductPoints kedua gagal: %v", err)
	}
	if got.TotalPoin != 0 {
		t.Errorf("saldo nol dikurangi lagi jadi %d, want 0", got.TotalPoin)
	}
}
