package service

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	santriModel "hafalanku_backend/internals/features/santri/model"
)

var (
	ErrSantriNotFound = errors.New("santri tidak ditemukan")
	ErrPoinTidakValid = errors.New("poin yang dikurangi harus angka positif")
)

// UpdatePeringkat: hitung ulang peringkat seluruh santri, dipartisi per tahap
// hafalan. Urutan: total poin turun, lalu poin_updated_at naik (yang lebih
// dulu update menang seri), lalu id naik. Idempotent: tanpa perubahan poin,
// dua kali jalan menghasilkan peringkat yang sama.
func UpdatePeringkat(db *gorm.DB) error {
	err := db.Exec(`
		WITH ranked AS (
			SELECT
				id,
				DENSE_RANK() OVER (
					PARTITION BY tahap_hafalan
					ORDER BY total_poin DESC, poin_updated_at ASC, id ASC
				) AS peringkat
			FROM santris
		)
		UPDATE santris s
		SET peringkat = r.peringkat
		FROM ranked r
		WHERE s.id = r.id
	`).Error
	if err != nil {
		log.Printf("[ERROR] Gagal memperbarui peringkat santri: %v", err)
		return err
	}
	return nil
}

// ResetAllPoints: nolkan poin dan peringkat semua santri.
func ResetAllPoints(db *gorm.DB) (int64, error) {
	result := db.Model(&santriModel.SantriModel{}).
		Where("1 = 1").
		Updates(map[string]interface{}{
			"total_poin":      0,
			"peringkat":       0,
			"poin_updated_at": time.Now(),
		})
	if result.Error != nil {
		log.Printf("[ERROR] Gagal mereset total poin santri: %v", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeductPoints: kurangi poin santri sebesar min(poin, poin sekarang); poin
// tidak pernah negatif.
func DeductPoints(db *gorm.DB, santriID uint, poin int) (*santriModel.SantriModel, error) {
	if poin <= 0 {
		return nil, ErrPoinTidakValid
	}

	var santri santriModel.SantriModel
	if err := db.First(&santri, santriID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSantriNotFound
		}
		return nil, err
	}

	// Clamp di SQL supaya update paralel tidak bisa membawa saldo ke negatif.
	if err := db.Model(&santriModel.SantriModel{}).
		Where("id = ?", santriID).
		Updates(map[string]interface{}{
			"total_poin":      gorm.Expr("GREATEST(total_poin - ?, 0)", poin),
			"poin_updated_at": time.Now(),
		}).Error; err != nil {
		return nil, err
	}

	if err := db.First(&santri, santriID).Error; err != nil {
		return nil, err
	}
	return &santri, nil
}
