package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hafalanku_backend/internals/features/quran/model"
	helper "hafalanku_backend/internals/helpers"
)

// Katalog Al-Quran read-only: isi tabel hanya diubah oleh seeder.
type AlquranController struct {
	DB *gorm.DB
}

func NewAlquranController(db *gorm.DB) *AlquranController {
	return &AlquranController{DB: db}
}

// GET /api/alquran
func (ctrl *AlquranController) GetAllSurah(c *fiber.Ctx) error {
	var surahs []model.SurahModel
	if err := ctrl.DB.
		Select("id", "nomor", "nama", "nama_latin", "total_ayat", "tempat_turun", "arti", "audio").
		Order("nomor ASC").
		Find(&surahs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar surah")
	}
	return helper.Success(c, "Daftar surah berhasil diambil", surahs)
}

// GET /api/alquran/:nomor
func (ctrl *AlquranController) GetSurahByNomor(c *fiber.Ctx) error {
	nomor, err := strconv.Atoi(c.Params("nomor"))
	if err != nil || nomor < 1 || nomor > 114 {
		return helper.Error(c, fiber.StatusBadRequest, "Nomor surah tidak valid (1-114)")
	}

	var surah model.SurahModel
	err = ctrl.DB.
		Preload("Ayat", func(db *gorm.DB) *gorm.DB {
			return db.Order("nomor_ayat ASC")
		}).
		Where("nomor = ?", nomor).
		First(&surah).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Surah tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil detail surah")
	}
	return helper.Success(c, "Detail surah berhasil diambil", surah)
}
