package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	"hafalanku_backend/internals/features/hafalan/dto"
	hafalanService "hafalanku_backend/internals/features/hafalan/service"
	helper "hafalanku_backend/internals/helpers"
	"hafalanku_backend/internals/mailer"
)

type HafalanController struct {
	DB       *gorm.DB
	Mailer   mailer.Mailer
	Validate *validator.Validate
}

func NewHafalanController(db *gorm.DB, m mailer.Mailer) *HafalanController {
	return &HafalanController{DB: db, Mailer: m, Validate: validator.New()}
}

func paramUint(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.New("parameter tidak valid: " + name)
	}
	return uint(v), nil
}

// GET /api/hafalan/:santriId/progress
func (ctrl *HafalanController) GetProgress(c *fiber.Ctx) error {
	santriID, err := paramUint(c, "santriId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := hafalanService.GetSurahProgress(ctrl.DB, santriID)
	if err != nil {
		if errors.Is(err, hafalanService.ErrSantriNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil progress hafalan")
	}
	return helper.Success(c, "Progress hafalan berhasil diambil", result)
}

// GET /api/hafalan/:santriId/surah/:surahId?mode=tambah|murajaah
func (ctrl *HafalanController) GetDetailSurah(c *fiber.Ctx) error {
	santriID, err := paramUint(c, "santriId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	surahID, err := paramUint(c, "surahId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := hafalanService.GetDetailSurah(ctrl.DB, santriID, surahID, c.Query("mode"))
	if err != nil {
		switch {
		case errors.Is(err, hafalanService.ErrSurahNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, hafalanService.ErrSantriNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "Detail surah berhasil diambil", result)
}

// POST /api/hafalan/:santriId
// Ustadz menyetor atas namanya sendiri (RoleID dari token); admin wajib
// menyertakan ustadz_id di body.
func (ctrl *HafalanController) SimpanHafalan(c *fiber.Ctx) error {
	santriID, err := paramUint(c, "santriId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := helper.GetAuthUser(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.SimpanHafalanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ustadzID := req.UstadzID
	if user.Role == constants.RoleUstadz {
		ustadzID = user.RoleID
	}
	if ustadzID == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ustadz_id wajib diisi")
	}

	result, err := hafalanService.SimpanHafalan(ctrl.DB, ctrl.Mailer, santriID, ustadzID, req)
	if err != nil {
		switch {
		case errors.Is(err, hafalanService.ErrSantriNotFound),
			errors.Is(err, hafalanService.ErrAyatNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, hafalanService.ErrSemuaAyatSudah),
			errors.Is(err, hafalanService.ErrStatusTidakValid):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan hafalan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, result.Message, result)
}

// GET /api/hafalan/:santriId/riwayat?status=&sort_by=&sort_dir=&page=&limit=
func (ctrl *HafalanController) GetRiwayat(c *fiber.Ctx) error {
	santriID, err := paramUint(c, "santriId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	result, err := hafalanService.GetRiwayat(
		ctrl.DB, santriID,
		c.Query("status"), c.Query("sort_by"), c.Query("sort_dir"),
		page, limit,
	)
	if err != nil {
		switch {
		case errors.Is(err, hafalanService.ErrSantriNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, hafalanService.ErrStatusTidakValid):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat hafalan")
	}
	return helper.Success(c, "Riwayat hafalan berhasil diambil", result)
}

// GET /api/hafalan/:santriId/riwayat/detail?surah_id=&tanggal=&status=
func (ctrl *HafalanController) GetRiwayatDetail(c *fiber.Ctx) error {
	santriID, err := paramUint(c, "santriId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	surahID := c.QueryInt("surah_id", 0)
	tanggal := c.Query("tanggal")
	status := c.Query("status")
	if surahID <= 0 || tanggal == "" || status == "" {
		return helper.Error(c, fiber.StatusBadRequest, "surah_id, tanggal, dan status wajib diisi")
	}

	result, err := hafalanService.GetRiwayatDetail(ctrl.DB, santriID, uint(surahID), tanggal, status)
	if err != nil {
		switch {
		case errors.Is(err, hafalanService.ErrRiwayatNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, hafalanService.ErrStatusTidakValid):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "Detail riwayat hafalan berhasil diambil", result)
}

// DELETE /api/hafalan/:santriId/riwayat
func (ctrl *HafalanController) DeleteRiwayat(c *fiber.Ctx) error {
	santriID, err := paramUint(c, "santriId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.DeleteRiwayatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	deleted, poinDikurangi, err := hafalanService.DeleteRiwayat(ctrl.DB, santriID, req)
	if err != nil {
		if errors.Is(err, hafalanService.ErrSurahNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	// Grup kosong bukan error, cukup kabari tidak ada yang terhapus.
	message := "Riwayat hafalan berhasil dihapus"
	if deleted == 0 {
		message = "Tidak ada riwayat hafalan yang cocok untuk dihapus"
	}
	return helper.Success(c, message, fiber.Map{
		"deleted_count":  deleted,
		"poin_dikurangi": poinDikurangi,
	})
}

// GET /api/hafalan/terbaru?page=&limit=&tahap_hafalan=&status=&sort_by_ayat=&name=
func (ctrl *HafalanController) GetLatestAllSantri(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	result, err := hafalanService.GetLatestAllSantri(
		ctrl.DB, page, limit,
		c.Query("tahap_hafalan"), c.Query("status"), c.Query("sort_by_ayat"), c.Query("name"),
	)
	if err != nil {
		if errors.Is(err, hafalanService.ErrStatusTidakValid) || errors.Is(err, hafalanService.ErrTahapTidakValid) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil setoran terbaru")
	}
	return helper.Success(c, result.Message, result)
}
