package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	"hafalanku_backend/internals/features/santri/dto"
	santriService "hafalanku_backend/internals/features/santri/service"
	helper "hafalanku_backend/internals/helpers"
	"hafalanku_backend/internals/mailer"
)

type SantriController struct {
	DB       *gorm.DB
	Mailer   mailer.Mailer
	Validate *validator.Validate
}

func NewSantriController(db *gorm.DB, m mailer.Mailer) *SantriController {
	return &SantriController{DB: db, Mailer: m, Validate: validator.New()}
}

func paramUint(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || v == 0 {
		return 0, errors.New("parameter tidak valid: " + name)
	}
	return uint(v), nil
}

// POST /api/santri
func (ctrl *SantriController) Create(c *fiber.Ctx) error {
	var req dto.CreateSantriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	santri, err := santriService.RegisterSantri(ctrl.DB, ctrl.Mailer, req)
	if err != nil {
		switch {
		case errors.Is(err, santriService.ErrEmailTaken),
			errors.Is(err, santriService.ErrNoIndukTaken):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, santriService.ErrOrtuNotFound),
			errors.Is(err, santriService.ErrJumlahOrtuTidakValid),
			errors.Is(err, santriService.ErrTipeOrtuGanda):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mendaftarkan santri")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Santri berhasil didaftarkan", santri)
}

// GET /api/santri
func (ctrl *SantriController) GetAll(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "nama", "asc", helper.DefaultOpts)
	tahap := c.Query("tahap_hafalan")
	if tahap != "" && !constants.IsValidTahapHafalan(tahap) {
		return helper.Error(c, fiber.StatusBadRequest, "tahap hafalan tidak valid")
	}

	ortuID := uint(c.QueryInt("orang_tua_id", 0))

	result, err := santriService.ListSantri(ctrl.DB, p, tahap, c.Query("search"), ortuID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar santri")
	}
	return helper.Success(c, "Daftar santri berhasil diambil", result)
}

// GET /api/santri/peringkat
func (ctrl *SantriController) GetPeringkat(c *fiber.Ctx) error {
	tahap := c.Query("tahap_hafalan")
	if tahap != "" && !constants.IsValidTahapHafalan(tahap) {
		return helper.Error(c, fiber.StatusBadRequest, "tahap hafalan tidak valid")
	}

	items, err := santriService.GetPeringkat(ctrl.DB, tahap)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil peringkat")
	}
	return helper.Success(c, "Peringkat santri berhasil diambil", items)
}

// GET /api/santri/:id
func (ctrl *SantriController) GetByID(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := santriService.GetSantriDetail(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, santriService.ErrSantriNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil detail santri")
	}
	return helper.Success(c, "Detail santri berhasil diambil", result)
}

// PUT /api/santri/:id
func (ctrl *SantriController) Update(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateSantriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	santri, err := santriService.UpdateSantri(ctrl.DB, id, req)
	if err != nil {
		switch {
		case errors.Is(err, santriService.ErrSantriNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, santriService.ErrEmailTaken),
			errors.Is(err, santriService.ErrNoIndukTaken):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, santriService.ErrOrtuNotFound),
			errors.Is(err, santriService.ErrJumlahOrtuTidakValid),
			errors.Is(err, santriService.ErrTipeOrtuGanda):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui santri")
	}
	return helper.Success(c, "Santri berhasil diperbarui", santri)
}

// DELETE /api/santri/:id
func (ctrl *SantriController) Delete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := santriService.DeleteSantri(ctrl.DB, id); err != nil {
		if errors.Is(err, santriService.ErrSantriNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus santri")
	}
	return helper.Success(c, "Santri berhasil dihapus", nil)
}

// POST /api/santri/:id/kurangi-poin
func (ctrl *SantriController) DeductPoin(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.DeductPoinRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	santri, err := santriService.DeductPoints(ctrl.DB, id, req.Poin)
	if err != nil {
		switch {
		case errors.Is(err, santriService.ErrSantriNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, santriService.ErrPoinTidakValid):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengurangi poin")
	}
	return helper.Success(c, "Poin santri berhasil dikurangi", santri)
}

// POST /api/santri/reset-poin
func (ctrl *SantriController) ResetAllPoin(c *fiber.Ctx) error {
	affected, err := santriService.ResetAllPoints(ctrl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mereset poin santri")
	}
	return helper.Success(c, "Poin semua santri berhasil direset", fiber.Map{
		"affected": affected,
	})
}
