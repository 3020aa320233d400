package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hafalanku_backend/internals/features/ustadz/dto"
	ustadzService "hafalanku_backend/internals/features/ustadz/service"
	helper "hafalanku_backend/internals/helpers"
	"hafalanku_backend/internals/mailer"
)

type UstadzController struct {
	DB       *gorm.DB
	Mailer   mailer.Mailer
	Validate *validator.Validate
}

func NewUstadzController(db *gorm.DB, m mailer.Mailer) *UstadzController {
	return &UstadzController{DB: db, Mailer: m, Validate: validator.New()}
}

func paramUint(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || v == 0 {
		return 0, errors.New("parameter tidak valid: " + name)
	}
	return uint(v), nil
}

// POST /api/ustadz
func (ctrl *UstadzController) Create(c *fiber.Ctx) error {
	var req dto.CreateUstadzRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ustadz, err := ustadzService.RegisterUstadz(ctrl.DB, ctrl.Mailer, req)
	if err != nil {
		if errors.Is(err, ustadzService.ErrEmailTaken) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mendaftarkan ustadz")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Ustadz berhasil didaftarkan", ustadz)
}

// GET /api/ustadz
func (ctrl *UstadzController) GetAll(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "nama", "asc", helper.DefaultOpts)

	result, err := ustadzService.ListUstadz(ctrl.DB, p, c.Query("search"))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar ustadz")
	}
	return helper.Success(c, "Daftar ustadz berhasil diambil", result)
}

// GET /api/ustadz/:id
func (ctrl *UstadzController) GetByID(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := ustadzService.GetUstadzDetail(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, ustadzService.ErrUstadzNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil detail ustadz")
	}
	return helper.Success(c, "Detail ustadz berhasil diambil", result)
}

// PUT /api/ustadz/:id
func (ctrl *UstadzController) Update(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateUstadzRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ustadz, err := ustadzService.UpdateUstadz(ctrl.DB, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ustadzService.ErrUstadzNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, ustadzService.ErrEmailTaken):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui ustadz")
	}
	return helper.Success(c, "Ustadz berhasil diperbarui", ustadz)
}

// DELETE /api/ustadz/:id
func (ctrl *UstadzController) Delete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ustadzService.DeleteUstadz(ctrl.DB, id); err != nil {
		if errors.Is(err, ustadzService.ErrUstadzNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus ustadz")
	}
	return helper.Success(c, "Ustadz berhasil dihapus", nil)
}
