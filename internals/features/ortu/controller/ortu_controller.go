package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hafalanku_backend/internals/features/ortu/dto"
	ortuService "hafalanku_backend/internals/features/ortu/service"
	helper "hafalanku_backend/internals/helpers"
	"hafalanku_backend/internals/mailer"
)

type OrtuController struct {
	DB       *gorm.DB
	Mailer   mailer.Mailer
	Validate *validator.Validate
}

func NewOrtuController(db *gorm.DB, m mailer.Mailer) *OrtuController {
	return &OrtuController{DB: db, Mailer: m, Validate: validator.New()}
}

func paramUint(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || v == 0 {
		return 0, errors.New("parameter tidak valid: " + name)
	}
	return uint(v), nil
}

// POST /api/ortu
func (ctrl *OrtuController) Create(c *fiber.Ctx) error {
	var req dto.CreateOrtuRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ortu, err := ortuService.RegisterOrtu(ctrl.DB, ctrl.Mailer, req)
	if err != nil {
		if errors.Is(err, ortuService.ErrEmailTaken) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mendaftarkan orang tua")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Orang tua berhasil didaftarkan", ortu)
}

// GET /api/ortu
func (ctrl *OrtuController) GetAll(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "nama", "asc", helper.DefaultOpts)

	result, err := ortuService.ListOrtu(ctrl.DB, p, c.Query("search"))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar orang tua")
	}
	return helper.Success(c, "Daftar orang tua berhasil diambil", result)
}

// GET /api/ortu/:id
func (ctrl *OrtuController) GetByID(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := ortuService.GetOrtuDetail(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, ortuService.ErrOrtuNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil detail orang tua")
	}
	return helper.Success(c, "Detail orang tua berhasil diambil", result)
}

// PUT /api/ortu/:id
func (ctrl *OrtuController) Update(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateOrtuRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ortu, err := ortuService.UpdateOrtu(ctrl.DB, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ortuService.ErrOrtuNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, ortuService.ErrEmailTaken):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, ortuService.ErrOrtuTanpaAkun):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui orang tua")
	}
	return helper.Success(c, "Orang tua berhasil diperbarui", ortu)
}

// DELETE /api/ortu/:id
func (ctrl *OrtuController) Delete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ortuService.DeleteOrtu(ctrl.DB, id); err != nil {
		if errors.Is(err, ortuService.ErrOrtuNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus orang tua")
	}
	return helper.Success(c, "Orang tua berhasil dihapus", nil)
}
