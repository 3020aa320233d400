package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chartService "hafalanku_backend/internals/features/chart/service"
	helper "hafalanku_backend/internals/helpers"
)

type ChartController struct {
	DB *gorm.DB
}

func NewChartController(db *gorm.DB) *ChartController {
	return &ChartController{DB: db}
}

// GET /api/chart/:santriId?range=1w|1m|3m
func (ctrl *ChartController) GetSetoranChart(c *fiber.Ctx) error {
	santriID, err := strconv.ParseUint(c.Params("santriId"), 10, 64)
	if err != nil || santriID == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "parameter santriId tidak valid")
	}

	rangeCode := c.Query("range", "1w")

	result, err := chartService.GetSetoranChart(ctrl.DB, uint(santriID), rangeCode)
	if err != nil {
		switch {
		case errors.Is(err, chartService.ErrSantriNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, chartService.ErrRangeTidakValid):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data grafik")
	}
	return helper.Success(c, "Data grafik berhasil diambil", result)
}
