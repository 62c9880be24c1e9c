package handler

import (
	"cafe_manager/constants"
	"cafe_manager/database"
	"cafe_manager/helper"
	"cafe_manager/model"
	"cafe_manager/utils"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// cafeForOwner loads the cafe and checks the acting member may read its
// reports (owner or admin).
func cafeForOwner(c *fiber.Ctx, cafeNo uint) (*model.Cafe, error) {
	claim, member := helper.GetInfoMemberFromToken(c)
	if member == nil {
		return nil, utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MEMBER_NOT_FOUND, errors.New("member not found"))
	}

	var cafe model.Cafe
	if err := database.DB.First(&cafe, "cafe_no = ?", cafeNo).Error; err != nil {
		return nil, utils.ErrorResponse(c, fiber.StatusNotFound, constants.CAFE_NOT_FOUND, err)
	}

	if claim.Role != constants.ROLE_ADMIN && cafe.MemNo != claim.MemNo {
		return nil, utils.ErrorResponse(c, fiber.StatusForbidden, "No permission for this cafe", nil)
	}
	return &cafe, nil
}

func GetDailySales(c *fiber.Ctx) error {
	cafeNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}
	if _, err := cafeForOwner(c, uint(cafeNo)); err != nil {
		return err
	}

	report, err := utils.GetDailySalesReport(database.DB, uint(cafeNo))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, report)
}

func GetDailySalesDetail(c *fiber.Ctx) error {
	cafeNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}
	if _, err := cafeForOwner(c, uint(cafeNo)); err != nil {
		return err
	}

	date := c.Query("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Date must be formatted as 2006-01-02", err)
	}

	report, err := utils.GetDailySalesDetailReport(database.DB, uint(cafeNo), date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, report)
}

func GetMenuSales(c *fiber.Ctx) error {
	cafeNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}
	if _, err := cafeForOwner(c, uint(cafeNo)); err != nil {
		return err
	}

	report, err := utils.GetMenuSalesReport(database.DB, uint(cafeNo))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, report)
}

func ExportDailySales(c *fiber.Ctx) error {
	cafeNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}
	cafe, err := cafeForOwner(c, uint(cafeNo))
	if err != nil {
		return err
	}

	report, err := utils.GetDailySalesReport(database.DB, uint(cafeNo))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	f, err := utils.BuildDailySalesXlsx(cafe.CafeName, report)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	fileName := fmt.Sprintf("sales_%s_%s.xlsx", cafe.Slug, time.Now().Format("20060102"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))

	if err := f.Write(c.Response().BodyWriter()); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate excel", err)
	}
	return nil
}
