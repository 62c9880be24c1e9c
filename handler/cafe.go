package handler

import (
	"cafe_manager/constants"
	"cafe_manager/database"
	"cafe_manager/helper"
	"cafe_manager/model"
	"cafe_manager/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func GetCafes(c *fiber.Ctx) error {
	filterInput := new(model.FilterCafe)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	condition := database.DB.Model(&model.Cafe{})
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(cafe_name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var cafes model.Cafes
	if err := condition.Preload("Menus").Order("cafe_no").Find(&cafes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       cafes,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetCafeByNo(c *fiber.Ctx) error {
	cafeNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	var cafe model.Cafe
	if err := database.DB.Preload("Menus").First(&cafe, "cafe_no = ?", cafeNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CAFE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cafe)
}

// GetMyCafe reads the cafe owned by the acting member.
func GetMyCafe(c *fiber.Ctx) error {
	claim, member := helper.GetInfoMemberFromToken(c)
	if member == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MEMBER_NOT_FOUND, errors.New("member not found"))
	}

	var cafe model.Cafe
	if err := database.DB.Preload("Menus").First(&cafe, "mem_no = ?", claim.MemNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CAFE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cafe)
}

func CreateCafe(c *fiber.Ctx) error {
	claim, member := helper.GetInfoMemberFromToken(c)
	if member == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MEMBER_NOT_FOUND, errors.New("member not found"))
	}

	input, ok := c.Locals("cafeInput").(model.CreateCafeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid cafe input", nil)
	}

	cafe := model.Cafe{
		CafeName: input.CafeName,
		Slug:     slug.Make(input.CafeName),
		MemNo:    claim.MemNo,
		Phone:    input.Phone,
		Address:  input.Address,
		CafeImg:  input.CafeImg,
	}
	if err := database.DB.Create(&cafe).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, cafe)
}

func EditCafe(c *fiber.Ctx) error {
	cafeNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	claim, member := helper.GetInfoMemberFromToken(c)
	if member == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MEMBER_NOT_FOUND, errors.New("member not found"))
	}

	var cafe model.Cafe
	if err := database.DB.First(&cafe, "cafe_no = ?", cafeNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CAFE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if claim.Role != constants.ROLE_ADMIN && cafe.MemNo != claim.MemNo {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "No permission for this cafe", nil)
	}

	var input model.EditCafeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
	}

	if input.CafeName != nil {
		cafe.CafeName = *input.CafeName
		cafe.Slug = slug.Make(*input.CafeName)
	}
	if input.Phone != nil {
		cafe.Phone = *input.Phone
	}
	if input.Address != nil {
		cafe.Address = *input.Address
	}
	if input.CafeImg != nil {
		cafe.CafeImg = *input.CafeImg
	}

	if err := database.DB.Save(&cafe).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cafe)
}

func DeleteCafe(c *fiber.Ctx) error {
	cafeNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	claim, member := helper.GetInfoMemberFromToken(c)
	if member == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MEMBER_NOT_FOUND, errors.New("member not found"))
	}

	var cafe model.Cafe
	if err := database.DB.First(&cafe, "cafe_no = ?", cafeNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CAFE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if claim.Role != constants.ROLE_ADMIN && cafe.MemNo != claim.MemNo {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "No permission for this cafe", nil)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cafe_no = ?", cafe.CafeNo).Delete(&model.CafeMenu{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cafe).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"cafeNo": cafeNo})
}
