package handler

import (
	"cafe_manager/constants"
	"cafe_manager/database"
	"cafe_manager/helper"
	"cafe_manager/model"
	"cafe_manager/utils"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("registerInput").(model.RegisterMemberInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid register input", nil)
	}

	existing, err := helper.GetMemberByMemId(input.MemId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Member id already taken", errors.New("duplicate memId"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	member := model.Member{
		MemId:    input.MemId,
		Password: hash,
		MemEmail: input.MemEmail,
		MemNick:  input.MemNick,
		MemImg:   input.MemImg,
		Role:     constants.ROLE_USER,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"memNo":   member.MemNo,
		"memId":   member.MemId,
		"memNick": member.MemNick,
	})
}

func Me(c *fiber.Ctx) error {
	_, member := helper.GetInfoMemberFromToken(c)
	if member == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MEMBER_NOT_FOUND, errors.New("member not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, member)
}

func GetMemberByNo(c *fiber.Ctx) error {
	memNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	var member model.Member
	if err := database.DB.First(&member, "mem_no = ?", memNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MEMBER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, member)
}

func EditMember(c *fiber.Ctx) error {
	_, member := helper.GetInfoMemberFromToken(c)
	if member == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MEMBER_NOT_FOUND, errors.New("member not found"))
	}

	var input model.EditMemberInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
	}

	if input.MemNick != nil {
		member.MemNick = *input.MemNick
	}
	if input.MemImg != nil {
		member.MemImg = *input.MemImg
	}
	if err := database.DB.Save(member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, member)
}

func ChangePassword(c *fiber.Ctx) error {
	_, member := helper.GetInfoMemberFromToken(c)
	if member == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MEMBER_NOT_FOUND, errors.New("member not found"))
	}

	var input model.MemberChangePassword
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
	}

	validate := validator.New()
	if err := validate.Struct(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, member.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("current password does not match"))
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	member.Password = hash
	if err := database.DB.Save(member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"memNo": member.MemNo})
}

func DeleteMember(c *fiber.Ctx) error {
	claim, member := helper.GetInfoMemberFromToken(c)
	if member == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MEMBER_NOT_FOUND, errors.New("member not found"))
	}

	if err := database.DB.Delete(&model.Member{}, "mem_no = ?", claim.MemNo).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.ClearCookie("access_token", "refresh_token")
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"memNo": claim.MemNo})
}
