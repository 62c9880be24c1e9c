package handler

import (
	"cafe_manager/constants"
	"cafe_manager/helper"
	"cafe_manager/model"
	"cafe_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		MemId    string `json:"memId"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.MemId == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("memId and password are required"))
	}

	member, err := helper.GetMemberByMemId(loginInput.MemId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if member == nil {
		// auth subject missing: surfaced as an authentication failure,
		// not a plain not-found
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_MEMBER_ID, errors.New("memId not exists"))
	}

	if !helper.CheckPasswordHash(loginInput.Password, member.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match memId"))
	}

	tokenClaim := model.TokenClaim{
		MemNo: member.MemNo,
		MemId: member.MemId,
		Role:  member.Role,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"member": fiber.Map{
			"memNo":   member.MemNo,
			"memId":   member.MemId,
			"memNick": member.MemNick,
			"role":    member.Role,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", errors.New("no token"))
	}

	token, err := helper.ParseToken(refreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	memNo, ok := claims["memNo"].(float64)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("missing memNo claim"))
	}
	memId, _ := claims["memId"].(string)

	accessToken, err := helper.GenerateAccessToken(model.TokenClaim{MemNo: uint(memNo), MemId: memId})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{"message": "token refreshed"})
}
