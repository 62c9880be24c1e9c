package handler

import (
	"cafe_manager/constants"
	"cafe_manager/database"
	"cafe_manager/helper"
	"cafe_manager/model"
	"cafe_manager/utils"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func menuCafeForOwner(c *fiber.Ctx, cafeNo uint) (*model.Cafe, error) {
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

func GetMenusByCafe(c *fiber.Ctx) error {
	cafeNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	var menus []model.CafeMenu
	if err := database.DB.Where("cafe_no = ?", cafeNo).Order("menu_no").Find(&menus).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, menus)
}

func CreateMenu(c *fiber.Ctx) error {
	cafeNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}
	if _, err := menuCafeForOwner(c, uint(cafeNo)); err != nil {
		return err
	}

	input, ok := c.Locals("menuInput").(model.CreateMenuInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid menu input", nil)
	}

	menu := model.CafeMenu{
		CafeNo:   uint(cafeNo),
		MenuName: input.MenuName,
		MenuImg:  input.MenuImg,
		Price:    input.Price,
	}
	if err := database.DB.Create(&menu).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, menu)
}

func EditMenu(c *fiber.Ctx) error {
	menuNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	var menu model.CafeMenu
	if err := database.DB.First(&menu, "menu_no = ?", menuNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if _, err := menuCafeForOwner(c, menu.CafeNo); err != nil {
		return err
	}

	var input model.EditMenuInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
	}

	if input.MenuName != nil {
		menu.MenuName = *input.MenuName
	}
	if input.MenuImg != nil {
		menu.MenuImg = *input.MenuImg
	}
	if input.Price != nil {
		menu.Price = *input.Price
	}

	if err := database.DB.Save(&menu).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, menu)
}

func DeleteMenu(c *fiber.Ctx) error {
	menuNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	var menu model.CafeMenu
	if err := database.DB.First(&menu, "menu_no = ?", menuNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if _, err := menuCafeForOwner(c, menu.CafeNo); err != nil {
		return err
	}

	if err := database.DB.Delete(&menu).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"menuNo": menuNo})
}

// DeleteMenus removes a batch of menus from one cafe in a single call.
func DeleteMenus(c *fiber.Ctx) error {
	cafeNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}
	if _, err := menuCafeForOwner(c, uint(cafeNo)); err != nil {
		return err
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ids input", nil)
	}

	result := database.DB.Where("cafe_no = ? AND menu_no IN ?", cafeNo, input.IDs).Delete(&model.CafeMenu{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}

// UploadMenuImage pushes the image to cloudinary and stores the
// delivered URL on the menu row.
func UploadMenuImage(c *fiber.Ctx) error {
	menuNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	var menu model.CafeMenu
	if err := database.DB.First(&menu, "menu_no = ?", menuNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if _, err := menuCafeForOwner(c, menu.CafeNo); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing image file", err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer file.Close()

	cld := helper.InitCloudinary()
	resp, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder:   "cafe_menu",
		PublicID: fmt.Sprintf("menu_%d", menu.MenuNo),
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	menu.MenuImg = resp.SecureURL
	if err := database.DB.Save(&menu).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, menu)
}

// GenerateSignature signs direct-to-cloudinary upload params for the
// frontend.
func GenerateSignature(c *fiber.Ctx) error {
	_, member := helper.GetInfoMemberFromToken(c)
	if member == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MEMBER_NOT_FOUND, errors.New("member not found"))
	}

	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid params", err)
	}

	timestamp := time.Now().Unix()

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = fmt.Sprintf("%d", timestamp)

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}
