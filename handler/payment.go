package handler

import (
	"cafe_manager/constants"
	"cafe_manager/database"
	"cafe_manager/helper"
	"cafe_manager/model"
	"cafe_manager/utils"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func CreatePayment(c *fiber.Ctx) error {
	var input model.PaymentRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid payment request", err)
	}

	validate := validator.New()
	if err := validate.Struct(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid payment request", err)
	}

	claim, member := helper.GetInfoMemberFromToken(c)
	if member == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MEMBER_NOT_FOUND, errors.New("member not found"))
	}
	// payments are always created for the acting member
	input.MemNo = claim.MemNo

	paymentNo, err := helper.CreatePayment(database.DB, input)
	if err != nil {
		if errors.Is(err, helper.ErrMemberNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MEMBER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Payment created",
		"paymentNo": paymentNo,
	})
}

func GetPayment(c *fiber.Ctx) error {
	paymentNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	response, err := helper.GetPaymentResponse(database.DB, uint(paymentNo))
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrPaymentNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_FOUND, err)
		case errors.Is(err, helper.ErrCafeNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CAFE_NOT_FOUND, err)
		case errors.Is(err, helper.ErrMenuNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetMyPayments(c *fiber.Ctx) error {
	claim, member := helper.GetInfoMemberFromToken(c)
	if member == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MEMBER_NOT_FOUND, errors.New("member not found"))
	}

	responses, err := helper.GetPaymentResponsesByMember(database.DB, claim.MemNo)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, responses)
}

func GetPaymentsByCafe(c *fiber.Ctx) error {
	cafeNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	filterInput := new(model.FilterPayment)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	responses, totalCount, err := helper.GetPaymentResponsesByCafe(database.DB, uint(cafeNo), *filterInput)
	if err != nil {
		if errors.Is(err, helper.ErrCafeNotFound) || errors.Is(err, helper.ErrMenuNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CAFE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       responses,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func UpdatePaymentStatus(c *fiber.Ctx) error {
	paymentNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	var input model.UpdatePaymentStatusInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PAYMENT_STATUS, err)
	}

	if err := helper.UpdatePaymentStatus(database.DB, uint(paymentNo), input.PaymentStatus); err != nil {
		switch {
		case errors.Is(err, helper.ErrPaymentNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_FOUND, err)
		case errors.Is(err, helper.ErrInvalidStatus):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PAYMENT_STATUS, err)
		case errors.Is(err, helper.ErrInvalidTransition):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_STATUS_TRANSITION, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var payment model.Payment
	if err := database.DB.First(&payment, "payment_no = ?", paymentNo).Error; err == nil {
		helper.PublishPaymentEvent(helper.PaymentEvent{
			PaymentNo:     payment.PaymentNo,
			CafeNo:        payment.CafeNo,
			PaymentStatus: payment.PaymentStatus,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"paymentNo":     paymentNo,
		"paymentStatus": input.PaymentStatus,
	})
}

func ConfirmPayment(c *fiber.Ctx) error {
	paymentNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	accrued, err := helper.ConfirmPayment(database.DB, uint(paymentNo))
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrPaymentNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_FOUND, err)
		case errors.Is(err, helper.ErrMemberNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MEMBER_NOT_FOUND, err)
		case errors.Is(err, helper.ErrAlreadyAccrued):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.PAYMENT_ALREADY_CONFIRMED, err)
		case errors.Is(err, helper.ErrInvalidTransition):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_STATUS_TRANSITION, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var payment model.Payment
	if err := database.DB.Preload("Member").First(&payment, "payment_no = ?", paymentNo).Error; err == nil {
		helper.PublishPaymentEvent(helper.PaymentEvent{
			PaymentNo:     payment.PaymentNo,
			CafeNo:        payment.CafeNo,
			PaymentStatus: payment.PaymentStatus,
			AccruedPoint:  accrued,
		})

		var cafe model.Cafe
		database.DB.First(&cafe, "cafe_no = ?", payment.CafeNo)
		utils.SendReceiptEmail(payment.Member.MemEmail, utils.ReceiptEmailData{
			PaymentNo:     payment.PaymentNo,
			CafeName:      cafe.CafeName,
			ItemInitName:  payment.ItemInitName,
			TotalAmount:   payment.TotalAmount,
			AccruedPoint:  accrued,
			PaymentMethod: payment.PaymentMethod,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"paymentNo":    paymentNo,
		"accruedPoint": accrued,
	})
}

func DeletePayment(c *fiber.Ctx) error {
	paymentNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	if err := helper.DeletePayment(database.DB, uint(paymentNo)); err != nil {
		if errors.Is(err, helper.ErrPaymentNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"paymentNo": paymentNo})
}

// GetPaymentReceipt returns a QR of the external payment reference for
// pickup at the counter.
func GetPaymentReceipt(c *fiber.Ctx) error {
	paymentNo, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	var payment model.Payment
	if err := database.DB.First(&payment, "payment_no = ?", paymentNo).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_FOUND, err)
	}

	qrBytes, err := utils.GenerateQRCode(payment.ExPaymentNo, 400)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"paymentNo":   payment.PaymentNo,
		"exPaymentNo": payment.ExPaymentNo,
		"qrCode":      "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes),
		"label":       fmt.Sprintf("%s (%d items)", payment.ItemInitName, payment.TotalQuantity),
	})
}
