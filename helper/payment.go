package helper

import (
	"cafe_manager/model"
	"cafe_manager/utils"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrCafeNotFound      = errors.New("cafe not found")
	ErrMenuNotFound      = errors.New("menu not found")
	ErrInvalidStatus     = errors.New("invalid payment status")
	ErrInvalidTransition = errors.New("payment status transition not allowed")
	ErrAlreadyAccrued    = errors.New("points already accrued for payment")
)

// AccrualRate: 2.5% of the cash portion (total minus the point-paid part).
const AccrualRate = 0.025

// CreatePayment persists the payment header and its order items in one
// transaction. Totals are recomputed from the line items, the caller's
// aggregates are ignored.
func CreatePayment(db *gorm.DB, input model.PaymentRequest) (uint, error) {
	var payment model.Payment

	err := db.Transaction(func(tx *gorm.DB) error {
		var member model.Member
		if err := tx.First(&member, "mem_no = ?", input.MemNo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return err
		}

		totalQuantity := 0
		totalAmount := 0
		for _, item := range input.OrderItems {
			totalQuantity += item.Quantity
			totalAmount += item.Amount
		}

		exPaymentNo := input.ExPaymentNo
		if exPaymentNo == "" {
			exPaymentNo = uuid.NewString()
		}

		itemInitName := input.ItemInitName
		if itemInitName == "" {
			itemInitName = input.OrderItems[0].ItemName
			if len(input.OrderItems) > 1 {
				itemInitName = fmt.Sprintf("%s and %d more", itemInitName, len(input.OrderItems)-1)
			}
		}

		payment = model.Payment{
			MemNo:            member.MemNo,
			CafeNo:           input.CafeNo,
			ItemInitName:     itemInitName,
			ExPaymentNo:      exPaymentNo,
			PaymentMethod:    input.PaymentMethod,
			TotalQuantity:    totalQuantity,
			TotalAmount:      totalAmount,
			TotalPointAmount: input.TotalPointAmount,
			PaymentStatus:    model.PaymentReady,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		for _, item := range input.OrderItems {
			orderItem := model.OrderItem{
				PaymentNo:  payment.PaymentNo,
				ItemName:   item.ItemName,
				Quantity:   item.Quantity,
				Amount:     item.Amount,
				CafeMenuNo: item.CafeMenuNo,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return payment.PaymentNo, nil
}

// PaymentToResponse joins the cafe name and the menu image of every
// order item onto the payment. A missing cafe or menu row is a hard
// failure, there is no image fallback.
func PaymentToResponse(db *gorm.DB, payment model.Payment) (model.PaymentResponse, error) {
	var response model.PaymentResponse
	if err := copier.Copy(&response, &payment); err != nil {
		return response, err
	}

	var cafe model.Cafe
	if err := db.First(&cafe, "cafe_no = ?", payment.CafeNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response, ErrCafeNotFound
		}
		return response, err
	}
	response.CafeName = cafe.CafeName

	items := make([]model.OrderItemResponse, 0, len(payment.OrderItems))
	for _, orderItem := range payment.OrderItems {
		var menu model.CafeMenu
		if err := db.First(&menu, "menu_no = ?", orderItem.CafeMenuNo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response, ErrMenuNotFound
			}
			return response, err
		}
		items = append(items, model.OrderItemResponse{
			ItemName: orderItem.ItemName,
			Quantity: orderItem.Quantity,
			Amount:   orderItem.Amount,
			ImageUrl: menu.MenuImg,
		})
	}
	response.OrderItems = items

	return response, nil
}

func GetPaymentResponse(db *gorm.DB, paymentNo uint) (model.PaymentResponse, error) {
	var payment model.Payment
	if err := db.Preload("OrderItems").First(&payment, "payment_no = ?", paymentNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.PaymentResponse{}, ErrPaymentNotFound
		}
		return model.PaymentResponse{}, err
	}
	return PaymentToResponse(db, payment)
}

func GetPaymentResponsesByMember(db *gorm.DB, memNo uint) ([]model.PaymentResponse, error) {
	var payments []model.Payment
	if err := db.Preload("OrderItems").Where("mem_no = ?", memNo).Order("payment_no").Find(&payments).Error; err != nil {
		return nil, err
	}

	responses := []model.PaymentResponse{}
	for _, payment := range payments {
		response, err := PaymentToResponse(db, payment)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, nil
}

func GetPaymentResponsesByCafe(db *gorm.DB, cafeNo uint, filter model.FilterPayment) ([]model.PaymentResponse, int64, error) {
	condition := db.Model(&model.Payment{}).Where("cafe_no = ?", cafeNo)
	if filter.PaymentStatus != "" {
		condition = condition.Where("payment_status = ?", filter.PaymentStatus)
	}

	var totalCount int64
	if err := condition.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var payments []model.Payment
	if err := condition.Preload("OrderItems").Order("payment_no").Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	responses := []model.PaymentResponse{}
	for _, payment := range payments {
		response, err := PaymentToResponse(db, payment)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, response)
	}
	return responses, totalCount, nil
}

func DeletePayment(db *gorm.DB, paymentNo uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var payment model.Payment
		if err := tx.First(&payment, "payment_no = ?", paymentNo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		if err := tx.Where("payment_no = ?", paymentNo).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&payment).Error
	})
}

// UpdatePaymentStatus applies a status change through the transition
// table. CONFIRMED and CANCELLED are terminal.
func UpdatePaymentStatus(db *gorm.DB, paymentNo uint, status model.PaymentStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var payment model.Payment
		if err := tx.First(&payment, "payment_no = ?", paymentNo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		if !payment.PaymentStatus.CanTransitionTo(status) {
			return ErrInvalidTransition
		}

		updates := map[string]any{"payment_status": status}
		if status == model.PaymentConfirmed && payment.PaymentDate == nil {
			updates["payment_date"] = time.Now()
		}
		return tx.Model(&payment).Updates(updates).Error
	})
}

// ConfirmPayment marks the payment confirmed and credits loyalty points
// to the owning member. The point_accrued_at guard makes the credit
// at-most-once, a second confirm returns ErrAlreadyAccrued.
func ConfirmPayment(db *gorm.DB, paymentNo uint) (int, error) {
	accrued := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		var payment model.Payment
		if err := tx.First(&payment, "payment_no = ?", paymentNo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}

		// a CANCELLED payment stays cancelled; already-CONFIRMED falls
		// through to the accrual guard below
		if payment.PaymentStatus != model.PaymentConfirmed &&
			!payment.PaymentStatus.CanTransitionTo(model.PaymentConfirmed) {
			return ErrInvalidTransition
		}

		var member model.Member
		if err := tx.First(&member, "mem_no = ?", payment.MemNo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return err
		}

		// truncation toward zero, not rounding
		accrued = int(float64(payment.TotalAmount-payment.TotalPointAmount) * AccrualRate)

		now := time.Now()
		result := tx.Model(&model.Payment{}).
			Where("payment_no = ? AND point_accrued_at IS NULL", paymentNo).
			Updates(map[string]any{
				"payment_status":   model.PaymentConfirmed,
				"payment_date":     now,
				"point_accrued_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyAccrued
		}

		// in-database increment, concurrent confirms for the same member
		// never lose a credit
		return tx.Model(&model.Member{}).
			Where("mem_no = ?", payment.MemNo).
			Update("mem_point", gorm.Expr("mem_point + ?", accrued)).Error
	})
	if err != nil {
		return 0, err
	}

	return accrued, nil
}
