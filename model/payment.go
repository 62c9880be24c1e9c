package model

import "time"

type PaymentStatus string

const (
	PaymentReady     PaymentStatus = "PAYMENT_READY"
	PaymentConfirmed PaymentStatus = "PAYMENT_CONFIRMED"
	PaymentCancelled PaymentStatus = "PAYMENT_CANCELLED"
)

// allowedTransitions: CONFIRMED and CANCELLED are terminal.
var allowedTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentReady: {PaymentConfirmed, PaymentCancelled},
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentReady, PaymentConfirmed, PaymentCancelled:
		return true
	}
	return false
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, t := range allowedTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type Payment struct {
	PaymentNo        uint          `gorm:"primaryKey" json:"paymentNo"`
	MemNo            uint          `gorm:"not null;index" json:"memNo"`
	Member           Member        `gorm:"foreignKey:MemNo;references:MemNo" json:"-"`
	CafeNo           uint          `gorm:"not null;index" json:"cafeNo"`
	ItemInitName     string        `json:"itemInitName"`
	ExPaymentNo      string        `gorm:"unique" json:"exPaymentNo"`
	PaymentMethod    string        `json:"paymentMethod"`
	TotalQuantity    int           `json:"totalQuantity"`
	TotalAmount      int           `json:"totalAmount"`
	TotalPointAmount int           `json:"totalPointAmount"`
	PaymentStatus    PaymentStatus `gorm:"default:PAYMENT_READY" json:"paymentStatus"`
	PaymentDate      *time.Time    `json:"paymentDate"`    // set on confirmation only
	PointAccruedAt   *time.Time    `json:"pointAccruedAt"` // at-most-once accrual marker
	OrderItems       []OrderItem   `gorm:"foreignKey:PaymentNo;references:PaymentNo;constraint:OnDelete:CASCADE" json:"orderItems"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

type OrderItem struct {
	OrderItemNo uint   `gorm:"primaryKey" json:"orderItemNo"`
	PaymentNo   uint   `gorm:"not null;index" json:"paymentNo"`
	ItemName    string `gorm:"not null" json:"itemName"`
	Quantity    int    `gorm:"not null" json:"quantity"`
	Amount      int    `gorm:"not null" json:"amount"`
	CafeMenuNo  uint   `gorm:"not null" json:"cafeMenuNo"`
}

type OrderItemRequest struct {
	ItemName   string `json:"itemName" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	Amount     int    `json:"amount" validate:"required,gt=0"`
	CafeMenuNo uint   `json:"cafeMenuNo" validate:"required,gt=0"`
}

type PaymentRequest struct {
	MemNo            uint               `json:"memNo" validate:"required,gt=0"`
	CafeNo           uint               `json:"cafeNo" validate:"required,gt=0"`
	ItemInitName     string             `json:"itemInitName"`
	ExPaymentNo      string             `json:"exPaymentNo"`
	PaymentMethod    string             `json:"paymentMethod" validate:"required"`
	TotalQuantity    int                `json:"totalQuantity"`
	TotalAmount      int                `json:"totalAmount"`
	TotalPointAmount int                `json:"totalPointAmount" validate:"gte=0"`
	OrderItems       []OrderItemRequest `json:"orderItems" validate:"required,min=1,dive"`
}

type OrderItemResponse struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
	Amount   int    `json:"amount"`
	ImageUrl string `json:"imageUrl"`
}

type PaymentResponse struct {
	PaymentNo        uint                `json:"paymentNo"`
	MemNo            uint                `json:"memNo"`
	CafeName         string              `json:"cafeName"`
	ItemInitName     string              `json:"itemInitName"`
	ExPaymentNo      string              `json:"exPaymentNo"`
	PaymentMethod    string              `json:"paymentMethod"`
	TotalQuantity    int                 `json:"totalQuantity"`
	TotalAmount      int                 `json:"totalAmount"`
	TotalPointAmount int                 `json:"totalPointAmount"`
	PaymentStatus    PaymentStatus       `json:"paymentStatus"`
	PaymentDate      *time.Time          `json:"paymentDate"`
	OrderItems       []OrderItemResponse `json:"orderItems"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus PaymentStatus `json:"paymentStatus" validate:"required"`
}

type FilterPayment struct {
	Pagination
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}
