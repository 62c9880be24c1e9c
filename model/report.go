package model

import "time"

type PaymentSalesResponse struct {
	Date          string `json:"date"`
	TotalAmount   int    `json:"total_amount"`
	TotalQuantity int    `json:"total_quantity"` // number of payments that day
}

type PaymentSalesDetailResponse struct {
	PaymentNo   uint       `json:"paymentNo"`
	PaymentDate *time.Time `json:"paymentDate"`
	ItemName    string     `json:"itemName"`
	Quantity    int        `json:"quantity"`
	Amount      int        `json:"amount"`
	MemNick     string     `json:"memNick"`
	MemImg      string     `json:"memImg"`
}

type PaymentSalesMenuResponse struct {
	CafeMenuNo    uint   `json:"cafeMenuNo"`
	MenuName      string `json:"menuName"`
	TotalQuantity int    `json:"total_quantity"`
	TotalAmount   int    `json:"total_amount"`
}
