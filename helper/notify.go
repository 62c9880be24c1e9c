package helper

import (
	"cafe_manager/database"
	"cafe_manager/model"
	"context"
	"encoding/json"
	"fmt"
	"log"
)

type PaymentEvent struct {
	PaymentNo     uint                `json:"paymentNo"`
	CafeNo        uint                `json:"cafeNo"`
	PaymentStatus model.PaymentStatus `json:"paymentStatus"`
	AccruedPoint  int                 `json:"accruedPoint,omitempty"`
}

func CafeOrderChannel(cafeNo uint) string {
	return fmt.Sprintf("cafe:%d:orders", cafeNo)
}

// PublishPaymentEvent is best-effort: a dead redis never fails the
// payment operation itself.
func PublishPaymentEvent(event PaymentEvent) {
	if database.Redis == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal payment event: %v", err)
		return
	}
	if err := database.Redis.Publish(context.Background(), CafeOrderChannel(event.CafeNo), payload).Err(); err != nil {
		log.Printf("failed to publish payment event: %v", err)
	}
}
