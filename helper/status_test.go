package helper

import (
	"cafe_manager/model"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func createReadyPayment(t *testing.T, db *gorm.DB, member model.Member, cafe model.Cafe, menu model.CafeMenu) uint {
	t.Helper()
	paymentNo, err := CreatePayment(db, paymentRequest(member, cafe,
		model.OrderItemRequest{ItemName: menu.MenuName, Quantity: 1, Amount: menu.Price, CafeMenuNo: menu.MenuNo},
	))
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}
	return paymentNo
}

func TestUpdateStatusReadyToConfirmed(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")
	menu := createTestMenu(t, db, cafe, "americano", 3000)
	paymentNo := createReadyPayment(t, db, member, cafe, menu)

	if err := UpdatePaymentStatus(db, paymentNo, model.PaymentConfirmed); err != nil {
		t.Fatalf("UpdatePaymentStatus failed: %v", err)
	}

	var payment model.Payment
	db.First(&payment, "payment_no = ?", paymentNo)
	if payment.PaymentStatus != model.PaymentConfirmed {
		t.Errorf("expected status %s, got %s", model.PaymentConfirmed, payment.PaymentStatus)
	}
	if payment.PaymentDate == nil {
		t.Errorf("expected paymentDate stamped on confirmation")
	}
}

func TestUpdateStatusConfirmedIsTerminal(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")
	menu := createTestMenu(t, db, cafe, "americano", 3000)
	paymentNo := createReadyPayment(t, db, member, cafe, menu)

	if err := UpdatePaymentStatus(db, paymentNo, model.PaymentConfirmed); err != nil {
		t.Fatalf("UpdatePaymentStatus failed: %v", err)
	}

	// re-opening a confirmed payment must be rejected
	if err := UpdatePaymentStatus(db, paymentNo, model.PaymentReady); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := UpdatePaymentStatus(db, paymentNo, model.PaymentCancelled); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")
	menu := createTestMenu(t, db, cafe, "americano", 3000)
	paymentNo := createReadyPayment(t, db, member, cafe, menu)

	if err := UpdatePaymentStatus(db, paymentNo, "PAYMENT_EXPLODED"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatusPaymentNotFound(t *testing.T) {
	db := setupTestDB(t)
	if err := UpdatePaymentStatus(db, 404, model.PaymentConfirmed); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}
