package helper

import (
	"cafe_manager/model"
	"errors"
	"testing"
)

func TestConfirmPaymentCreditsPoints(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")
	menu := createTestMenu(t, db, cafe, "americano", 3000)

	input := paymentRequest(member, cafe,
		model.OrderItemRequest{ItemName: "americano", Quantity: 2, Amount: 10000, CafeMenuNo: menu.MenuNo},
	)
	input.TotalPointAmount = 2000
	paymentNo, err := CreatePayment(db, input)
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}

	accrued, err := ConfirmPayment(db, paymentNo)
	if err != nil {
		t.Fatalf("ConfirmPayment failed: %v", err)
	}
	// floor((10000 - 2000) * 0.025) = 200
	if accrued != 200 {
		t.Fatalf("expected 200 accrued points, got %d", accrued)
	}

	var got model.Member
	db.First(&got, "mem_no = ?", member.MemNo)
	if got.MemPoint != 200 {
		t.Errorf("expected member balance 200, got %d", got.MemPoint)
	}

	var payment model.Payment
	db.First(&payment, "payment_no = ?", paymentNo)
	if payment.PaymentStatus != model.PaymentConfirmed {
		t.Errorf("expected status %s, got %s", model.PaymentConfirmed, payment.PaymentStatus)
	}
	if payment.PaymentDate == nil {
		t.Errorf("expected paymentDate set on confirmation")
	}
	if payment.PointAccruedAt == nil {
		t.Errorf("expected accrual marker set")
	}
}

func TestConfirmPaymentTwiceCreditsOnce(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")
	menu := createTestMenu(t, db, cafe, "americano", 3000)

	input := paymentRequest(member, cafe,
		model.OrderItemRequest{ItemName: "americano", Quantity: 1, Amount: 10000, CafeMenuNo: menu.MenuNo},
	)
	paymentNo, err := CreatePayment(db, input)
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}

	if _, err := ConfirmPayment(db, paymentNo); err != nil {
		t.Fatalf("first ConfirmPayment failed: %v", err)
	}
	if _, err := ConfirmPayment(db, paymentNo); !errors.Is(err, ErrAlreadyAccrued) {
		t.Fatalf("expected ErrAlreadyAccrued on second confirm, got %v", err)
	}

	var got model.Member
	db.First(&got, "mem_no = ?", member.MemNo)
	if got.MemPoint != 250 {
		t.Errorf("expected single credit of 250, got balance %d", got.MemPoint)
	}
}

func TestConfirmPaymentTruncatesTowardZero(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")
	menu := createTestMenu(t, db, cafe, "cake", 1039)

	input := paymentRequest(member, cafe,
		model.OrderItemRequest{ItemName: "cake", Quantity: 1, Amount: 1039, CafeMenuNo: menu.MenuNo},
	)
	paymentNo, err := CreatePayment(db, input)
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}

	accrued, err := ConfirmPayment(db, paymentNo)
	if err != nil {
		t.Fatalf("ConfirmPayment failed: %v", err)
	}
	// 1039 * 0.025 = 25.975 -> 25, never rounded up
	if accrued != 25 {
		t.Fatalf("expected 25 accrued points, got %d", accrued)
	}
}

func TestConfirmPaymentRejectsCancelled(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")
	menu := createTestMenu(t, db, cafe, "americano", 3000)

	input := paymentRequest(member, cafe,
		model.OrderItemRequest{ItemName: "americano", Quantity: 1, Amount: 10000, CafeMenuNo: menu.MenuNo},
	)
	paymentNo, err := CreatePayment(db, input)
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}
	if err := UpdatePaymentStatus(db, paymentNo, model.PaymentCancelled); err != nil {
		t.Fatalf("UpdatePaymentStatus failed: %v", err)
	}

	if _, err := ConfirmPayment(db, paymentNo); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on cancelled payment, got %v", err)
	}

	var payment model.Payment
	db.First(&payment, "payment_no = ?", paymentNo)
	if payment.PaymentStatus != model.PaymentCancelled {
		t.Errorf("cancelled payment was reopened, status %s", payment.PaymentStatus)
	}
	if payment.PointAccruedAt != nil {
		t.Errorf("expected no accrual marker on cancelled payment")
	}

	var got model.Member
	db.First(&got, "mem_no = ?", member.MemNo)
	if got.MemPoint != 0 {
		t.Errorf("expected no credit, got balance %d", got.MemPoint)
	}
}

func TestConfirmPaymentAccumulatesAcrossPayments(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")
	menu := createTestMenu(t, db, cafe, "americano", 3000)

	for i := 0; i < 2; i++ {
		paymentNo, err := CreatePayment(db, paymentRequest(member, cafe,
			model.OrderItemRequest{ItemName: "americano", Quantity: 1, Amount: 10000, CafeMenuNo: menu.MenuNo},
		))
		if err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
		if _, err := ConfirmPayment(db, paymentNo); err != nil {
			t.Fatalf("ConfirmPayment failed: %v", err)
		}
	}

	var got model.Member
	db.First(&got, "mem_no = ?", member.MemNo)
	if got.MemPoint != 500 {
		t.Errorf("expected accumulated balance 500, got %d", got.MemPoint)
	}
}

func TestConfirmPaymentNotFound(t *testing.T) {
	db := setupTestDB(t)
	if _, err := ConfirmPayment(db, 31337); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}
