package helper

import (
	"cafe_manager/model"
	"errors"
	"testing"
)

func paymentRequest(member model.Member, cafe model.Cafe, items ...model.OrderItemRequest) model.PaymentRequest {
	return model.PaymentRequest{
		MemNo:         member.MemNo,
		CafeNo:        cafe.CafeNo,
		PaymentMethod: "CARD",
		OrderItems:    items,
	}
}

func TestCreatePaymentPersistsHeaderAndItems(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")
	menu := createTestMenu(t, db, cafe, "americano", 3000)

	input := paymentRequest(member, cafe,
		model.OrderItemRequest{ItemName: "americano", Quantity: 2, Amount: 6000, CafeMenuNo: menu.MenuNo},
		model.OrderItemRequest{ItemName: "latte", Quantity: 1, Amount: 3500, CafeMenuNo: menu.MenuNo},
	)
	// caller-supplied aggregates must be ignored
	input.TotalQuantity = 99
	input.TotalAmount = 1

	paymentNo, err := CreatePayment(db, input)
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}

	var payment model.Payment
	if err := db.Preload("OrderItems").First(&payment, "payment_no = ?", paymentNo).Error; err != nil {
		t.Fatalf("payment not persisted: %v", err)
	}

	if len(payment.OrderItems) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(payment.OrderItems))
	}
	if payment.TotalQuantity != 3 {
		t.Errorf("expected recomputed totalQuantity 3, got %d", payment.TotalQuantity)
	}
	if payment.TotalAmount != 9500 {
		t.Errorf("expected recomputed totalAmount 9500, got %d", payment.TotalAmount)
	}
	if payment.PaymentStatus != model.PaymentReady {
		t.Errorf("expected status %s, got %s", model.PaymentReady, payment.PaymentStatus)
	}
	if payment.PaymentDate != nil {
		t.Errorf("expected nil paymentDate on creation")
	}
	if payment.ExPaymentNo == "" {
		t.Errorf("expected generated exPaymentNo")
	}
	if payment.ItemInitName != "americano and 1 more" {
		t.Errorf("unexpected itemInitName %q", payment.ItemInitName)
	}
}

func TestCreatePaymentMemberNotFound(t *testing.T) {
	db := setupTestDB(t)
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")

	input := model.PaymentRequest{
		MemNo:         9999,
		CafeNo:        cafe.CafeNo,
		PaymentMethod: "CARD",
		OrderItems: []model.OrderItemRequest{
			{ItemName: "americano", Quantity: 1, Amount: 3000, CafeMenuNo: 1},
		},
	}

	if _, err := CreatePayment(db, input); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}

	// nothing may remain from the aborted transaction
	var count int64
	db.Model(&model.OrderItem{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no order items after rollback, got %d", count)
	}
}

func TestGetPaymentResponseJoinsDirectories(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")
	menu := createTestMenu(t, db, cafe, "americano", 3000)

	paymentNo, err := CreatePayment(db, paymentRequest(member, cafe,
		model.OrderItemRequest{ItemName: "americano", Quantity: 1, Amount: 3000, CafeMenuNo: menu.MenuNo},
	))
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}

	response, err := GetPaymentResponse(db, paymentNo)
	if err != nil {
		t.Fatalf("GetPaymentResponse failed: %v", err)
	}
	if response.CafeName != cafe.CafeName {
		t.Errorf("expected cafeName %q, got %q", cafe.CafeName, response.CafeName)
	}
	if response.MemNo != member.MemNo {
		t.Errorf("expected memNo %d, got %d", member.MemNo, response.MemNo)
	}
	if len(response.OrderItems) != 1 {
		t.Fatalf("expected 1 item response, got %d", len(response.OrderItems))
	}
	if response.OrderItems[0].ImageUrl != menu.MenuImg {
		t.Errorf("expected imageUrl %q, got %q", menu.MenuImg, response.OrderItems[0].ImageUrl)
	}
}

func TestGetPaymentResponseMissingMenuIsHardFailure(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")

	paymentNo, err := CreatePayment(db, paymentRequest(member, cafe,
		model.OrderItemRequest{ItemName: "ghost", Quantity: 1, Amount: 3000, CafeMenuNo: 4242},
	))
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}

	if _, err := GetPaymentResponse(db, paymentNo); !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("expected ErrMenuNotFound, got %v", err)
	}
}

func TestGetPaymentResponseNotFound(t *testing.T) {
	db := setupTestDB(t)
	if _, err := GetPaymentResponse(db, 777); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}

func TestListPaymentsEmptyIsEmptySlice(t *testing.T) {
	db := setupTestDB(t)

	responses, totalCount, err := GetPaymentResponsesByCafe(db, 1, model.FilterPayment{})
	if err != nil {
		t.Fatalf("GetPaymentResponsesByCafe failed: %v", err)
	}
	if responses == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(responses) != 0 {
		t.Fatalf("expected 0 responses, got %d", len(responses))
	}
	if totalCount != 0 {
		t.Fatalf("expected totalCount 0, got %d", totalCount)
	}
}

func TestListPaymentsByCafePaginated(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")
	menu := createTestMenu(t, db, cafe, "americano", 3000)

	for i := 0; i < 3; i++ {
		if _, err := CreatePayment(db, paymentRequest(member, cafe,
			model.OrderItemRequest{ItemName: "americano", Quantity: 1, Amount: 3000, CafeMenuNo: menu.MenuNo},
		)); err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
	}

	limit, page := 2, 1
	filter := model.FilterPayment{Pagination: model.Pagination{Limit: &limit, Page: &page}}

	responses, totalCount, err := GetPaymentResponsesByCafe(db, cafe.CafeNo, filter)
	if err != nil {
		t.Fatalf("GetPaymentResponsesByCafe failed: %v", err)
	}
	if totalCount != 3 {
		t.Fatalf("expected totalCount 3, got %d", totalCount)
	}
	if len(responses) != 2 {
		t.Fatalf("expected 2 rows on page 1, got %d", len(responses))
	}

	page = 2
	responses, totalCount, err = GetPaymentResponsesByCafe(db, cafe.CafeNo, filter)
	if err != nil {
		t.Fatalf("GetPaymentResponsesByCafe failed: %v", err)
	}
	if totalCount != 3 {
		t.Fatalf("expected totalCount 3, got %d", totalCount)
	}
	if len(responses) != 1 {
		t.Fatalf("expected 1 row on page 2, got %d", len(responses))
	}
}

func TestListPaymentsFiltersByStatus(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")
	menu := createTestMenu(t, db, cafe, "americano", 3000)

	first, err := CreatePayment(db, paymentRequest(member, cafe,
		model.OrderItemRequest{ItemName: "americano", Quantity: 1, Amount: 3000, CafeMenuNo: menu.MenuNo},
	))
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}
	if _, err := CreatePayment(db, paymentRequest(member, cafe,
		model.OrderItemRequest{ItemName: "americano", Quantity: 1, Amount: 3000, CafeMenuNo: menu.MenuNo},
	)); err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}
	if err := UpdatePaymentStatus(db, first, model.PaymentCancelled); err != nil {
		t.Fatalf("UpdatePaymentStatus failed: %v", err)
	}

	responses, totalCount, err := GetPaymentResponsesByCafe(db, cafe.CafeNo, model.FilterPayment{PaymentStatus: model.PaymentCancelled})
	if err != nil {
		t.Fatalf("GetPaymentResponsesByCafe failed: %v", err)
	}
	if totalCount != 1 || len(responses) != 1 {
		t.Fatalf("expected 1 cancelled payment, got %d rows (totalCount %d)", len(responses), totalCount)
	}
	if responses[0].PaymentNo != first {
		t.Errorf("expected payment %d, got %d", first, responses[0].PaymentNo)
	}
}

func TestDeletePaymentRemovesOrderItems(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "buyer")
	cafe := createTestCafe(t, db, createTestMember(t, db, "owner"), "around")
	menu := createTestMenu(t, db, cafe, "americano", 3000)

	paymentNo, err := CreatePayment(db, paymentRequest(member, cafe,
		model.OrderItemRequest{ItemName: "americano", Quantity: 2, Amount: 6000, CafeMenuNo: menu.MenuNo},
	))
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}

	if err := DeletePayment(db, paymentNo); err != nil {
		t.Fatalf("DeletePayment failed: %v", err)
	}

	var headerCount, itemCount int64
	db.Model(&model.Payment{}).Count(&headerCount)
	db.Model(&model.OrderItem{}).Where("payment_no = ?", paymentNo).Count(&itemCount)
	if headerCount != 0 {
		t.Errorf("expected payment removed, %d remain", headerCount)
	}
	if itemCount != 0 {
		t.Errorf("expected no orphan order items, got %d", itemCount)
	}
}

func TestDeletePaymentNotFound(t *testing.T) {
	db := setupTestDB(t)
	if err := DeletePayment(db, 123); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}
