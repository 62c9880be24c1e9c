package utils

import (
	"cafe_manager/model"

	"gorm.io/gorm"
)

// GetDailySalesReport returns one row per distinct payment date for the
// cafe. total_quantity counts payments on that date, not items sold.
// Only completed payments (payment_date set) are counted. Returns an
// empty slice, never nil.
func GetDailySalesReport(db *gorm.DB, cafeNo uint) ([]model.PaymentSalesResponse, error) {
	results := []model.PaymentSalesResponse{}

	err := db.Raw(`
		SELECT DATE(payment_date) AS date,
		       COALESCE(SUM(total_amount), 0) AS total_amount,
		       COUNT(*) AS total_quantity
		FROM payments
		WHERE cafe_no = ? AND payment_date IS NOT NULL
		GROUP BY DATE(payment_date)
		ORDER BY date`, cafeNo).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

// GetDailySalesDetailReport returns one row per order item across the
// cafe's payments on the given date (format 2006-01-02), with the
// purchasing member's nickname and avatar joined in.
func GetDailySalesDetailReport(db *gorm.DB, cafeNo uint, date string) ([]model.PaymentSalesDetailResponse, error) {
	results := []model.PaymentSalesDetailResponse{}

	err := db.Raw(`
		SELECT p.payment_no,
		       p.payment_date,
		       oi.item_name,
		       oi.quantity,
		       oi.amount,
		       m.mem_nick,
		       m.mem_img
		FROM order_items oi
		JOIN payments p ON oi.payment_no = p.payment_no
		JOIN members m ON p.mem_no = m.mem_no
		WHERE p.cafe_no = ? AND DATE(p.payment_date) = ?
		ORDER BY p.payment_no, oi.order_item_no`, cafeNo, date).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

// GetMenuSalesReport aggregates sold quantity and amount per menu for
// the cafe, best sellers first.
func GetMenuSalesReport(db *gorm.DB, cafeNo uint) ([]model.PaymentSalesMenuResponse, error) {
	results := []model.PaymentSalesMenuResponse{}

	err := db.Raw(`
		SELECT oi.cafe_menu_no,
		       cm.menu_name,
		       COALESCE(SUM(oi.quantity), 0) AS total_quantity,
		       COALESCE(SUM(oi.amount), 0) AS total_amount
		FROM order_items oi
		JOIN payments p ON oi.payment_no = p.payment_no
		JOIN cafe_menus cm ON oi.cafe_menu_no = cm.menu_no
		WHERE p.cafe_no = ?
		GROUP BY oi.cafe_menu_no, cm.menu_name
		ORDER BY total_quantity DESC`, cafeNo).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}
