package helper

import (
	"cafe_manager/database"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var digestScheduler gocron.Scheduler

// LogDailySalesDigest logs yesterday's confirmed sales per cafe.
func LogDailySalesDigest() {
	db := database.DB
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	var rows []struct {
		CafeNo        uint
		TotalAmount   int
		TotalQuantity int
	}
	err := db.Raw(`
		SELECT cafe_no,
		       COALESCE(SUM(total_amount), 0) AS total_amount,
		       COUNT(*) AS total_quantity
		FROM payments
		WHERE payment_date IS NOT NULL AND DATE(payment_date) = ?
		GROUP BY cafe_no`, yesterday).Scan(&rows).Error
	if err != nil {
		log.Printf("sales digest query failed: %v", err)
		return
	}

	for _, row := range rows {
		log.Printf("[DIGEST] %s cafe=%d payments=%d amount=%d", yesterday, row.CafeNo, row.TotalQuantity, row.TotalAmount)
	}
}

func StartSalesDigestScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	digestScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(LogDailySalesDigest),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Sales digest scheduler started (00:05)")
}

func StopSalesDigestScheduler() {
	if digestScheduler != nil {
		if err := digestScheduler.Shutdown(); err != nil {
			log.Printf("failed to stop sales digest scheduler: %v", err)
		}
	}
}
