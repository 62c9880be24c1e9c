package helper

import (
	"cafe_manager/database"
	"cafe_manager/model"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StalePaymentMinAge keeps the sweep away from rows created moments
// before it runs; a checkout confirmed during the sweep would otherwise
// race with the delete.
const StalePaymentMinAge = 24 * time.Hour

var reaperScheduler *cron.Cron

// ReapStalePayments deletes payments that never reached completion
// (payment_date still null) together with their order items, in one
// transaction. Only rows older than minAge are eligible.
func ReapStalePayments(db *gorm.DB, minAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-minAge)
	var reaped int64

	err := db.Transaction(func(tx *gorm.DB) error {
		var stale []model.Payment
		if err := tx.Where("payment_date IS NULL AND created_at < ?", cutoff).Find(&stale).Error; err != nil {
			return err
		}
		for _, payment := range stale {
			if err := tx.Where("payment_no = ?", payment.PaymentNo).Delete(&model.OrderItem{}).Error; err != nil {
				return err
			}
		}

		result := tx.Where("payment_date IS NULL AND created_at < ?", cutoff).Delete(&model.Payment{})
		if result.Error != nil {
			return result.Error
		}
		reaped = result.RowsAffected
		return nil
	})
	return reaped, err
}

func StartPaymentReaper() {
	reaperScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// 02:00 on the first day of every month
	_, err := reaperScheduler.AddFunc("0 2 1 * *", func() {
		reaped, err := ReapStalePayments(database.DB, StalePaymentMinAge)
		if err != nil {
			// whole sweep rolled back, next trigger retries
			log.Printf("stale payment sweep failed: %v", err)
			return
		}
		log.Printf("stale payment sweep removed %d payments", reaped)
	})
	if err != nil {
		log.Printf("failed to start payment reaper: %v", err)
		return
	}

	reaperScheduler.Start()
	log.Println("Payment reaper started (monthly, 02:00)")
}

func StopPaymentReaper() {
	if reaperScheduler != nil {
		reaperScheduler.Stop()
		log.Println("Payment reaper stopped")
	}
}
