package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type ReceiptEmailData struct {
	PaymentNo     uint
	CafeName      string
	ItemInitName  string
	TotalAmount   int
	AccruedPoint  int
	PaymentMethod string
}

// SendReceiptEmail sends the confirmation receipt (async, best-effort).
func SendReceiptEmail(to string, data ReceiptEmailData) {
	if to == "" {
		return
	}
	go func() {
		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		body := fmt.Sprintf(
			"Your payment #%d at %s is confirmed.\n\nOrder: %s\nAmount: %d\nMethod: %s\nPoints earned: %d\n",
			data.PaymentNo, data.CafeName, data.ItemInitName, data.TotalAmount, data.PaymentMethod, data.AccruedPoint,
		)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", fmt.Sprintf("Payment receipt #%d", data.PaymentNo))
		m.SetBody("text/plain", body)

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send receipt email: %v", err)
		}
	}()
}
