package entity

import "time"

// Transaction is a payment-gateway settlement recorded by the webhook.
// The reservation_id is caller-supplied and is not cross-checked at
// ingestion time; the relationship is resolved on cancellation.
type Transaction struct {
	TransactionID     string
	OrderID           string
	ReservationID     string
	TransactionStatus string
	PaymentType       string
	GrossAmount       string
	TransactionTime   string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Settled reports whether the gateway considers the payment final.
func (t *Transaction) Settled() bool {
	return t.TransactionStatus == "settlement" || t.TransactionStatus == "capture"
}
