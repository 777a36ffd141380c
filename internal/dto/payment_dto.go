package dto

import "time"

type CheckoutRequest struct {
	ReservationId string `json:"reservation_id" validate:"required,max=100"`
}

type CheckoutResponse struct {
	OrderId     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
	GrossAmount int64  `json:"gross_amount"`
}

// MidtransWebhookRequest mirrors the gateway's HTTP notification body.
// Only the fields this service acts on are declared.
type MidtransWebhookRequest struct {
	TransactionID     string `json:"transaction_id" validate:"required"`
	OrderID           string `json:"order_id" validate:"required"`
	ReservationID     string `json:"reservation_id"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
	PaymentType       string `json:"payment_type"`
	TransactionTime   string `json:"transaction_time"`
	StatusCode        string `json:"status_code" validate:"required"`
	GrossAmount       string `json:"gross_amount" validate:"required"`
	SignatureKey      string `json:"signature_key" validate:"required"`
}

type TransactionResponse struct {
	TransactionID     string    `json:"transaction_id"`
	OrderID           string    `json:"order_id"`
	ReservationID     string    `json:"reservation_id"`
	TransactionStatus string    `json:"transaction_status"`
	PaymentType       string    `json:"payment_type"`
	GrossAmount       string    `json:"gross_amount"`
	TransactionTime   string    `json:"transaction_time"`
	CreatedAt         time.Time `json:"created_at"`
}
