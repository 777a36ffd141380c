package dto

import (
	"time"

	"github.com/google/uuid"
)

type RefundDecisionRequest struct {
	Status string `json:"status" validate:"required"`
}

type RefundResponse struct {
	Id              uuid.UUID  `json:"id"`
	ReservationID   string     `json:"reservation_id"`
	TransactionID   string     `json:"transaction_id"`
	OrderID         string     `json:"order_id"`
	UserId          uuid.UUID  `json:"user_id"`
	PaymentType     string     `json:"payment_type"`
	GrossAmount     string     `json:"gross_amount"`
	TransactionTime string     `json:"transaction_time"`
	Status          string     `json:"status"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
