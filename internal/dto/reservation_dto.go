package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	Id              string    `json:"id" validate:"required,max=100"`
	TableId         uuid.UUID `json:"table_id" validate:"required"`
	ReservationDate string    `json:"reservation_date" validate:"required,datetime=2006-01-02"`
	ReservationTime string    `json:"reservation_time" validate:"required,datetime=15:04"`
	GuestCount      int       `json:"guest_count" validate:"required,min=1"`
}

type AvailabilityRequest struct {
	TableId         uuid.UUID `query:"table_id" validate:"required"`
	ReservationDate string    `query:"date" validate:"required,datetime=2006-01-02"`
	ReservationTime string    `query:"time" validate:"required,datetime=15:04"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type ReservationResponse struct {
	Id              string         `json:"id"`
	UserId          uuid.UUID      `json:"user_id"`
	TableId         uuid.UUID      `json:"table_id"`
	ReservationDate string         `json:"reservation_date"`
	ReservationTime string         `json:"reservation_time"`
	GuestCount      int            `json:"guest_count"`
	TransactionID   *string        `json:"transaction_id,omitempty"`
	Paid            bool           `json:"paid"`
	Table           *TableResponse `json:"table,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}
