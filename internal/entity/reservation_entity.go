package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is one booking of one table for one date/time slot.
// The id is caller-supplied: the client generates and owns the identifier.
type Reservation struct {
	Id              string
	UserId          uuid.UUID
	TableId         uuid.UUID
	ReservationDate string // YYYY-MM-DD
	ReservationTime string // HH:MM
	GuestCount      int
	TransactionID   *string
	CreatedAt       time.Time
}

// Paid reports whether a settled payment has been linked to the booking.
func (r *Reservation) Paid() bool {
	return r.TransactionID != nil && *r.TransactionID != ""
}
