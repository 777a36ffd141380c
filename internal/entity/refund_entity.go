package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RefundStatus is the closed set of refund states. The Indonesian values
// are part of the wire contract and must not be translated.
type RefundStatus string

const (
	RefundStatusPending  RefundStatus = "Belum diproses"
	RefundStatusAccepted RefundStatus = "Diterima"
	RefundStatusRejected RefundStatus = "Ditolak"
)

// ParseRefundDecision validates an operator-supplied decision value.
// Only the two terminal states are valid decisions.
func ParseRefundDecision(s string) (RefundStatus, error) {
	switch RefundStatus(s) {
	case RefundStatusAccepted, RefundStatusRejected:
		return RefundStatus(s), nil
	default:
		return "", fmt.Errorf("invalid refund status %q: must be %q or %q",
			s, RefundStatusAccepted, RefundStatusRejected)
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s RefundStatus) IsTerminal() bool {
	return s == RefundStatusAccepted || s == RefundStatusRejected
}

// CanTransition reports whether the refund may move from s to next.
// The only legal moves are Belum diproses -> {Diterima, Ditolak}, once.
func (s RefundStatus) CanTransition(next RefundStatus) bool {
	if s != RefundStatusPending {
		return false
	}
	return next == RefundStatusAccepted || next == RefundStatusRejected
}

// Refund snapshots the paid transaction at cancellation time. After the
// cancellation deletes the Reservation and Transaction rows, this is the
// only durable record of that booking's payment history.
type Refund struct {
	Id              uuid.UUID
	ReservationID   string
	TransactionID   string
	OrderID         string
	UserId          uuid.UUID
	PaymentType     string
	GrossAmount     string
	TransactionTime string
	Status          RefundStatus
	ProcessedAt     *time.Time
	CreatedAt       time.Time
}

// Decide applies an operator decision, enforcing the once-only rule.
func (r *Refund) Decide(decision RefundStatus, at time.Time) error {
	if !r.Status.CanTransition(decision) {
		return fmt.Errorf("refund already processed: status is %q", r.Status)
	}
	r.Status = decision
	r.ProcessedAt = &at
	return nil
}
