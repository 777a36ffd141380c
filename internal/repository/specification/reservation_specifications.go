package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySlot filters reservations occupying one (table, date, time) slot.
type BySlot struct {
	TableID uuid.UUID
	Date    string
	Time    string
}

func (s BySlot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("table_id = ? AND reservation_date = ? AND reservation_time = ?",
		s.TableID, s.Date, s.Time)
}

// ByReservationID filters child tables by reservation_id.
type ByReservationID struct {
	ReservationID string
}

func (s ByReservationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reservation_id = ?", s.ReservationID)
}

// ByTransactionID filters transactions by their gateway-issued key.
type ByTransactionID struct {
	TransactionID string
}

func (s ByTransactionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("transaction_id = ?", s.TransactionID)
}

// ByOrderID filters transactions by order_id.
type ByOrderID struct {
	OrderID string
}

func (s ByOrderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_id = ?", s.OrderID)
}
