package model

import (
	"time"

	"github.com/google/uuid"
)

// Reservation keys the composite unique index on the slot so a second
// booking for the same (table, date, time) fails at insert instead of
// racing past the advisory availability check.
type Reservation struct {
	Id              string    `gorm:"type:varchar(100);primaryKey"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	TableId         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reservations_slot,priority:1"`
	ReservationDate string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_reservations_slot,priority:2"`
	ReservationTime string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_reservations_slot,priority:3"`
	GuestCount      int       `gorm:"not null;default:1"`
	TransactionID   *string   `gorm:"type:varchar(100)"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`

	Table DiningTable `gorm:"foreignKey:TableId"`
	User  User        `gorm:"foreignKey:UserId"`
}

func (Reservation) TableName() string {
	return "reservations"
}
