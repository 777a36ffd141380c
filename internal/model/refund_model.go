package model

import (
	"time"

	"github.com/google/uuid"
)

// Refund carries a snapshot of the transaction it was created from. The
// snapshot survives the deletion of the reservation and transaction rows.
type Refund struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReservationID   string    `gorm:"type:varchar(100);not null;index"`
	TransactionID   string    `gorm:"type:varchar(100);not null"`
	OrderID         string    `gorm:"type:varchar(100)"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	PaymentType     string    `gorm:"type:varchar(50)"`
	GrossAmount     string    `gorm:"type:varchar(20)"`
	TransactionTime string    `gorm:"type:varchar(30)"`
	Status          string    `gorm:"type:varchar(50);not null;default:'Belum diproses'"`
	ProcessedAt     *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserId"`
}

func (Refund) TableName() string {
	return "refunds"
}
