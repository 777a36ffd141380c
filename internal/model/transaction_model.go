package model

import "time"

type Transaction struct {
	TransactionID     string    `gorm:"type:varchar(100);primaryKey"`
	OrderID           string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	ReservationID     string    `gorm:"type:varchar(100);index"`
	TransactionStatus string    `gorm:"type:varchar(50)"`
	PaymentType       string    `gorm:"type:varchar(50)"`
	GrossAmount       string    `gorm:"type:varchar(20)"`
	TransactionTime   string    `gorm:"type:varchar(30)"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}
