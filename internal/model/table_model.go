package model

import "github.com/google/uuid"

type DiningTable struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TableNumber string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Capacity    int       `gorm:"not null"`
	Location    string    `gorm:"type:varchar(100)"`
}

func (DiningTable) TableName() string {
	return "dining_tables"
}
