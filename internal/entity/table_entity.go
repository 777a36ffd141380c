package entity

import "github.com/google/uuid"

// DiningTable is a fixed inventory row. The reservation flow references
// tables but never mutates them.
type DiningTable struct {
	Id          uuid.UUID
	TableNumber string
	Capacity    int
	Location    string
}
