package dto

import "github.com/google/uuid"

type CreateTableRequest struct {
	TableNumber string `json:"table_number" validate:"required"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	Location    string `json:"location" validate:"omitempty,max=100"`
}

type TableResponse struct {
	Id          uuid.UUID `json:"id"`
	TableNumber string    `json:"table_number"`
	Capacity    int       `json:"capacity"`
	Location    string    `json:"location,omitempty"`
}
