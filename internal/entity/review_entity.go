package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)

type Review struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time

	// Author identity, populated by joined reads only.
	AuthorName string
}
