package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationStatus string

const (
	NotificationStatusUnread NotificationStatus = "unread"
	NotificationStatusRead   NotificationStatus = "read"
)

// Notification is an append-only per-user feed entry. There is no
// delivery guarantee beyond the stored row.
type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Message   string
	Status    NotificationStatus
	Metadata  map[string]interface{}
	CreatedAt time.Time
}
