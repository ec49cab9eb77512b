package mq

import (
	"time"
)

// NotificationMessage represents a notification event emitted by the
// earnings pipeline
type NotificationMessage struct {
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
