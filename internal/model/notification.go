package model

import (
	"time"
)

// Notification kinds emitted by the earnings pipeline
const (
	NotifyPayoutCompleted = "payout_completed"
	NotifyPayoutRejected  = "payout_rejected"
	NotifyLinkSuspended   = "link_suspended"
	NotifyLinkDeleted     = "link_deleted"
	NotifyBalanceAdjusted = "balance_adjusted"
)

// Notification represents one persisted notification row. Formatting and
// display are owned by the surrounding application.
type Notification struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:varchar(64);index;not null"`
	Kind      string    `json:"kind" gorm:"type:varchar(32);not null"`
	Title     string    `json:"title" gorm:"type:varchar(255)"`
	Body      string    `json:"body" gorm:"type:varchar(1024)"`
	Read      bool      `json:"read" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
