package model

import (
	"time"
)

// Payout request status values. Completed and rejected are terminal.
const (
	PayoutPending   = "pending"
	PayoutCompleted = "completed"
	PayoutRejected  = "rejected"
)

// PayoutRequest represents a user's request to withdraw earned balance
type PayoutRequest struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       string     `json:"user_id" gorm:"type:varchar(64);index;not null"`
	AmountMicros int64      `json:"amount_micros" gorm:"not null"`
	Method       string     `json:"method" gorm:"type:varchar(32);not null"`
	Destination  string     `json:"destination" gorm:"type:varchar(255);not null"`
	Status       string     `json:"status" gorm:"type:varchar(16);default:pending;index"`
	RequestedAt  time.Time  `json:"requested_at" gorm:"autoCreateTime"`
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
}

// TableName returns the table name for PayoutRequest
func (PayoutRequest) TableName() string {
	return "payout_requests"
}

// Pending reports whether the request is still actionable
func (p *PayoutRequest) Pending() bool {
	return p.Status == PayoutPending
}

// PayoutRequestInput represents the request body to open a payout
type PayoutRequestInput struct {
	UserID       string `json:"user_id" binding:"required"`
	AmountMicros int64  `json:"amount_micros" binding:"required,gt=0"`
	Method       string `json:"method" binding:"required"`
	Destination  string `json:"destination" binding:"required"`
}
