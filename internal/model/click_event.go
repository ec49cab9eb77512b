package model

import (
	"time"
)

// Reason codes recorded on non-monetized click events
const (
	ReasonWithinWindow   = "visit within 30min window"
	ReasonNotMonetizable = "link not monetizable"
	ReasonSuspended      = "monetization suspended"
)

// ClickEvent represents one completed visit, monetized or not.
// Rows are append-only: they are the audit log reconciling against the
// mutable counters on the owning link.
type ClickEvent struct {
	ID                      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	LinkID                  int64     `json:"link_id" gorm:"index;not null"`
	OwnerID                 string    `json:"owner_id" gorm:"type:varchar(64);index;not null"`
	VisitorIP               string    `json:"visitor_ip" gorm:"type:varchar(64)"`
	UserAgent               string    `json:"user_agent" gorm:"type:varchar(512)"`
	CpmMicros               int64     `json:"cpm_micros" gorm:"not null;default:0"`
	EarningsGeneratedMicros int64     `json:"earnings_generated_micros" gorm:"not null;default:0"`
	Monetized               bool      `json:"monetized" gorm:"not null;default:false"`
	Reason                  string    `json:"reason,omitempty" gorm:"type:varchar(64)"`
	CreatedAt               time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName returns the table name for ClickEvent
func (ClickEvent) TableName() string {
	return "click_events"
}

// ClickResult describes the accounting outcome of one completed visit
type ClickResult struct {
	Monetized      bool
	CpmMicros      int64
	EarningsMicros int64
	Reason         string
}
