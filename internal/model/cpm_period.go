package model

import (
	"time"
)

// DefaultCpmMicros is the fallback rate when no period is open and the
// owner has no custom override: $3.00 per 1000 monetized views.
const DefaultCpmMicros int64 = 3_000_000

// CpmPeriod represents one historical global CPM rate interval.
// The open period (null ended_at) is the currently active rate; at most
// one period is open at any time.
type CpmPeriod struct {
	ID         int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	RateMicros int64      `json:"rate_micros" gorm:"not null"`
	StartedAt  time.Time  `json:"started_at" gorm:"autoCreateTime"`
	EndedAt    *time.Time `json:"ended_at" gorm:"index"`
}

// TableName returns the table name for CpmPeriod
func (CpmPeriod) TableName() string {
	return "cpm_periods"
}

// Active reports whether this period carries the current global rate
func (p *CpmPeriod) Active() bool {
	return p.EndedAt == nil
}
