package model

import (
	"time"
)

// User roles and account status values
const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	AccountActive    = "active"
	AccountSuspended = "suspended"
)

// UserProfile represents an account in the earnings pipeline. The ID is
// the uid assigned by the external identity provider.
type UserProfile struct {
	ID                 string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	Email              string    `json:"email" gorm:"type:varchar(255)"`
	Role               string    `json:"role" gorm:"type:varchar(16);default:user"`
	Status             string    `json:"status" gorm:"type:varchar(16);default:active"`
	CustomCpmMicros    int64     `json:"custom_cpm_micros" gorm:"not null;default:0"`
	PaidEarningsMicros int64     `json:"paid_earnings_micros" gorm:"not null;default:0"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}

// IsAdmin reports whether the profile carries the admin role claim
func (u *UserProfile) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// BalanceAdjustment represents one signed manual ledger entry. Admin
// "add balance" appends a positive entry here instead of touching the
// payout-only paid_earnings accumulator.
type BalanceAdjustment struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       string    `json:"user_id" gorm:"type:varchar(64);index;not null"`
	AdminID      string    `json:"admin_id" gorm:"type:varchar(64)"`
	AmountMicros int64     `json:"amount_micros" gorm:"not null"`
	Reason       string    `json:"reason" gorm:"type:varchar(255)"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for BalanceAdjustment
func (BalanceAdjustment) TableName() string {
	return "balance_adjustments"
}

// BalanceResponse represents a user's derived available balance.
// The balance is never stored; it is recomputed from source-of-truth
// link counters on every request.
type BalanceResponse struct {
	UserID                  string  `json:"user_id"`
	GeneratedEarningsMicros int64   `json:"generated_earnings_micros"`
	PaidEarningsMicros      int64   `json:"paid_earnings_micros"`
	PendingPayoutMicros     int64   `json:"pending_payout_micros"`
	AdjustmentsMicros       int64   `json:"adjustments_micros"`
	AvailableMicros         int64   `json:"available_micros"`
	AvailableUSD            float64 `json:"available_usd"`
}
