package model

import (
	"time"
)

// MaxActiveSponsorsPerLink caps simultaneously live sponsor placements
const MaxActiveSponsorsPerLink = 3

// SponsorRule represents a paid-placement gate action with its own
// expiration and usage counters
type SponsorRule struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	LinkID    int64      `json:"link_id" gorm:"index;not null"`
	Title     string     `json:"title" gorm:"type:varchar(255);not null"`
	URL       string     `json:"url" gorm:"type:varchar(2048);not null"`
	IsActive  bool       `json:"is_active" gorm:"not null;default:true"`
	Views     int64      `json:"views" gorm:"not null;default:0"`
	Clicks    int64      `json:"clicks" gorm:"not null;default:0"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" gorm:"index"`
}

// TableName returns the table name for SponsorRule
func (SponsorRule) TableName() string {
	return "sponsor_rules"
}

// Expired reports whether the placement has passed its expiration
func (s *SponsorRule) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}

// Live reports whether the placement currently gates visits: active and
// not expired
func (s *SponsorRule) Live(now time.Time) bool {
	return s.IsActive && !s.Expired(now)
}

// CreateSponsorRequest represents the request to attach a sponsor to a link
type CreateSponsorRequest struct {
	Title     string     `json:"title" binding:"required"`
	URL       string     `json:"url" binding:"required,url"`
	ExpiresAt *time.Time `json:"expires_at"`
}
