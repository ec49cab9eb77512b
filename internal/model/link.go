package model

import (
	"time"

	"gorm.io/gorm"
)

// Monetization status values for a link
const (
	MonetizationActive    = "active"
	MonetizationSuspended = "suspended"
)

// MinRulesForMonetization is the rule count required before a link earns
const MinRulesForMonetization = 3

// Link represents a shortened, gated link entity
type Link struct {
	ID                      int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID                 string         `json:"owner_id" gorm:"type:varchar(64);index;not null"`
	ShortCode               string         `json:"short_code" gorm:"type:varchar(8);uniqueIndex;not null"`
	OriginalURL             string         `json:"original_url" gorm:"type:varchar(2048);not null"`
	Title                   string         `json:"title" gorm:"type:varchar(255)"`
	Description             string         `json:"description" gorm:"type:varchar(1024)"`
	MonetizationStatus      string         `json:"monetization_status" gorm:"type:varchar(16);default:active"`
	Clicks                  int64          `json:"clicks" gorm:"not null;default:0"`
	GeneratedEarningsMicros int64          `json:"generated_earnings_micros" gorm:"not null;default:0"`
	Rules                   []Rule         `json:"rules" gorm:"foreignKey:LinkID"`
	SponsorRules            []SponsorRule  `json:"sponsor_rules,omitempty" gorm:"foreignKey:LinkID"`
	CreatedAt               time.Time      `json:"created_at" gorm:"autoCreateTime"`
	DeletedAt               gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// Monetizable reports whether the link qualifies for earnings at all.
// Derived, never stored: a link monetizes only with at least 3 rules.
func (l *Link) Monetizable() bool {
	return len(l.Rules) >= MinRulesForMonetization
}

// Suspended reports whether monetization has been suspended by an admin
func (l *Link) Suspended() bool {
	return l.MonetizationStatus == MonetizationSuspended
}

// Rule represents one mandatory gate action defined by the link owner
type Rule struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	LinkID    int64     `json:"link_id" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null"`
	URL       string    `json:"url" gorm:"type:varchar(2048);not null"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for Rule
func (Rule) TableName() string {
	return "rules"
}

// CreateLinkRequest represents the request to create a gated link
type CreateLinkRequest struct {
	OwnerID     string           `json:"owner_id" binding:"required"`
	URL         string           `json:"url" binding:"required,url"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Rules       []CreateLinkRule `json:"rules"`
}

// CreateLinkRule is one rule in a link-creation request
type CreateLinkRule struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
}

// CreateLinkResponse represents the response of link creation
type CreateLinkResponse struct {
	ShortLink   string `json:"short_link"`
	ShortCode   string `json:"short_code"`
	OriginalURL string `json:"original_url"`
	Monetizable bool   `json:"monetizable"`
}

// MicrosToUSD converts a micro-dollar amount to a display value
func MicrosToUSD(micros int64) float64 {
	return float64(micros) / 1e6
}
