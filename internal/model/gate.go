package model

import (
	"time"
)

// Gate item states. Items only move forward: pending -> loading -> completed.
const (
	GateItemPending   = "pending"
	GateItemLoading   = "loading"
	GateItemCompleted = "completed"
)

// Gate item kinds
const (
	GateItemRule    = "rule"
	GateItemSponsor = "sponsor"
)

// Gate steps
const (
	GateStepRules     = "rules"
	GateStepCountdown = "countdown"
)

// GateItem is one action the visitor must complete before the redirect
type GateItem struct {
	ID          int64      `json:"id"`
	Kind        string     `json:"kind"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	State       string     `json:"state"`
	Lapsed      bool       `json:"lapsed,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether a sponsor item's expiration passed mid-session
func (i *GateItem) Expired(now time.Time) bool {
	return i.Kind == GateItemSponsor && i.ExpiresAt != nil && now.After(*i.ExpiresAt)
}

// GateSession is the per-visit state threaded between the resolve and
// redirect phases of one visitor flow. It lives in Redis with a short TTL;
// there is no shared global state between phases.
type GateSession struct {
	ID                 string     `json:"id"`
	LinkID             int64      `json:"link_id"`
	ShortCode          string     `json:"short_code"`
	DestinationURL     string     `json:"destination_url"`
	VisitorIP          string     `json:"visitor_ip"`
	UserAgent          string     `json:"user_agent"`
	CookieMillis       int64      `json:"cookie_millis"`
	Step               string     `json:"step"`
	StartedAt          time.Time  `json:"started_at"`
	CountdownStartedAt *time.Time `json:"countdown_started_at,omitempty"`
	Items              []GateItem `json:"items"`
}

// Item returns a pointer to the session item with the given kind and id
func (s *GateSession) Item(kind string, id int64) *GateItem {
	for i := range s.Items {
		if s.Items[i].Kind == kind && s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// Ready reports whether every required item is completed: all rules, plus
// every sponsor that is still live. Sponsors that expired or lapsed
// mid-session are excluded from the requirement.
func (s *GateSession) Ready(now time.Time) bool {
	for i := range s.Items {
		item := &s.Items[i]
		if item.Kind == GateItemSponsor && (item.Lapsed || item.Expired(now)) {
			continue
		}
		if item.State != GateItemCompleted {
			return false
		}
	}
	return true
}

// GateResponse is the payload returned when a visit resolves to a gated link
type GateResponse struct {
	SessionID        string     `json:"session_id"`
	ShortCode        string     `json:"short_code"`
	Step             string     `json:"step"`
	CountdownSeconds int        `json:"countdown_seconds"`
	Items            []GateItem `json:"items"`
}

// GateFinishResponse is the payload returned when a gate finishes. The
// destination is always present: accounting failures never block the visitor.
type GateFinishResponse struct {
	Destination string `json:"destination"`
	Monetized   bool   `json:"monetized"`
}
