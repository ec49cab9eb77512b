package service

import (
	"context"
	"time"

	"github.com/Staillim/YourSubLink-sub000/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations (for testing)
type MySQLRepositoryInterface interface {
	SaveLink(ctx context.Context, link *model.Link) error
	GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error)
	GetLinkByID(ctx context.Context, id int64) (*model.Link, error)
	CheckExistsByCode(ctx context.Context, shortCode string) (bool, error)
	SetMonetizationStatus(ctx context.Context, linkID int64, status string) error
	DeleteLink(ctx context.Context, linkID int64) error
	RecordClick(ctx context.Context, event *model.ClickEvent) error
	GetUser(ctx context.Context, userID string) (*model.UserProfile, error)
	SumGeneratedEarnings(ctx context.Context, ownerID string) (int64, error)
	SumPendingPayouts(ctx context.Context, userID string) (int64, error)
	SumAdjustments(ctx context.Context, userID string) (int64, error)
	SavePayoutRequest(ctx context.Context, req *model.PayoutRequest) error
	GetPayoutRequest(ctx context.Context, id int64) (*model.PayoutRequest, error)
	ApprovePayout(ctx context.Context, id int64, processedAt time.Time) (*model.PayoutRequest, error)
	RejectPayout(ctx context.Context, id int64, processedAt time.Time) (*model.PayoutRequest, error)
	SaveAdjustment(ctx context.Context, adj *model.BalanceAdjustment) error
	ActiveCpmPeriod(ctx context.Context) (*model.CpmPeriod, error)
	OpenCpmPeriod(ctx context.Context, rateMicros int64, now time.Time) (*model.CpmPeriod, error)
	CountLiveSponsors(ctx context.Context, linkID int64, now time.Time) (int64, error)
	CreateSponsorRule(ctx context.Context, sponsor *model.SponsorRule, now time.Time) error
	IncrementSponsorViews(ctx context.Context, sponsorID int64) error
	IncrementSponsorClicks(ctx context.Context, sponsorID int64) error
	SaveNotification(ctx context.Context, n *model.Notification) error
	GetClickEvents(ctx context.Context, linkID int64, limit int) ([]model.ClickEvent, error)
}

// RedisRepositoryInterface defines the interface for Redis operations (for testing)
type RedisRepositoryInterface interface {
	ConsumeVisit(ctx context.Context, ip string, cookieMillis, nowMillis, windowMillis int64) (bool, error)
	LastVisit(ctx context.Context, ip string) (int64, error)
	SaveGateSession(ctx context.Context, sess *model.GateSession, ttl time.Duration) error
	GetGateSession(ctx context.Context, sessionID string) (*model.GateSession, error)
	DeleteGateSession(ctx context.Context, sessionID string) error
}

// LinkServiceInterface defines the interface for link operations
type LinkServiceInterface interface {
	Create(ctx context.Context, req *model.CreateLinkRequest) (*model.CreateLinkResponse, error)
	GetByCode(ctx context.Context, shortCode string) (*model.Link, error)
	Suspend(ctx context.Context, linkID int64) error
	Activate(ctx context.Context, linkID int64) error
	Delete(ctx context.Context, linkID int64) error
	Events(ctx context.Context, shortCode string, limit int) ([]model.ClickEvent, error)
}

// RateResolverInterface defines the interface for CPM rate resolution
type RateResolverInterface interface {
	ResolveRate(ctx context.Context, owner *model.UserProfile) int64
	SetGlobalRate(ctx context.Context, rateMicros int64) (*model.CpmPeriod, error)
}

// AbuseWindowGuardInterface defines the interface for the monetization window guard
type AbuseWindowGuardInterface interface {
	Consume(ctx context.Context, visitorIP string, cookieMillis int64) bool
}

// ClickRecorderInterface defines the interface for the click recording transaction
type ClickRecorderInterface interface {
	Record(ctx context.Context, link *model.Link, visitorIP, userAgent string, cookieMillis int64) (*model.ClickResult, error)
}

// GateServiceInterface defines the interface for the gate state machine
type GateServiceInterface interface {
	StartSession(ctx context.Context, link *model.Link, visitorIP, userAgent string, cookieMillis int64) (*model.GateSession, error)
	StartItem(ctx context.Context, sessionID, kind string, itemID int64) (*model.GateSession, error)
	CompleteItem(ctx context.Context, sessionID, kind string, itemID int64) (*model.GateSession, error)
	Finish(ctx context.Context, sessionID string) (*model.GateFinishResponse, error)
}

// BalanceServiceInterface defines the interface for balance and payout operations
type BalanceServiceInterface interface {
	AvailableBalance(ctx context.Context, userID string) (*model.BalanceResponse, error)
	RequestPayout(ctx context.Context, input *model.PayoutRequestInput) (*model.PayoutRequest, error)
	ApprovePayout(ctx context.Context, payoutID int64) (*model.PayoutRequest, error)
	RejectPayout(ctx context.Context, payoutID int64) (*model.PayoutRequest, error)
	AddBalance(ctx context.Context, userID, adminID string, amountMicros int64, reason string) (*model.BalanceAdjustment, error)
}

// SponsorServiceInterface defines the interface for sponsor placement operations
type SponsorServiceInterface interface {
	ActiveSponsors(sponsors []model.SponsorRule) []model.SponsorRule
	CanAddSponsor(ctx context.Context, linkID int64) (bool, error)
	CreateSponsor(ctx context.Context, linkID int64, req *model.CreateSponsorRequest) (*model.SponsorRule, error)
}

// IPLookupInterface defines the interface for the external IP lookup client
type IPLookupInterface interface {
	Lookup(ctx context.Context) (string, error)
}
