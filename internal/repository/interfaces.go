package repository

import (
	"context"
	"time"

	"github.com/Staillim/YourSubLink-sub000/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations
type MySQLRepositoryInterface interface {
	GetDB() interface{}
	SaveLink(ctx context.Context, link *model.Link) error
	GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error)
	GetLinkByID(ctx context.Context, id int64) (*model.Link, error)
	CheckExistsByCode(ctx context.Context, shortCode string) (bool, error)
	SetMonetizationStatus(ctx context.Context, linkID int64, status string) error
	DeleteLink(ctx context.Context, linkID int64) error
	RecordClick(ctx context.Context, event *model.ClickEvent) error
	GetUser(ctx context.Context, userID string) (*model.UserProfile, error)
	SaveUser(ctx context.Context, user *model.UserProfile) error
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
	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	GetClient() interface{}
	ConsumeVisit(ctx context.Context, ip string, cookieMillis, nowMillis, windowMillis int64) (bool, error)
	LastVisit(ctx context.Context, ip string) (int64, error)
	SaveGateSession(ctx context.Context, sess *model.GateSession, ttl time.Duration) error
	GetGateSession(ctx context.Context, sessionID string) (*model.GateSession, error)
	DeleteGateSession(ctx context.Context, sessionID string) error
	Close() error
}
