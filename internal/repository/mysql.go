package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Staillim/YourSubLink-sub000/internal/config"
	"github.com/Staillim/YourSubLink-sub000/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	// ErrPayoutNotPending is returned when a processed payout request is acted on again
	ErrPayoutNotPending = errors.New("payout request is not pending")
	// ErrSponsorLimitReached is returned when a link already carries the maximum live sponsors
	ErrSponsorLimitReached = errors.New("sponsor limit reached for link")
)

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(
		&model.Link{},
		&model.Rule{},
		&model.SponsorRule{},
		&model.ClickEvent{},
		&model.CpmPeriod{},
		&model.UserProfile{},
		&model.PayoutRequest{},
		&model.BalanceAdjustment{},
		&model.Notification{},
	); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// SaveLink saves a link together with its rules
func (r *MySQLRepository) SaveLink(ctx context.Context, link *model.Link) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// GetLinkByCode retrieves a link by short code with its rules and sponsors
func (r *MySQLRepository) GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).
		Preload("Rules", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("SponsorRules").
		Where("short_code = ?", shortCode).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetLinkByID retrieves a link by primary key with its rules and sponsors
func (r *MySQLRepository) GetLinkByID(ctx context.Context, id int64) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).
		Preload("Rules").
		Preload("SponsorRules").
		First(&link, id).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// CheckExistsByCode checks if a short code exists
func (r *MySQLRepository) CheckExistsByCode(ctx context.Context, shortCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("short_code = ?", shortCode).
		Count(&count).Error
	return count > 0, err
}

// SetMonetizationStatus updates the monetization status of a link
func (r *MySQLRepository) SetMonetizationStatus(ctx context.Context, linkID int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("id = ?", linkID).
		Update("monetization_status", status).Error
}

// DeleteLink soft-deletes a link (admin action)
func (r *MySQLRepository) DeleteLink(ctx context.Context, linkID int64) error {
	return r.db.WithContext(ctx).Delete(&model.Link{}, linkID).Error
}

// RecordClick commits one completed visit atomically: the click counter
// always moves by one, earnings move only when the event is monetized, and
// exactly one immutable click event row is written. Partial application of
// these steps is the correctness bug this transaction exists to prevent.
func (r *MySQLRepository) RecordClick(ctx context.Context, event *model.ClickEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"clicks": gorm.Expr("clicks + ?", 1),
		}
		if event.Monetized {
			updates["generated_earnings_micros"] = gorm.Expr("generated_earnings_micros + ?", event.EarningsGeneratedMicros)
		}

		if err := tx.Model(&model.Link{}).
			Where("id = ?", event.LinkID).
			Updates(updates).Error; err != nil {
			return err
		}

		return tx.Create(event).Error
	})
}

// GetUser retrieves a user profile by id
func (r *MySQLRepository) GetUser(ctx context.Context, userID string) (*model.UserProfile, error) {
	var user model.UserProfile
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveUser saves a user profile
func (r *MySQLRepository) SaveUser(ctx context.Context, user *model.UserProfile) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// SumGeneratedEarnings sums earnings accrued across a user's links.
// The per-link counters are the source of truth for the derived balance.
func (r *MySQLRepository) SumGeneratedEarnings(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(generated_earnings_micros), 0)").
		Scan(&total).Error
	return total, err
}

// SumPendingPayouts sums the amounts of a user's pending payout requests
func (r *MySQLRepository) SumPendingPayouts(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.PayoutRequest{}).
		Where("user_id = ? AND status = ?", userID, model.PayoutPending).
		Select("COALESCE(SUM(amount_micros), 0)").
		Scan(&total).Error
	return total, err
}

// SumAdjustments sums a user's signed manual ledger entries
func (r *MySQLRepository) SumAdjustments(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.BalanceAdjustment{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount_micros), 0)").
		Scan(&total).Error
	return total, err
}

// SavePayoutRequest saves a payout request
func (r *MySQLRepository) SavePayoutRequest(ctx context.Context, req *model.PayoutRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// GetPayoutRequest retrieves a payout request by id
func (r *MySQLRepository) GetPayoutRequest(ctx context.Context, id int64) (*model.PayoutRequest, error) {
	var req model.PayoutRequest
	err := r.db.WithContext(ctx).First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ApprovePayout completes a payout request atomically: the row is locked,
// only a pending request is actionable, and the owner's paid_earnings moves
// by exactly the requested amount in the same transaction. A concurrent
// second approval fails with ErrPayoutNotPending.
func (r *MySQLRepository) ApprovePayout(ctx context.Context, id int64, processedAt time.Time) (*model.PayoutRequest, error) {
	var req model.PayoutRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, id).Error; err != nil {
			return err
		}
		if !req.Pending() {
			return ErrPayoutNotPending
		}

		if err := tx.Model(&model.PayoutRequest{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":       model.PayoutCompleted,
				"processed_at": processedAt,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.UserProfile{}).
			Where("id = ?", req.UserID).
			Update("paid_earnings_micros", gorm.Expr("paid_earnings_micros + ?", req.AmountMicros)).Error; err != nil {
			return err
		}

		req.Status = model.PayoutCompleted
		req.ProcessedAt = &processedAt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// RejectPayout rejects a payout request. No balance mutation: the pending
// amount simply stops being reserved.
func (r *MySQLRepository) RejectPayout(ctx context.Context, id int64, processedAt time.Time) (*model.PayoutRequest, error) {
	var req model.PayoutRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, id).Error; err != nil {
			return err
		}
		if !req.Pending() {
			return ErrPayoutNotPending
		}

		if err := tx.Model(&model.PayoutRequest{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":       model.PayoutRejected,
				"processed_at": processedAt,
			}).Error; err != nil {
			return err
		}

		req.Status = model.PayoutRejected
		req.ProcessedAt = &processedAt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// SaveAdjustment appends a signed manual ledger entry
func (r *MySQLRepository) SaveAdjustment(ctx context.Context, adj *model.BalanceAdjustment) error {
	return r.db.WithContext(ctx).Create(adj).Error
}

// ActiveCpmPeriod returns the open CPM period, if any
func (r *MySQLRepository) ActiveCpmPeriod(ctx context.Context) (*model.CpmPeriod, error) {
	var period model.CpmPeriod
	err := r.db.WithContext(ctx).
		Where("ended_at IS NULL").
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// OpenCpmPeriod closes the open period and opens a new one in a single
// transaction, so at most one period is ever open.
func (r *MySQLRepository) OpenCpmPeriod(ctx context.Context, rateMicros int64, now time.Time) (*model.CpmPeriod, error) {
	period := &model.CpmPeriod{RateMicros: rateMicros, StartedAt: now}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.CpmPeriod{}).
			Where("ended_at IS NULL").
			Update("ended_at", now).Error; err != nil {
			return err
		}
		return tx.Create(period).Error
	})
	if err != nil {
		return nil, err
	}
	return period, nil
}

// CountLiveSponsors counts active, non-expired sponsor rules on a link
func (r *MySQLRepository) CountLiveSponsors(ctx context.Context, linkID int64, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SponsorRule{}).
		Where("link_id = ? AND is_active = ? AND (expires_at IS NULL OR expires_at > ?)", linkID, true, now).
		Count(&count).Error
	return count, err
}

// CreateSponsorRule inserts a sponsor rule, enforcing the per-link cap
// inside the transaction rather than as a separate check-then-act.
func (r *MySQLRepository) CreateSponsorRule(ctx context.Context, sponsor *model.SponsorRule, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.SponsorRule{}).
			Where("link_id = ? AND is_active = ? AND (expires_at IS NULL OR expires_at > ?)", sponsor.LinkID, true, now).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= model.MaxActiveSponsorsPerLink {
			return ErrSponsorLimitReached
		}
		return tx.Create(sponsor).Error
	})
}

// IncrementSponsorViews bumps a sponsor's view counter
func (r *MySQLRepository) IncrementSponsorViews(ctx context.Context, sponsorID int64) error {
	return r.db.WithContext(ctx).
		Model(&model.SponsorRule{}).
		Where("id = ?", sponsorID).
		Update("views", gorm.Expr("views + ?", 1)).Error
}

// IncrementSponsorClicks bumps a sponsor's click counter
func (r *MySQLRepository) IncrementSponsorClicks(ctx context.Context, sponsorID int64) error {
	return r.db.WithContext(ctx).
		Model(&model.SponsorRule{}).
		Where("id = ?", sponsorID).
		Update("clicks", gorm.Expr("clicks + ?", 1)).Error
}

// SaveNotification persists a notification row
func (r *MySQLRepository) SaveNotification(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// GetClickEvents retrieves click events for a link, newest first
func (r *MySQLRepository) GetClickEvents(ctx context.Context, linkID int64, limit int) ([]model.ClickEvent, error) {
	var events []model.ClickEvent
	query := r.db.WithContext(ctx).
		Where("link_id = ?", linkID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&events).Error
	return events, err
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
