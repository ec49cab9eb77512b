package service

import (
	"context"

	"github.com/Staillim/YourSubLink-sub000/internal/model"

	"github.com/rs/zerolog/log"
)

// ClickRecorder performs the atomic click/earnings write for a completed
// visit. Callers on the visitor path swallow its errors: the redirect is
// guaranteed regardless of accounting outcome.
type ClickRecorder struct {
	mysqlRepo MySQLRepositoryInterface
	guard     AbuseWindowGuardInterface
	rate      RateResolverInterface
}

// NewClickRecorder creates a new ClickRecorder
func NewClickRecorder(mysqlRepo MySQLRepositoryInterface, guard AbuseWindowGuardInterface, rate RateResolverInterface) *ClickRecorder {
	return &ClickRecorder{
		mysqlRepo: mysqlRepo,
		guard:     guard,
		rate:      rate,
	}
}

// Record counts one completed visit. The click counter always moves;
// earnings accrue only when the link is eligible and the visitor is outside
// the monetization window. Exactly one immutable click event is written
// either way, in the same transaction as the counter updates.
func (c *ClickRecorder) Record(ctx context.Context, link *model.Link, visitorIP, userAgent string, cookieMillis int64) (*model.ClickResult, error) {
	result := c.evaluate(ctx, link, visitorIP, cookieMillis)

	event := &model.ClickEvent{
		LinkID:                  link.ID,
		OwnerID:                 link.OwnerID,
		VisitorIP:               visitorIP,
		UserAgent:               userAgent,
		CpmMicros:               result.CpmMicros,
		EarningsGeneratedMicros: result.EarningsMicros,
		Monetized:               result.Monetized,
		Reason:                  result.Reason,
	}

	if err := c.mysqlRepo.RecordClick(ctx, event); err != nil {
		log.Error().Err(err).
			Int64("link_id", link.ID).
			Str("short_code", link.ShortCode).
			Msg("Failed to record click")
		return result, err
	}

	log.Debug().
		Int64("link_id", link.ID).
		Bool("monetized", result.Monetized).
		Int64("earnings_micros", result.EarningsMicros).
		Msg("Click recorded")

	return result, nil
}

// evaluate decides monetization eligibility for this visit. The window is
// consumed only after the cheaper link checks pass, so an ineligible link
// never burns the visitor's window.
func (c *ClickRecorder) evaluate(ctx context.Context, link *model.Link, visitorIP string, cookieMillis int64) *model.ClickResult {
	if !link.Monetizable() {
		return &model.ClickResult{Reason: model.ReasonNotMonetizable}
	}
	if link.Suspended() {
		return &model.ClickResult{Reason: model.ReasonSuspended}
	}
	if !c.guard.Consume(ctx, visitorIP, cookieMillis) {
		return &model.ClickResult{Reason: model.ReasonWithinWindow}
	}

	owner, err := c.mysqlRepo.GetUser(ctx, link.OwnerID)
	if err != nil {
		// Missing profile degrades to the global/default rate
		owner = nil
	}

	rate := c.rate.ResolveRate(ctx, owner)
	return &model.ClickResult{
		Monetized:      true,
		CpmMicros:      rate,
		EarningsMicros: rate / 1000,
	}
}
