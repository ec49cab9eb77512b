package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// AbuseWindowGuard decides whether a view may monetize: at most one
// monetized view per visitor identity per window. The server-side per-IP
// record and the client cookie are reconciled by taking the most recent of
// the two, erring toward under-monetizing.
type AbuseWindowGuard struct {
	redisRepo RedisRepositoryInterface
	window    time.Duration
	now       func() time.Time
}

// NewAbuseWindowGuard creates a new AbuseWindowGuard
func NewAbuseWindowGuard(redisRepo RedisRepositoryInterface, window time.Duration) *AbuseWindowGuard {
	return &AbuseWindowGuard{
		redisRepo: redisRepo,
		window:    window,
		now:       time.Now,
	}
}

// Consume reports whether the visit may monetize and, when it may, consumes
// the window in the same atomic operation. A visit that does not qualify
// never resets the window.
//
// The guard fails open: an undeterminable IP or an unreachable Redis must
// not block the redirect path, so both degrade to "monetizable".
func (g *AbuseWindowGuard) Consume(ctx context.Context, visitorIP string, cookieMillis int64) bool {
	if visitorIP == "" {
		log.Warn().Msg("Visitor IP undetermined, monetization window check skipped")
		return true
	}

	allowed, err := g.redisRepo.ConsumeVisit(ctx, visitorIP, cookieMillis,
		g.now().UnixMilli(), g.window.Milliseconds())
	if err != nil {
		log.Error().Err(err).Str("visitor_ip", visitorIP).Msg("Window consume failed, failing open")
		return true
	}

	return allowed
}
