package service

import (
	"context"
	"errors"
	"time"

	"github.com/Staillim/YourSubLink-sub000/internal/model"

	"github.com/rs/zerolog/log"
)

// ErrInvalidRate is returned when a non-positive global rate is submitted
var ErrInvalidRate = errors.New("invalid CPM rate")

// RateResolver determines the effective per-mille rate for a monetizable
// click. Resolution happens at click time using the owner of the clicked
// link, because earnings accrue to the owner.
type RateResolver struct {
	mysqlRepo        MySQLRepositoryInterface
	defaultCpmMicros int64
	now              func() time.Time
}

// NewRateResolver creates a new RateResolver
func NewRateResolver(mysqlRepo MySQLRepositoryInterface, defaultCpmMicros int64) *RateResolver {
	if defaultCpmMicros <= 0 {
		defaultCpmMicros = model.DefaultCpmMicros
	}
	return &RateResolver{
		mysqlRepo:        mysqlRepo,
		defaultCpmMicros: defaultCpmMicros,
		now:              time.Now,
	}
}

// ResolveRate returns the effective CPM in micros for the given link owner.
// A positive custom override wins; otherwise the open global period; absence
// of configuration degrades to the default rather than failing.
func (r *RateResolver) ResolveRate(ctx context.Context, owner *model.UserProfile) int64 {
	if owner != nil && owner.CustomCpmMicros > 0 {
		return owner.CustomCpmMicros
	}

	period, err := r.mysqlRepo.ActiveCpmPeriod(ctx)
	if err == nil && period != nil {
		return period.RateMicros
	}
	if err != nil {
		log.Warn().Err(err).Msg("No active CPM period, falling back to default rate")
	}

	return r.defaultCpmMicros
}

// SetGlobalRate closes the open CPM period and opens a new one carrying
// the given rate
func (r *RateResolver) SetGlobalRate(ctx context.Context, rateMicros int64) (*model.CpmPeriod, error) {
	if rateMicros <= 0 {
		return nil, ErrInvalidRate
	}

	period, err := r.mysqlRepo.OpenCpmPeriod(ctx, rateMicros, r.now())
	if err != nil {
		return nil, err
	}

	log.Info().Int64("rate_micros", rateMicros).Msg("Global CPM rate updated")
	return period, nil
}
