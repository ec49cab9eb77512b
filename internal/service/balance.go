package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Staillim/YourSubLink-sub000/internal/model"
	"github.com/Staillim/YourSubLink-sub000/internal/mq"

	"github.com/rs/zerolog/log"
)

var (
	// ErrInsufficientBalance is returned when a payout exceeds the available balance
	ErrInsufficientBalance = errors.New("insufficient available balance")
	// ErrInvalidAdjustment is returned for a zero manual adjustment
	ErrInvalidAdjustment = errors.New("adjustment amount must be non-zero")
)

// BalanceService derives available balances and processes payouts. The
// available balance is never stored: it is recomputed from the per-link
// earnings counters on every call, so it cannot drift from its sources.
type BalanceService struct {
	mysqlRepo MySQLRepositoryInterface
	producer  mq.ProducerInterface
	now       func() time.Time
}

// NewBalanceService creates a new BalanceService
func NewBalanceService(mysqlRepo MySQLRepositoryInterface, producer mq.ProducerInterface) *BalanceService {
	return &BalanceService{
		mysqlRepo: mysqlRepo,
		producer:  producer,
		now:       time.Now,
	}
}

// AvailableBalance computes
//
//	sum(links.generated_earnings) - paid_earnings - sum(pending payouts) + sum(adjustments)
//
// for the given user. paid_earnings counts payouts only; manual admin
// corrections live in the signed adjustments ledger.
func (b *BalanceService) AvailableBalance(ctx context.Context, userID string) (*model.BalanceResponse, error) {
	user, err := b.mysqlRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}

	generated, err := b.mysqlRepo.SumGeneratedEarnings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum generated earnings: %w", err)
	}

	pending, err := b.mysqlRepo.SumPendingPayouts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum pending payouts: %w", err)
	}

	adjustments, err := b.mysqlRepo.SumAdjustments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum adjustments: %w", err)
	}

	available := generated - user.PaidEarningsMicros - pending + adjustments

	return &model.BalanceResponse{
		UserID:                  userID,
		GeneratedEarningsMicros: generated,
		PaidEarningsMicros:      user.PaidEarningsMicros,
		PendingPayoutMicros:     pending,
		AdjustmentsMicros:       adjustments,
		AvailableMicros:         available,
		AvailableUSD:            model.MicrosToUSD(available),
	}, nil
}

// RequestPayout opens a pending payout request after validating it against
// the derived available balance
func (b *BalanceService) RequestPayout(ctx context.Context, input *model.PayoutRequestInput) (*model.PayoutRequest, error) {
	balance, err := b.AvailableBalance(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if input.AmountMicros > balance.AvailableMicros {
		return nil, ErrInsufficientBalance
	}

	req := &model.PayoutRequest{
		UserID:       input.UserID,
		AmountMicros: input.AmountMicros,
		Method:       input.Method,
		Destination:  input.Destination,
		Status:       model.PayoutPending,
	}
	if err := b.mysqlRepo.SavePayoutRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to save payout request: %w", err)
	}

	return req, nil
}

// ApprovePayout completes a pending payout request. The status flip and the
// paid_earnings credit commit together; a request that already left pending
// is rejected, so a double approval can never double-credit.
func (b *BalanceService) ApprovePayout(ctx context.Context, payoutID int64) (*model.PayoutRequest, error) {
	req, err := b.mysqlRepo.ApprovePayout(ctx, payoutID, b.now())
	if err != nil {
		return nil, err
	}

	b.notify(ctx, req.UserID, model.NotifyPayoutCompleted, "Payout completed",
		fmt.Sprintf("Your payout of $%.2f has been processed.", model.MicrosToUSD(req.AmountMicros)))

	log.Info().
		Int64("payout_id", payoutID).
		Str("user_id", req.UserID).
		Int64("amount_micros", req.AmountMicros).
		Msg("Payout approved")

	return req, nil
}

// RejectPayout rejects a pending payout request. Terminal, no balance mutation.
func (b *BalanceService) RejectPayout(ctx context.Context, payoutID int64) (*model.PayoutRequest, error) {
	req, err := b.mysqlRepo.RejectPayout(ctx, payoutID, b.now())
	if err != nil {
		return nil, err
	}

	b.notify(ctx, req.UserID, model.NotifyPayoutRejected, "Payout rejected",
		fmt.Sprintf("Your payout request of $%.2f was rejected.", model.MicrosToUSD(req.AmountMicros)))

	return req, nil
}

// AddBalance appends a signed manual adjustment to the user's ledger. It
// raises the available balance without fabricating earnings that trace to
// no link, and without touching the payout-only paid_earnings accumulator.
func (b *BalanceService) AddBalance(ctx context.Context, userID, adminID string, amountMicros int64, reason string) (*model.BalanceAdjustment, error) {
	if amountMicros == 0 {
		return nil, ErrInvalidAdjustment
	}

	if _, err := b.mysqlRepo.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}

	adj := &model.BalanceAdjustment{
		UserID:       userID,
		AdminID:      adminID,
		AmountMicros: amountMicros,
		Reason:       reason,
	}
	if err := b.mysqlRepo.SaveAdjustment(ctx, adj); err != nil {
		return nil, fmt.Errorf("failed to save adjustment: %w", err)
	}

	b.notify(ctx, userID, model.NotifyBalanceAdjusted, "Balance adjusted",
		fmt.Sprintf("An adjustment of $%.2f was applied to your balance.", model.MicrosToUSD(amountMicros)))

	return adj, nil
}

// notify publishes a notification message; best effort
func (b *BalanceService) notify(ctx context.Context, userID, kind, title, body string) {
	if b.producer == nil {
		return
	}
	msg := &mq.NotificationMessage{
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: b.now(),
	}
	if err := b.producer.SendNotification(ctx, msg); err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("kind", kind).Msg("Failed to send notification")
	}
}
