package service

import (
	"context"
	"errors"
	"time"

	"github.com/Staillim/YourSubLink-sub000/internal/config"
	"github.com/Staillim/YourSubLink-sub000/internal/model"
	"github.com/Staillim/YourSubLink-sub000/pkg/util"

	"github.com/rs/zerolog/log"
)

var (
	// ErrGateSessionNotFound is returned when a session id resolves to nothing
	ErrGateSessionNotFound = errors.New("gate session not found")
	// ErrGateItemNotFound is returned when an item id is not part of the session
	ErrGateItemNotFound = errors.New("gate item not found")
	// ErrItemNotPending is returned when starting an item that already left pending
	ErrItemNotPending = errors.New("gate item already started")
	// ErrItemNotLoading is returned when completing an item that is not loading
	ErrItemNotLoading = errors.New("gate item is not loading")
	// ErrDwellNotElapsed is returned when an item completes before its dwell time
	ErrDwellNotElapsed = errors.New("gate item dwell time not elapsed")
	// ErrGateNotReady is returned when finishing a gate with required items open
	ErrGateNotReady = errors.New("gate has uncompleted items")
	// ErrCountdownRunning is returned when finishing before the countdown elapsed
	ErrCountdownRunning = errors.New("gate countdown still running")
)

// GateService runs the per-visit gate state machine. Session state lives in
// Redis and is threaded between the resolve and redirect phases explicitly;
// every timing rule is validated server-side against session timestamps.
type GateService struct {
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
	recorder  ClickRecorderInterface
	sponsors  SponsorServiceInterface

	itemDwell   time.Duration
	countdown   time.Duration
	minDuration time.Duration
	sessionTTL  time.Duration

	now func() time.Time
}

// NewGateService creates a new GateService
func NewGateService(
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	recorder ClickRecorderInterface,
	sponsors SponsorServiceInterface,
	cfg *config.GateConfig,
) *GateService {
	return &GateService{
		mysqlRepo:   mysqlRepo,
		redisRepo:   redisRepo,
		recorder:    recorder,
		sponsors:    sponsors,
		itemDwell:   cfg.ItemDwell,
		countdown:   cfg.Countdown,
		minDuration: cfg.MinDuration,
		sessionTTL:  cfg.SessionTTL,
		now:         time.Now,
	}
}

// CountdownSeconds returns the visible countdown length for gate payloads
func (g *GateService) CountdownSeconds() int {
	return int(g.countdown / time.Second)
}

// StartSession opens a gate session for a link that carries rules. The
// item set is the link's rules plus the sponsors live at session start.
func (g *GateService) StartSession(ctx context.Context, link *model.Link, visitorIP, userAgent string, cookieMillis int64) (*model.GateSession, error) {
	now := g.now()

	items := make([]model.GateItem, 0, len(link.Rules)+len(link.SponsorRules))
	for _, rule := range link.Rules {
		items = append(items, model.GateItem{
			ID:    rule.ID,
			Kind:  model.GateItemRule,
			Title: rule.Title,
			URL:   rule.URL,
			State: model.GateItemPending,
		})
	}
	for _, sponsor := range g.sponsors.ActiveSponsors(link.SponsorRules) {
		items = append(items, model.GateItem{
			ID:        sponsor.ID,
			Kind:      model.GateItemSponsor,
			Title:     sponsor.Title,
			URL:       sponsor.URL,
			State:     model.GateItemPending,
			ExpiresAt: sponsor.ExpiresAt,
		})

		// Sponsor was shown to the visitor; best effort
		if err := g.mysqlRepo.IncrementSponsorViews(ctx, sponsor.ID); err != nil {
			log.Error().Err(err).Int64("sponsor_id", sponsor.ID).Msg("Failed to increment sponsor views")
		}
	}

	sess := &model.GateSession{
		ID:             util.GenerateUUID(),
		LinkID:         link.ID,
		ShortCode:      link.ShortCode,
		DestinationURL: link.OriginalURL,
		VisitorIP:      visitorIP,
		UserAgent:      userAgent,
		CookieMillis:   cookieMillis,
		Step:           model.GateStepRules,
		StartedAt:      now,
		Items:          items,
	}

	if err := g.redisRepo.SaveGateSession(ctx, sess, g.sessionTTL); err != nil {
		return nil, err
	}

	return sess, nil
}

// StartItem moves an item from pending to loading. Once loading, the item
// is locked: there is no way back to pending.
func (g *GateService) StartItem(ctx context.Context, sessionID, kind string, itemID int64) (*model.GateSession, error) {
	sess, err := g.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item := sess.Item(kind, itemID)
	if item == nil {
		return nil, ErrGateItemNotFound
	}
	if item.State != model.GateItemPending {
		return nil, ErrItemNotPending
	}

	now := g.now()
	item.State = model.GateItemLoading
	item.StartedAt = &now

	if item.Kind == model.GateItemSponsor {
		if err := g.mysqlRepo.IncrementSponsorClicks(ctx, item.ID); err != nil {
			log.Error().Err(err).Int64("sponsor_id", item.ID).Msg("Failed to increment sponsor clicks")
		}
	}

	if err := g.redisRepo.SaveGateSession(ctx, sess, g.sessionTTL); err != nil {
		return nil, err
	}
	return sess, nil
}

// CompleteItem moves an item from loading to completed once the dwell time
// has elapsed. The dwell is checked here, server-side, against the loading
// timestamp stored in the session. When the last required item completes,
// the gate advances to the countdown step.
func (g *GateService) CompleteItem(ctx context.Context, sessionID, kind string, itemID int64) (*model.GateSession, error) {
	sess, err := g.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item := sess.Item(kind, itemID)
	if item == nil {
		return nil, ErrGateItemNotFound
	}
	if item.State != model.GateItemLoading {
		return nil, ErrItemNotLoading
	}

	now := g.now()
	if item.StartedAt == nil || now.Sub(*item.StartedAt) < g.itemDwell {
		return nil, ErrDwellNotElapsed
	}

	item.State = model.GateItemCompleted
	item.CompletedAt = &now

	if sess.Step == model.GateStepRules && sess.Ready(now) {
		sess.Step = model.GateStepCountdown
		sess.CountdownStartedAt = &now
	}

	if err := g.redisRepo.SaveGateSession(ctx, sess, g.sessionTTL); err != nil {
		return nil, err
	}
	return sess, nil
}

// Finish ends the gate and hands the visitor their destination. A session
// still on the rules step has its readiness re-evaluated first, so sponsors
// that expired or were deactivated since the last completion no longer hold
// the gate open. Once past the countdown the destination is returned on
// every path; only the accounting differs: a completion faster than the
// minimum gate duration redirects without invoking the click recorder at all.
func (g *GateService) Finish(ctx context.Context, sessionID string) (*model.GateFinishResponse, error) {
	sess, err := g.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := g.now()
	if sess.Step == model.GateStepRules {
		// Sponsors may have expired or been deactivated since the last
		// completion; readiness is re-evaluated against the current state
		// rather than the step recorded then.
		g.refreshSponsors(ctx, sess)
		if !sess.Ready(now) {
			return nil, ErrGateNotReady
		}
		sess.Step = model.GateStepCountdown
		sess.CountdownStartedAt = &now
		if err := g.redisRepo.SaveGateSession(ctx, sess, g.sessionTTL); err != nil {
			return nil, err
		}
		return nil, ErrCountdownRunning
	}
	if sess.CountdownStartedAt == nil || now.Sub(*sess.CountdownStartedAt) < g.countdown {
		return nil, ErrCountdownRunning
	}

	// The session is spent regardless of the accounting outcome
	if err := g.redisRepo.DeleteGateSession(ctx, sessionID); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to delete gate session")
	}

	resp := &model.GateFinishResponse{Destination: sess.DestinationURL}

	if now.Sub(sess.StartedAt) < g.minDuration {
		// Suspiciously fast completion: no click, no earnings, no event
		log.Warn().
			Str("session_id", sessionID).
			Str("short_code", sess.ShortCode).
			Dur("elapsed", now.Sub(sess.StartedAt)).
			Msg("Gate completed below minimum duration, visit not counted")
		return resp, nil
	}

	link, err := g.mysqlRepo.GetLinkByID(ctx, sess.LinkID)
	if err != nil {
		// Accounting failures never block the redirect
		log.Error().Err(err).Int64("link_id", sess.LinkID).Msg("Failed to load link for click recording")
		return resp, nil
	}

	result, err := g.recorder.Record(ctx, link, sess.VisitorIP, sess.UserAgent, sess.CookieMillis)
	if err != nil {
		log.Error().Err(err).Str("short_code", sess.ShortCode).Msg("Click recording failed, redirecting anyway")
		return resp, nil
	}

	resp.Monetized = result.Monetized
	return resp, nil
}

// refreshSponsors drops sponsor items deactivated since session start from
// the completion requirement. Best effort: a lookup failure changes nothing
// and the stricter in-session snapshot stands.
func (g *GateService) refreshSponsors(ctx context.Context, sess *model.GateSession) {
	link, err := g.mysqlRepo.GetLinkByID(ctx, sess.LinkID)
	if err != nil {
		log.Warn().Err(err).Int64("link_id", sess.LinkID).Msg("Failed to refresh sponsors for gate session")
		return
	}

	live := make(map[int64]bool, len(link.SponsorRules))
	for _, sponsor := range g.sponsors.ActiveSponsors(link.SponsorRules) {
		live[sponsor.ID] = true
	}
	for i := range sess.Items {
		item := &sess.Items[i]
		if item.Kind == model.GateItemSponsor && !live[item.ID] {
			item.Lapsed = true
		}
	}
}

func (g *GateService) getSession(ctx context.Context, sessionID string) (*model.GateSession, error) {
	sess, err := g.redisRepo.GetGateSession(ctx, sessionID)
	if err != nil {
		return nil, ErrGateSessionNotFound
	}
	return sess, nil
}
