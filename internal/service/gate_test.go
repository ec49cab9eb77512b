package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Staillim/YourSubLink-sub000/internal/config"
	"github.com/Staillim/YourSubLink-sub000/internal/mocks"
	"github.com/Staillim/YourSubLink-sub000/internal/model"
)

type gateDeps struct {
	mysql    *mocks.MockMySQLRepositoryInterface
	redis    *mocks.MockRedisRepositoryInterface
	recorder *mocks.MockClickRecorderInterface
	sponsors *mocks.MockSponsorServiceInterface
}

func newTestGate(ctrl *gomock.Controller, now time.Time) (*GateService, gateDeps) {
	d := gateDeps{
		mysql:    mocks.NewMockMySQLRepositoryInterface(ctrl),
		redis:    mocks.NewMockRedisRepositoryInterface(ctrl),
		recorder: mocks.NewMockClickRecorderInterface(ctrl),
		sponsors: mocks.NewMockSponsorServiceInterface(ctrl),
	}

	svc := NewGateService(d.mysql, d.redis, d.recorder, d.sponsors, &config.GateConfig{
		ItemDwell:   2 * time.Second,
		Countdown:   5 * time.Second,
		MinDuration: 10 * time.Second,
		SessionTTL:  time.Hour,
	})
	svc.now = func() time.Time { return now }

	return svc, d
}

func TestGateService_CountdownSeconds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestGate(ctrl, time.Now())
	assert.Equal(t, 5, svc.CountdownSeconds())
}

func TestGateService_StartSession(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	link := &model.Link{
		ID:          7,
		ShortCode:   "ABCD",
		OriginalURL: "https://example.com",
		Rules: []model.Rule{
			{ID: 1, Title: "Subscribe", URL: "https://yt.example.com"},
			{ID: 2, Title: "Follow", URL: "https://x.example.com"},
			{ID: 3, Title: "Join", URL: "https://discord.example.com"},
		},
		SponsorRules: []model.SponsorRule{
			{ID: 11, Title: "Sponsor A", URL: "https://a.example.com", IsActive: true},
			{ID: 12, Title: "Expired", URL: "https://b.example.com", IsActive: false},
		},
	}

	t.Run("items are the rules plus the live sponsors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)

		d.sponsors.EXPECT().ActiveSponsors(link.SponsorRules).
			Return(link.SponsorRules[:1])
		d.mysql.EXPECT().IncrementSponsorViews(gomock.Any(), int64(11)).Return(nil)
		d.redis.EXPECT().SaveGateSession(gomock.Any(), gomock.Any(), time.Hour).Return(nil)

		sess, err := svc.StartSession(ctx, link, "1.2.3.4", "agent", 42)
		require.NoError(t, err)

		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, int64(7), sess.LinkID)
		assert.Equal(t, "https://example.com", sess.DestinationURL)
		assert.Equal(t, "1.2.3.4", sess.VisitorIP)
		assert.Equal(t, int64(42), sess.CookieMillis)
		assert.Equal(t, model.GateStepRules, sess.Step)
		assert.Equal(t, now, sess.StartedAt)

		require.Len(t, sess.Items, 4)
		for _, item := range sess.Items[:3] {
			assert.Equal(t, model.GateItemRule, item.Kind)
			assert.Equal(t, model.GateItemPending, item.State)
		}
		assert.Equal(t, model.GateItemSponsor, sess.Items[3].Kind)
		assert.Equal(t, int64(11), sess.Items[3].ID)
	})

	t.Run("view counter failure does not abort the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)

		d.sponsors.EXPECT().ActiveSponsors(gomock.Any()).Return(link.SponsorRules[:1])
		d.mysql.EXPECT().IncrementSponsorViews(gomock.Any(), int64(11)).Return(assert.AnError)
		d.redis.EXPECT().SaveGateSession(gomock.Any(), gomock.Any(), time.Hour).Return(nil)

		_, err := svc.StartSession(ctx, link, "1.2.3.4", "agent", 0)
		assert.NoError(t, err)
	})

	t.Run("session store failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)

		d.sponsors.EXPECT().ActiveSponsors(gomock.Any()).Return(nil)
		d.redis.EXPECT().SaveGateSession(gomock.Any(), gomock.Any(), time.Hour).Return(assert.AnError)

		_, err := svc.StartSession(ctx, link, "1.2.3.4", "agent", 0)
		assert.Error(t, err)
	})
}

func TestGateService_StartItem(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newSession := func() *model.GateSession {
		return &model.GateSession{
			ID:   "sess-1",
			Step: model.GateStepRules,
			Items: []model.GateItem{
				{ID: 1, Kind: model.GateItemRule, State: model.GateItemPending},
				{ID: 11, Kind: model.GateItemSponsor, State: model.GateItemPending},
			},
		}
	}

	t.Run("pending rule moves to loading", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		sess := newSession()

		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").Return(sess, nil)
		d.redis.EXPECT().SaveGateSession(gomock.Any(), sess, time.Hour).Return(nil)

		got, err := svc.StartItem(ctx, "sess-1", model.GateItemRule, 1)
		require.NoError(t, err)

		item := got.Item(model.GateItemRule, 1)
		assert.Equal(t, model.GateItemLoading, item.State)
		require.NotNil(t, item.StartedAt)
		assert.Equal(t, now, *item.StartedAt)
	})

	t.Run("sponsor start counts a sponsor click", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		sess := newSession()

		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").Return(sess, nil)
		d.mysql.EXPECT().IncrementSponsorClicks(gomock.Any(), int64(11)).Return(nil)
		d.redis.EXPECT().SaveGateSession(gomock.Any(), sess, time.Hour).Return(nil)

		_, err := svc.StartItem(ctx, "sess-1", model.GateItemSponsor, 11)
		assert.NoError(t, err)
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		d.redis.EXPECT().GetGateSession(gomock.Any(), "missing").Return(nil, assert.AnError)

		_, err := svc.StartItem(ctx, "missing", model.GateItemRule, 1)
		assert.ErrorIs(t, err, ErrGateSessionNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").Return(newSession(), nil)

		_, err := svc.StartItem(ctx, "sess-1", model.GateItemRule, 99)
		assert.ErrorIs(t, err, ErrGateItemNotFound)
	})

	t.Run("item already started", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		sess := newSession()
		sess.Items[0].State = model.GateItemLoading

		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").Return(sess, nil)

		_, err := svc.StartItem(ctx, "sess-1", model.GateItemRule, 1)
		assert.ErrorIs(t, err, ErrItemNotPending)
	})
}

func TestGateService_CompleteItem(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("dwell not elapsed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		started := now.Add(-time.Second)
		sess := &model.GateSession{
			ID:   "sess-1",
			Step: model.GateStepRules,
			Items: []model.GateItem{
				{ID: 1, Kind: model.GateItemRule, State: model.GateItemLoading, StartedAt: &started},
			},
		}
		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").Return(sess, nil)

		_, err := svc.CompleteItem(ctx, "sess-1", model.GateItemRule, 1)
		assert.ErrorIs(t, err, ErrDwellNotElapsed)
	})

	t.Run("pending item cannot complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		sess := &model.GateSession{
			ID:   "sess-1",
			Step: model.GateStepRules,
			Items: []model.GateItem{
				{ID: 1, Kind: model.GateItemRule, State: model.GateItemPending},
			},
		}
		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").Return(sess, nil)

		_, err := svc.CompleteItem(ctx, "sess-1", model.GateItemRule, 1)
		assert.ErrorIs(t, err, ErrItemNotLoading)
	})

	t.Run("completing a mid-gate item keeps the rules step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		started := now.Add(-3 * time.Second)
		sess := &model.GateSession{
			ID:   "sess-1",
			Step: model.GateStepRules,
			Items: []model.GateItem{
				{ID: 1, Kind: model.GateItemRule, State: model.GateItemLoading, StartedAt: &started},
				{ID: 2, Kind: model.GateItemRule, State: model.GateItemPending},
			},
		}
		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").Return(sess, nil)
		d.redis.EXPECT().SaveGateSession(gomock.Any(), sess, time.Hour).Return(nil)

		got, err := svc.CompleteItem(ctx, "sess-1", model.GateItemRule, 1)
		require.NoError(t, err)
		assert.Equal(t, model.GateStepRules, got.Step)
		assert.Nil(t, got.CountdownStartedAt)
	})

	t.Run("last item advances the gate to the countdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		started := now.Add(-3 * time.Second)
		sess := &model.GateSession{
			ID:   "sess-1",
			Step: model.GateStepRules,
			Items: []model.GateItem{
				{ID: 1, Kind: model.GateItemRule, State: model.GateItemCompleted},
				{ID: 2, Kind: model.GateItemRule, State: model.GateItemLoading, StartedAt: &started},
			},
		}
		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").Return(sess, nil)
		d.redis.EXPECT().SaveGateSession(gomock.Any(), sess, time.Hour).Return(nil)

		got, err := svc.CompleteItem(ctx, "sess-1", model.GateItemRule, 2)
		require.NoError(t, err)
		assert.Equal(t, model.GateStepCountdown, got.Step)
		require.NotNil(t, got.CountdownStartedAt)
		assert.Equal(t, now, *got.CountdownStartedAt)
	})

	t.Run("expired sponsor does not hold the gate open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		started := now.Add(-3 * time.Second)
		expired := now.Add(-time.Minute)
		sess := &model.GateSession{
			ID:   "sess-1",
			Step: model.GateStepRules,
			Items: []model.GateItem{
				{ID: 1, Kind: model.GateItemRule, State: model.GateItemLoading, StartedAt: &started},
				{ID: 11, Kind: model.GateItemSponsor, State: model.GateItemPending, ExpiresAt: &expired},
			},
		}
		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").Return(sess, nil)
		d.redis.EXPECT().SaveGateSession(gomock.Any(), sess, time.Hour).Return(nil)

		got, err := svc.CompleteItem(ctx, "sess-1", model.GateItemRule, 1)
		require.NoError(t, err)
		assert.Equal(t, model.GateStepCountdown, got.Step)
	})
}

func TestGateService_Finish(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	countdownSession := func(sessionAge, countdownAge time.Duration) *model.GateSession {
		countdownStarted := now.Add(-countdownAge)
		return &model.GateSession{
			ID:                 "sess-1",
			LinkID:             7,
			ShortCode:          "ABCD",
			DestinationURL:     "https://example.com",
			VisitorIP:          "1.2.3.4",
			UserAgent:          "agent",
			CookieMillis:       42,
			Step:               model.GateStepCountdown,
			StartedAt:          now.Add(-sessionAge),
			CountdownStartedAt: &countdownStarted,
		}
	}

	t.Run("open rule items cannot finish", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		sess := countdownSession(20*time.Second, 6*time.Second)
		sess.Step = model.GateStepRules
		sess.CountdownStartedAt = nil
		sess.Items = []model.GateItem{
			{ID: 1, Kind: model.GateItemRule, State: model.GateItemCompleted},
			{ID: 2, Kind: model.GateItemRule, State: model.GateItemPending},
		}

		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").Return(sess, nil)
		d.mysql.EXPECT().GetLinkByID(gomock.Any(), int64(7)).Return(monetizableLink(), nil)
		d.sponsors.EXPECT().ActiveSponsors(gomock.Any()).Return(nil)

		_, err := svc.Finish(ctx, "sess-1")
		assert.ErrorIs(t, err, ErrGateNotReady)
	})

	t.Run("sponsor expiring after the last completion starts the countdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		expired := now.Add(-time.Minute)
		sess := countdownSession(20*time.Second, 0)
		sess.Step = model.GateStepRules
		sess.CountdownStartedAt = nil
		sess.Items = []model.GateItem{
			{ID: 1, Kind: model.GateItemRule, State: model.GateItemCompleted},
			{ID: 2, Kind: model.GateItemRule, State: model.GateItemCompleted},
			{ID: 3, Kind: model.GateItemRule, State: model.GateItemCompleted},
			{ID: 11, Kind: model.GateItemSponsor, State: model.GateItemPending, ExpiresAt: &expired},
		}

		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").Return(sess, nil)
		// Refresh lookup failing leaves the snapshot alone; expiry alone
		// must still unblock the gate
		d.mysql.EXPECT().GetLinkByID(gomock.Any(), int64(7)).Return(nil, assert.AnError)
		d.redis.EXPECT().SaveGateSession(gomock.Any(), sess, time.Hour).Return(nil)

		_, err := svc.Finish(ctx, "sess-1")
		assert.ErrorIs(t, err, ErrCountdownRunning)
		assert.Equal(t, model.GateStepCountdown, sess.Step)
		require.NotNil(t, sess.CountdownStartedAt)
		assert.Equal(t, now, *sess.CountdownStartedAt)
	})

	t.Run("sponsor deactivated mid-session is dropped at finish", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		sess := countdownSession(20*time.Second, 0)
		sess.Step = model.GateStepRules
		sess.CountdownStartedAt = nil
		sess.Items = []model.GateItem{
			{ID: 1, Kind: model.GateItemRule, State: model.GateItemCompleted},
			{ID: 11, Kind: model.GateItemSponsor, State: model.GateItemPending},
		}

		link := monetizableLink()
		link.SponsorRules = []model.SponsorRule{
			{ID: 11, Title: "Sponsor A", URL: "https://a.example.com", IsActive: false},
		}

		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").Return(sess, nil)
		d.mysql.EXPECT().GetLinkByID(gomock.Any(), int64(7)).Return(link, nil)
		d.sponsors.EXPECT().ActiveSponsors(link.SponsorRules).Return(nil)
		d.redis.EXPECT().SaveGateSession(gomock.Any(), sess, time.Hour).Return(nil)

		_, err := svc.Finish(ctx, "sess-1")
		assert.ErrorIs(t, err, ErrCountdownRunning)
		assert.True(t, sess.Item(model.GateItemSponsor, 11).Lapsed)
		assert.Equal(t, model.GateStepCountdown, sess.Step)
	})

	t.Run("countdown still running", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").
			Return(countdownSession(20*time.Second, 3*time.Second), nil)

		_, err := svc.Finish(ctx, "sess-1")
		assert.ErrorIs(t, err, ErrCountdownRunning)
	})

	t.Run("too-fast completion redirects without counting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").
			Return(countdownSession(8*time.Second, 6*time.Second), nil)
		d.redis.EXPECT().DeleteGateSession(gomock.Any(), "sess-1").Return(nil)
		// No GetLinkByID, no recorder call: the visit is not counted at all

		resp, err := svc.Finish(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", resp.Destination)
		assert.False(t, resp.Monetized)
	})

	t.Run("normal completion records the click", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		link := monetizableLink()

		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").
			Return(countdownSession(20*time.Second, 6*time.Second), nil)
		d.redis.EXPECT().DeleteGateSession(gomock.Any(), "sess-1").Return(nil)
		d.mysql.EXPECT().GetLinkByID(gomock.Any(), int64(7)).Return(link, nil)
		d.recorder.EXPECT().Record(gomock.Any(), link, "1.2.3.4", "agent", int64(42)).
			Return(&model.ClickResult{Monetized: true, EarningsMicros: 3_000}, nil)

		resp, err := svc.Finish(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", resp.Destination)
		assert.True(t, resp.Monetized)
	})

	t.Run("recorder failure never blocks the redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		link := monetizableLink()

		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").
			Return(countdownSession(20*time.Second, 6*time.Second), nil)
		d.redis.EXPECT().DeleteGateSession(gomock.Any(), "sess-1").Return(nil)
		d.mysql.EXPECT().GetLinkByID(gomock.Any(), int64(7)).Return(link, nil)
		d.recorder.EXPECT().Record(gomock.Any(), link, "1.2.3.4", "agent", int64(42)).
			Return(nil, assert.AnError)

		resp, err := svc.Finish(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", resp.Destination)
		assert.False(t, resp.Monetized)
	})

	t.Run("link load failure never blocks the redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)

		d.redis.EXPECT().GetGateSession(gomock.Any(), "sess-1").
			Return(countdownSession(20*time.Second, 6*time.Second), nil)
		d.redis.EXPECT().DeleteGateSession(gomock.Any(), "sess-1").Return(nil)
		d.mysql.EXPECT().GetLinkByID(gomock.Any(), int64(7)).Return(nil, assert.AnError)

		resp, err := svc.Finish(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", resp.Destination)
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newTestGate(ctrl, now)
		d.redis.EXPECT().GetGateSession(gomock.Any(), "missing").Return(nil, assert.AnError)

		_, err := svc.Finish(ctx, "missing")
		assert.ErrorIs(t, err, ErrGateSessionNotFound)
	})
}
