package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Staillim/YourSubLink-sub000/internal/mocks"
	"github.com/Staillim/YourSubLink-sub000/internal/model"
	"github.com/Staillim/YourSubLink-sub000/internal/mq"
)

func TestLinkService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a gated link with ordered rules", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockMySQL.EXPECT().CheckExistsByCode(gomock.Any(), gomock.Any()).Return(false, nil)

		var saved *model.Link
		mockMySQL.EXPECT().SaveLink(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, link *model.Link) error {
				saved = link
				return nil
			})

		svc := NewLinkService(mockMySQL, nil, "https://ysl.example.com")
		resp, err := svc.Create(ctx, &model.CreateLinkRequest{
			OwnerID: "user-1",
			URL:     "https://example.com/long",
			Title:   "My link",
			Rules: []model.CreateLinkRule{
				{Title: "Subscribe", URL: "https://yt.example.com"},
				{Title: "Follow", URL: "https://x.example.com"},
				{Title: "Join", URL: "https://discord.example.com"},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "https://ysl.example.com/"+resp.ShortCode, resp.ShortLink)
		assert.True(t, resp.Monetizable)

		require.NotNil(t, saved)
		assert.Equal(t, "user-1", saved.OwnerID)
		assert.Equal(t, model.MonetizationActive, saved.MonetizationStatus)
		require.Len(t, saved.Rules, 3)
		assert.Equal(t, 0, saved.Rules[0].Position)
		assert.Equal(t, 2, saved.Rules[2].Position)
	})

	t.Run("link below three rules is not monetizable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockMySQL.EXPECT().CheckExistsByCode(gomock.Any(), gomock.Any()).Return(false, nil)
		mockMySQL.EXPECT().SaveLink(gomock.Any(), gomock.Any()).Return(nil)

		svc := NewLinkService(mockMySQL, nil, "https://ysl.example.com")
		resp, err := svc.Create(ctx, &model.CreateLinkRequest{
			OwnerID: "user-1",
			URL:     "https://example.com/long",
			Rules: []model.CreateLinkRule{
				{Title: "Subscribe", URL: "https://yt.example.com"},
			},
		})
		require.NoError(t, err)
		assert.False(t, resp.Monetizable)
	})

	t.Run("empty URL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewLinkService(mocks.NewMockMySQLRepositoryInterface(ctrl), nil, "https://ysl.example.com")
		_, err := svc.Create(ctx, &model.CreateLinkRequest{OwnerID: "user-1", URL: ""})
		assert.ErrorIs(t, err, ErrInvalidURL)
	})

	t.Run("short code collision retries with the next candidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		gomock.InOrder(
			mockMySQL.EXPECT().CheckExistsByCode(gomock.Any(), gomock.Any()).Return(true, nil),
			mockMySQL.EXPECT().CheckExistsByCode(gomock.Any(), gomock.Any()).Return(false, nil),
		)
		mockMySQL.EXPECT().SaveLink(gomock.Any(), gomock.Any()).Return(nil)

		svc := NewLinkService(mockMySQL, nil, "https://ysl.example.com")
		_, err := svc.Create(ctx, &model.CreateLinkRequest{
			OwnerID: "user-1",
			URL:     "https://example.com/long",
		})
		assert.NoError(t, err)
	})
}

func TestLinkService_GetByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockMySQL.EXPECT().GetLinkByCode(gomock.Any(), "ABCD").
			Return(&model.Link{ID: 7, ShortCode: "ABCD"}, nil)

		svc := NewLinkService(mockMySQL, nil, "https://ysl.example.com")
		link, err := svc.GetByCode(ctx, "ABCD")
		require.NoError(t, err)
		assert.Equal(t, int64(7), link.ID)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockMySQL.EXPECT().GetLinkByCode(gomock.Any(), "NONE").Return(nil, assert.AnError)

		svc := NewLinkService(mockMySQL, nil, "https://ysl.example.com")
		_, err := svc.GetByCode(ctx, "NONE")
		assert.ErrorIs(t, err, ErrLinkNotFound)
	})
}

func TestLinkService_Suspend(t *testing.T) {
	ctx := context.Background()

	t.Run("suspends and notifies the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockProducer := mocks.NewMockProducerInterface(ctrl)

		mockMySQL.EXPECT().GetLinkByID(gomock.Any(), int64(7)).
			Return(&model.Link{ID: 7, OwnerID: "user-1", ShortCode: "ABCD"}, nil)
		mockMySQL.EXPECT().SetMonetizationStatus(gomock.Any(), int64(7), model.MonetizationSuspended).
			Return(nil)
		mockProducer.EXPECT().SendNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *mq.NotificationMessage) error {
				assert.Equal(t, "user-1", msg.UserID)
				assert.Equal(t, model.NotifyLinkSuspended, msg.Kind)
				return nil
			})

		svc := NewLinkService(mockMySQL, mockProducer, "https://ysl.example.com")
		assert.NoError(t, svc.Suspend(ctx, 7))
	})

	t.Run("unknown link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockMySQL.EXPECT().GetLinkByID(gomock.Any(), int64(99)).Return(nil, assert.AnError)

		svc := NewLinkService(mockMySQL, nil, "https://ysl.example.com")
		assert.ErrorIs(t, svc.Suspend(ctx, 99), ErrLinkNotFound)
	})
}

func TestLinkService_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
	mockProducer := mocks.NewMockProducerInterface(ctrl)

	mockMySQL.EXPECT().GetLinkByID(gomock.Any(), int64(7)).
		Return(&model.Link{ID: 7, OwnerID: "user-1", ShortCode: "ABCD"}, nil)
	mockMySQL.EXPECT().DeleteLink(gomock.Any(), int64(7)).Return(nil)
	mockProducer.EXPECT().SendNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *mq.NotificationMessage) error {
			assert.Equal(t, model.NotifyLinkDeleted, msg.Kind)
			return nil
		})

	svc := NewLinkService(mockMySQL, mockProducer, "https://ysl.example.com")
	assert.NoError(t, svc.Delete(ctx, 7))
}

func TestLinkService_Events(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
	mockMySQL.EXPECT().GetLinkByCode(gomock.Any(), "ABCD").
		Return(&model.Link{ID: 7, ShortCode: "ABCD"}, nil)
	mockMySQL.EXPECT().GetClickEvents(gomock.Any(), int64(7), 50).
		Return([]model.ClickEvent{{ID: 1, LinkID: 7, Monetized: true}}, nil)

	svc := NewLinkService(mockMySQL, nil, "https://ysl.example.com")
	events, err := svc.Events(ctx, "ABCD", 50)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Monetized)
}
