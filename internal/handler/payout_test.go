package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Staillim/YourSubLink-sub000/internal/mocks"
	"github.com/Staillim/YourSubLink-sub000/internal/model"
	"github.com/Staillim/YourSubLink-sub000/internal/service"
)

func newPayoutRouter(ctrl *gomock.Controller) (*gin.Engine, *mocks.MockBalanceServiceInterface) {
	mockBalance := mocks.NewMockBalanceServiceInterface(ctrl)
	h := NewPayoutHandler(mockBalance)

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/api/v1/users/:userID/balance", h.GetBalance)
	router.POST("/api/v1/payouts", h.RequestPayout)
	return router, mockBalance
}

func TestPayoutHandler_GetBalance(t *testing.T) {
	t.Run("returns the derived balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, mockBalance := newPayoutRouter(ctrl)
		mockBalance.EXPECT().AvailableBalance(gomock.Any(), "user-1").
			Return(&model.BalanceResponse{
				UserID:                  "user-1",
				GeneratedEarningsMicros: 10_000_000,
				AvailableMicros:         6_000_000,
				AvailableUSD:            6.0,
			}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users/user-1/balance", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data model.BalanceResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(6_000_000), resp.Data.AvailableMicros)
		assert.Equal(t, 6.0, resp.Data.AvailableUSD)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, mockBalance := newPayoutRouter(ctrl)
		mockBalance.EXPECT().AvailableBalance(gomock.Any(), "missing").
			Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users/missing/balance", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPayoutHandler_RequestPayout(t *testing.T) {
	validInput := model.PayoutRequestInput{
		UserID:       "user-1",
		AmountMicros: 5_000_000,
		Method:       "paypal",
		Destination:  "user@example.com",
	}

	t.Run("opens a pending payout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, mockBalance := newPayoutRouter(ctrl)
		mockBalance.EXPECT().RequestPayout(gomock.Any(), gomock.Any()).
			Return(&model.PayoutRequest{
				ID:           1,
				UserID:       "user-1",
				AmountMicros: 5_000_000,
				Status:       model.PayoutPending,
			}, nil)

		body, _ := json.Marshal(validInput)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payouts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, mockBalance := newPayoutRouter(ctrl)
		mockBalance.EXPECT().RequestPayout(gomock.Any(), gomock.Any()).
			Return(nil, service.ErrInsufficientBalance)

		body, _ := json.Marshal(validInput)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payouts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, _ := newPayoutRouter(ctrl)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payouts", bytes.NewBufferString("{invalid"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-positive amount is rejected at binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, _ := newPayoutRouter(ctrl)

		body, _ := json.Marshal(map[string]interface{}{
			"user_id":       "user-1",
			"amount_micros": -1,
			"method":        "paypal",
			"destination":   "user@example.com",
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payouts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
