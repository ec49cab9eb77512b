package handler

import (
	"errors"
	"net/http"

	"github.com/Staillim/YourSubLink-sub000/internal/model"
	"github.com/Staillim/YourSubLink-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// PayoutHandler handles user-facing balance and payout endpoints
type PayoutHandler struct {
	balanceService service.BalanceServiceInterface
}

// NewPayoutHandler creates a new PayoutHandler
func NewPayoutHandler(balanceService service.BalanceServiceInterface) *PayoutHandler {
	return &PayoutHandler{balanceService: balanceService}
}

// GetBalance handles GET /api/v1/users/:userID/balance
// @Summary Get available balance
// @Description Returns the derived available balance for a user
// @Tags payouts
// @Param userID path string true "User id"
// @Success 200 {object} Response{data=model.BalanceResponse}
// @Router /api/v1/users/:userID/balance [get]
func (h *PayoutHandler) GetBalance(c *gin.Context) {
	userID := c.Param("userID")

	balance, err := h.balanceService.AvailableBalance(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    balance,
	})
}

// RequestPayout handles POST /api/v1/payouts
// @Summary Request a payout
// @Description Opens a pending payout request against the available balance
// @Tags payouts
// @Accept json
// @Produce json
// @Param request body model.PayoutRequestInput true "Payout request"
// @Success 200 {object} Response{data=model.PayoutRequest}
// @Router /api/v1/payouts [post]
func (h *PayoutHandler) RequestPayout(c *gin.Context) {
	var input model.PayoutRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	req, err := h.balanceService.RequestPayout(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientBalance) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Code:    http.StatusUnprocessableEntity,
				Message: "Requested amount exceeds available balance",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create payout request",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    req,
	})
}
