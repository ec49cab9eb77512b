package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Staillim/YourSubLink-sub000/internal/model"
	"github.com/Staillim/YourSubLink-sub000/internal/repository"
	"github.com/Staillim/YourSubLink-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin actions on payouts, rates, links and sponsors.
// Invariant violations surface here as actionable errors; the admin path
// never swallows them the way the visitor path does.
type AdminHandler struct {
	balanceService service.BalanceServiceInterface
	rateResolver   service.RateResolverInterface
	sponsorService service.SponsorServiceInterface
	linkService    service.LinkServiceInterface
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	balanceService service.BalanceServiceInterface,
	rateResolver service.RateResolverInterface,
	sponsorService service.SponsorServiceInterface,
	linkService service.LinkServiceInterface,
) *AdminHandler {
	return &AdminHandler{
		balanceService: balanceService,
		rateResolver:   rateResolver,
		sponsorService: sponsorService,
		linkService:    linkService,
	}
}

// ApprovePayout handles POST /api/v1/admin/payouts/:payoutID/approve
// @Summary Approve a payout request
// @Description Completes a pending payout and credits paid earnings atomically
// @Tags admin
// @Param payoutID path int true "Payout request id"
// @Success 200 {object} Response{data=model.PayoutRequest}
// @Router /api/v1/admin/payouts/:payoutID/approve [post]
func (h *AdminHandler) ApprovePayout(c *gin.Context) {
	payoutID, ok := h.pathID(c, "payoutID")
	if !ok {
		return
	}

	req, err := h.balanceService.ApprovePayout(c.Request.Context(), payoutID)
	if err != nil {
		h.payoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: req})
}

// RejectPayout handles POST /api/v1/admin/payouts/:payoutID/reject
// @Summary Reject a payout request
// @Description Rejects a pending payout; no balance mutation
// @Tags admin
// @Param payoutID path int true "Payout request id"
// @Success 200 {object} Response{data=model.PayoutRequest}
// @Router /api/v1/admin/payouts/:payoutID/reject [post]
func (h *AdminHandler) RejectPayout(c *gin.Context) {
	payoutID, ok := h.pathID(c, "payoutID")
	if !ok {
		return
	}

	req, err := h.balanceService.RejectPayout(c.Request.Context(), payoutID)
	if err != nil {
		h.payoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: req})
}

// AdjustmentRequest is the body for a manual balance adjustment
type AdjustmentRequest struct {
	AmountMicros int64  `json:"amount_micros" binding:"required"`
	Reason       string `json:"reason"`
}

// AddBalance handles POST /api/v1/admin/users/:userID/adjustments
// @Summary Add a manual balance adjustment
// @Description Appends a signed ledger entry raising or lowering the available balance
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path string true "User id"
// @Param request body AdjustmentRequest true "Adjustment"
// @Success 200 {object} Response{data=model.BalanceAdjustment}
// @Router /api/v1/admin/users/:userID/adjustments [post]
func (h *AdminHandler) AddBalance(c *gin.Context) {
	userID := c.Param("userID")
	adminID := c.GetHeader("X-User-Id")

	var req AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	adj, err := h.balanceService.AddBalance(c.Request.Context(), userID, adminID, req.AmountMicros, req.Reason)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAdjustment) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to add adjustment: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: adj})
}

// CpmRequest is the body for a global CPM rate change
type CpmRequest struct {
	RateMicros int64 `json:"rate_micros" binding:"required,gt=0"`
}

// SetCpm handles POST /api/v1/admin/cpm
// @Summary Set the global CPM rate
// @Description Closes the open CPM period and opens a new one
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CpmRequest true "New rate"
// @Success 200 {object} Response{data=model.CpmPeriod}
// @Router /api/v1/admin/cpm [post]
func (h *AdminHandler) SetCpm(c *gin.Context) {
	var req CpmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	period, err := h.rateResolver.SetGlobalRate(c.Request.Context(), req.RateMicros)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to set CPM rate: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: period})
}

// SuspendLink handles POST /api/v1/admin/links/:linkID/suspend
// @Summary Suspend link monetization
// @Tags admin
// @Param linkID path int true "Link id"
// @Success 200 {object} Response
// @Router /api/v1/admin/links/:linkID/suspend [post]
func (h *AdminHandler) SuspendLink(c *gin.Context) {
	h.linkStatusAction(c, h.linkService.Suspend)
}

// ActivateLink handles POST /api/v1/admin/links/:linkID/activate
// @Summary Re-enable link monetization
// @Tags admin
// @Param linkID path int true "Link id"
// @Success 200 {object} Response
// @Router /api/v1/admin/links/:linkID/activate [post]
func (h *AdminHandler) ActivateLink(c *gin.Context) {
	h.linkStatusAction(c, h.linkService.Activate)
}

// DeleteLink handles DELETE /api/v1/admin/links/:linkID
// @Summary Delete a link
// @Description Soft-deletes a link and notifies its owner
// @Tags admin
// @Param linkID path int true "Link id"
// @Success 200 {object} Response
// @Router /api/v1/admin/links/:linkID [delete]
func (h *AdminHandler) DeleteLink(c *gin.Context) {
	h.linkStatusAction(c, h.linkService.Delete)
}

// CreateSponsor handles POST /api/v1/admin/links/:linkID/sponsors
// @Summary Attach a sponsor to a link
// @Description Fails when the link already carries 3 live sponsors
// @Tags admin
// @Accept json
// @Produce json
// @Param linkID path int true "Link id"
// @Param request body model.CreateSponsorRequest true "Sponsor"
// @Success 200 {object} Response{data=model.SponsorRule}
// @Router /api/v1/admin/links/:linkID/sponsors [post]
func (h *AdminHandler) CreateSponsor(c *gin.Context) {
	linkID, ok := h.pathID(c, "linkID")
	if !ok {
		return
	}

	var req model.CreateSponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	sponsor, err := h.sponsorService.CreateSponsor(c.Request.Context(), linkID, &req)
	if err != nil {
		if errors.Is(err, service.ErrSponsorLimitReached) {
			c.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "Link already has the maximum number of active sponsors",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create sponsor: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: sponsor})
}

// linkStatusAction runs a link mutation shared by suspend/activate/delete
func (h *AdminHandler) linkStatusAction(c *gin.Context, action func(ctx context.Context, linkID int64) error) {
	linkID, ok := h.pathID(c, "linkID")
	if !ok {
		return
	}

	if err := action(c.Request.Context(), linkID); err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Link not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Link action failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success"})
}

// pathID parses a numeric path parameter
func (h *AdminHandler) pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid " + name,
		})
		return 0, false
	}
	return id, true
}

// payoutError maps payout processing errors to HTTP responses
func (h *AdminHandler) payoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrPayoutNotPending):
		c.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Payout request has already been processed",
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process payout: " + err.Error(),
		})
	}
}
