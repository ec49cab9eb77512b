package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Staillim/YourSubLink-sub000/internal/config"
	"github.com/Staillim/YourSubLink-sub000/internal/model"
	"github.com/Staillim/YourSubLink-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// GateHandler handles the visitor-facing gate state machine endpoints
type GateHandler struct {
	gateService service.GateServiceInterface
	cookieName  string
	cookieTTL   time.Duration
}

// NewGateHandler creates a new GateHandler
func NewGateHandler(gateService service.GateServiceInterface, cfg *config.MonetizeConfig) *GateHandler {
	return &GateHandler{
		gateService: gateService,
		cookieName:  cfg.CookieName,
		cookieTTL:   cfg.CookieTTL,
	}
}

// StartItem handles POST /api/v1/gate/:sessionID/items/:kind/:itemID/start
// @Summary Start a gate item
// @Description Moves a pending gate item to loading
// @Tags gate
// @Param sessionID path string true "Gate session id"
// @Param kind path string true "Item kind (rule or sponsor)"
// @Param itemID path int true "Item id"
// @Success 200 {object} Response{data=model.GateSession}
// @Router /api/v1/gate/:sessionID/items/:kind/:itemID/start [post]
func (h *GateHandler) StartItem(c *gin.Context) {
	sessionID, kind, itemID, ok := h.itemParams(c)
	if !ok {
		return
	}

	sess, err := h.gateService.StartItem(c.Request.Context(), sessionID, kind, itemID)
	if err != nil {
		h.gateError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: sess})
}

// CompleteItem handles POST /api/v1/gate/:sessionID/items/:kind/:itemID/complete
// @Summary Complete a gate item
// @Description Moves a loading gate item to completed once its dwell time elapsed
// @Tags gate
// @Param sessionID path string true "Gate session id"
// @Param kind path string true "Item kind (rule or sponsor)"
// @Param itemID path int true "Item id"
// @Success 200 {object} Response{data=model.GateSession}
// @Router /api/v1/gate/:sessionID/items/:kind/:itemID/complete [post]
func (h *GateHandler) CompleteItem(c *gin.Context) {
	sessionID, kind, itemID, ok := h.itemParams(c)
	if !ok {
		return
	}

	sess, err := h.gateService.CompleteItem(c.Request.Context(), sessionID, kind, itemID)
	if err != nil {
		h.gateError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: sess})
}

// Finish handles POST /api/v1/gate/:sessionID/finish
// @Summary Finish a gate
// @Description Ends the gate and returns the destination URL
// @Tags gate
// @Param sessionID path string true "Gate session id"
// @Success 200 {object} Response{data=model.GateFinishResponse}
// @Router /api/v1/gate/:sessionID/finish [post]
func (h *GateHandler) Finish(c *gin.Context) {
	sessionID := c.Param("sessionID")

	resp, err := h.gateService.Finish(c.Request.Context(), sessionID)
	if err != nil {
		h.gateError(c, err)
		return
	}

	if resp.Monetized {
		setVisitCookie(c, h.cookieName, h.cookieTTL)
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: resp})
}

// itemParams parses the gate item path parameters
func (h *GateHandler) itemParams(c *gin.Context) (string, string, int64, bool) {
	sessionID := c.Param("sessionID")
	kind := c.Param("kind")

	if kind != model.GateItemRule && kind != model.GateItemSponsor {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid item kind",
		})
		return "", "", 0, false
	}

	itemID, err := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid item id",
		})
		return "", "", 0, false
	}

	return sessionID, kind, itemID, true
}

// gateError maps gate state machine errors to HTTP responses
func (h *GateHandler) gateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGateSessionNotFound), errors.Is(err, service.ErrGateItemNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrItemNotPending),
		errors.Is(err, service.ErrItemNotLoading),
		errors.Is(err, service.ErrDwellNotElapsed),
		errors.Is(err, service.ErrGateNotReady),
		errors.Is(err, service.ErrCountdownRunning):
		c.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Gate operation failed",
		})
	}
}
