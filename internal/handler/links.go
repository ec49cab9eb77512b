package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Staillim/YourSubLink-sub000/internal/model"
	"github.com/Staillim/YourSubLink-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles link creation and owner-facing link queries
type LinkHandler struct {
	service service.LinkServiceInterface
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(service service.LinkServiceInterface) *LinkHandler {
	return &LinkHandler{service: service}
}

// Create handles POST /api/v1/links
// @Summary Create a gated link
// @Description Creates a short link gated behind the given rules
// @Tags links
// @Accept json
// @Produce json
// @Param request body model.CreateLinkRequest true "Create request"
// @Success 200 {object} Response{data=model.CreateLinkResponse}
// @Router /api/v1/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create link: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    resp,
	})
}

// Get handles GET /api/v1/links/:shortCode
// @Summary Get a link
// @Description Returns the link with its rules and sponsors
// @Tags links
// @Param shortCode path string true "Short code"
// @Success 200 {object} Response{data=model.Link}
// @Router /api/v1/links/:shortCode [get]
func (h *LinkHandler) Get(c *gin.Context) {
	shortCode := c.Param("shortCode")

	link, err := h.service.GetByCode(c.Request.Context(), shortCode)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Link not found",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    link,
	})
}

// Events handles GET /api/v1/links/:shortCode/events
// @Summary Get click events for a link
// @Description Returns the append-only click-event audit log, newest first
// @Tags links
// @Param shortCode path string true "Short code"
// @Param limit query int false "Maximum events to return"
// @Success 200 {object} Response{data=[]model.ClickEvent}
// @Router /api/v1/links/:shortCode/events [get]
func (h *LinkHandler) Events(c *gin.Context) {
	shortCode := c.Param("shortCode")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	events, err := h.service.Events(c.Request.Context(), shortCode, limit)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Link not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get click events",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    events,
	})
}

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
