package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Staillim/YourSubLink-sub000/internal/config"
	"github.com/Staillim/YourSubLink-sub000/internal/model"
	"github.com/Staillim/YourSubLink-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ResolveHandler handles short link resolution for visitors
type ResolveHandler struct {
	linkService service.LinkServiceInterface
	gateService service.GateServiceInterface
	recorder    service.ClickRecorderInterface
	ipLookup    service.IPLookupInterface
	cookieName  string
	cookieTTL   time.Duration
	countdown   int
}

// NewResolveHandler creates a new ResolveHandler
func NewResolveHandler(
	linkService service.LinkServiceInterface,
	gateService service.GateServiceInterface,
	recorder service.ClickRecorderInterface,
	ipLookup service.IPLookupInterface,
	cfg *config.MonetizeConfig,
	countdownSeconds int,
) *ResolveHandler {
	return &ResolveHandler{
		linkService: linkService,
		gateService: gateService,
		recorder:    recorder,
		ipLookup:    ipLookup,
		cookieName:  cfg.CookieName,
		cookieTTL:   cfg.CookieTTL,
		countdown:   countdownSeconds,
	}
}

// Resolve handles GET /:shortCode
// @Summary Resolve a short link
// @Description Redirects directly for ungated links; returns a gate payload otherwise
// @Tags resolve
// @Param shortCode path string true "Short code"
// @Success 200 {object} Response{data=model.GateResponse}
// @Success 302
// @Router /:shortCode [get]
func (h *ResolveHandler) Resolve(c *gin.Context) {
	shortCode := c.Param("shortCode")

	link, err := h.linkService.GetByCode(c.Request.Context(), shortCode)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{
			"code": shortCode,
		})
		return
	}

	visitorIP := h.visitorIP(c)
	userAgent := c.Request.UserAgent()
	cookieMillis := readVisitCookie(c, h.cookieName)

	// Zero rules: no gate, the recorder fires on resolution. The redirect
	// is issued no matter what the accounting does.
	if len(link.Rules) == 0 {
		defer c.Redirect(http.StatusFound, link.OriginalURL)

		result, err := h.recorder.Record(c.Request.Context(), link, visitorIP, userAgent, cookieMillis)
		if err != nil {
			log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to record click")
			return
		}
		if result.Monetized {
			setVisitCookie(c, h.cookieName, h.cookieTTL)
		}
		return
	}

	sess, err := h.gateService.StartSession(c.Request.Context(), link, visitorIP, userAgent, cookieMillis)
	if err != nil {
		// Gate store unavailable: let the visitor through without accounting
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to start gate session, redirecting without gate")
		c.Redirect(http.StatusFound, link.OriginalURL)
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data: model.GateResponse{
			SessionID:        sess.ID,
			ShortCode:        sess.ShortCode,
			Step:             sess.Step,
			CountdownSeconds: h.countdown,
			Items:            sess.Items,
		},
	})
}

// visitorIP resolves the visitor identity. ClientIP covers the normal
// case; the external lookup is a best-effort fallback and any failure
// leaves the IP empty, which the guard treats as monetizable.
func (h *ResolveHandler) visitorIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	if h.ipLookup == nil {
		return ""
	}

	ip, err := h.ipLookup.Lookup(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Msg("IP lookup failed, proceeding without visitor IP")
		return ""
	}
	return ip
}

// readVisitCookie returns the cookie half of the abuse window signal in
// epoch millis, 0 when absent or unparseable
func readVisitCookie(c *gin.Context, name string) int64 {
	value, err := c.Cookie(name)
	if err != nil {
		return 0
	}
	millis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return millis
}

// setVisitCookie stamps the client half of the abuse window signal. Called
// only when a click actually monetized: unqualified clicks must not reset
// the window.
func setVisitCookie(c *gin.Context, name string, ttl time.Duration) {
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	c.SetCookie(name, millis, int(ttl.Seconds()), "/", "", false, true)
}
