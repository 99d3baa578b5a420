// README: Deep link generation and click analytics handlers.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"oneyatra/internal/modules/deeplink"
)

// ClickCounter reads aggregated click analytics.
type ClickCounter interface {
	CountByProvider(ctx context.Context, provider string) (map[string]int64, error)
}

type DeepLinkHandler struct {
	tracker *deeplink.Tracker
	counter ClickCounter
}

// NewDeepLinkHandler builds the handler. counter may be nil when analytics storage is disabled.
func NewDeepLinkHandler(tracker *deeplink.Tracker, counter ClickCounter) *DeepLinkHandler {
	return &DeepLinkHandler{tracker: tracker, counter: counter}
}

// Generate handles GET /api/deeplink.
func (h *DeepLinkHandler) Generate(c *gin.Context) {
	provider := strings.TrimSpace(c.Query("provider"))
	origin := strings.TrimSpace(c.Query("origin"))
	destination := strings.TrimSpace(c.Query("destination"))
	if origin == "" || destination == "" {
		writeError(c, http.StatusBadRequest, "missing origin or destination")
		return
	}
	writeJSON(c, http.StatusOK, deeplink.Generate(provider, strings.ToUpper(c.Query("mode")), origin, destination))
}

type clickReq struct {
	Provider string `json:"provider"`
	Status   string `json:"status"`
}

// TrackClick handles POST /api/analytics/deeplink.
func (h *DeepLinkHandler) TrackClick(c *gin.Context) {
	var req clickReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.tracker.TrackClick(req.Provider, req.Status); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// Counts handles GET /api/analytics/deeplink/:provider.
func (h *DeepLinkHandler) Counts(c *gin.Context) {
	if h.counter == nil {
		writeError(c, http.StatusServiceUnavailable, "analytics storage disabled")
		return
	}
	counts, err := h.counter.CountByProvider(c.Request.Context(), c.Param("provider"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"provider": c.Param("provider"), "counts": counts})
}
