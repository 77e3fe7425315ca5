package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/dmhub/domain"
)

// HazardHandlers serves the aggregated live hazard feed.
type HazardHandlers struct {
	feed domain.HazardFeed
}

// NewHazardHandlers creates new hazard feed handlers.
func NewHazardHandlers(feed domain.HazardFeed) *HazardHandlers {
	return &HazardHandlers{feed: feed}
}

// Active handles GET /api/disasters/india/active. The feed itself
// degrades on upstream failure, so this never returns an error status.
func (h *HazardHandlers) Active(c *gin.Context) {
	events, err := h.feed.ActiveEvents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, []domain.HazardEvent{})
		return
	}
	c.JSON(http.StatusOK, events)
}
