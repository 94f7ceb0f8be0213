package handlers

import (
	"net/http"

	"event-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicEventHandler handles the public event listing
type PublicEventHandler struct {
	eventService service.EventServiceInterface
}

// NewPublicEventHandler creates a new public event handler
func NewPublicEventHandler(eventService service.EventServiceInterface) *PublicEventHandler {
	return &PublicEventHandler{eventService: eventService}
}

// ListEvents handles GET /events
// @Summary List active events
// @Description Get active solo and team events for the registration form
// @Tags events
// @Accept json
// @Produce json
// @Success 200 {object} service.PublicEventListResponse "Active events"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /events [get]
func (h *PublicEventHandler) ListEvents(c *gin.Context) {
	resp, err := h.eventService.ListPublicEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SeedHandler handles the idempotent fixture loader
type SeedHandler struct {
	eventService service.EventServiceInterface
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(eventService service.EventServiceInterface) *SeedHandler {
	return &SeedHandler{eventService: eventService}
}

// Seed handles POST /seed
// @Summary Load event fixtures
// @Description Idempotently upsert the bundled solo and team event fixtures
// @Tags events
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Fixtures loaded"
// @Failure 500 {object} map[string]interface{} "Seeding failed"
// @Router /seed [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	if err := h.eventService.SeedFixtures(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Seeding failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
