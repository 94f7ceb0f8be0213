package handlers

import (
	"errors"
	"net/http"

	apperrors "event-registration-backend/internal/errors"
	"event-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminEventHandler handles event management for the admin panel
type AdminEventHandler struct {
	eventService service.EventServiceInterface
}

// NewAdminEventHandler creates a new admin event handler
func NewAdminEventHandler(eventService service.EventServiceInterface) *AdminEventHandler {
	return &AdminEventHandler{eventService: eventService}
}

// ListEvents handles GET /admin/events
// @Summary List all events
// @Description Get all events with their teams for the admin panel
// @Tags admin-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.EventResponse "All events"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /admin/events [get]
func (h *AdminEventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

// CreateEvent handles POST /admin/events
// @Summary Create an event
// @Description Create a new event, with its teams when the event is a team event
// @Tags admin-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body service.CreateEventRequest true "Event data"
// @Success 201 {object} service.EventResponse "Created event"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 409 {object} map[string]interface{} "Event already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /admin/events [post]
func (h *AdminEventHandler) CreateEvent(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(&req)
	if err != nil {
		respondEventError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateEvent handles PUT /admin/events/:id
// @Summary Update an event
// @Description Update an event's fields and reconcile its team list by name
// @Tags admin-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param event body service.UpdateEventRequest true "Event data"
// @Success 200 {object} service.EventResponse "Updated event"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Failure 409 {object} map[string]interface{} "Event already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /admin/events/{id} [put]
func (h *AdminEventHandler) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(id, &req)
	if err != nil {
		respondEventError(c, err, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /admin/events/:id
// @Summary Delete an event
// @Description Delete an event and all of its teams
// @Tags admin-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{} "Event deleted"
// @Failure 400 {object} map[string]interface{} "Invalid event ID"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /admin/events/{id} [delete]
func (h *AdminEventHandler) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	if err := h.eventService.DeleteEvent(id); err != nil {
		respondEventError(c, err, "Failed to delete event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func respondEventError(c *gin.Context, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
