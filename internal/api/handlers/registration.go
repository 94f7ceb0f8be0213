package handlers

import (
	"errors"
	"net/http"

	apperrors "event-registration-backend/internal/errors"
	"event-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles HTTP requests for registrations
type RegistrationHandler struct {
	service service.RegistrationServiceInterface
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(service service.RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// SubmitRegistration handles POST /registrations
// @Summary Submit a registration
// @Description Upserts the participant by phone number and creates a pending registration
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration body service.SubmitRegistrationRequest true "Registration data"
// @Success 200 {object} service.SubmitRegistrationResponse "Registration created"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /registrations [post]
func (h *RegistrationHandler) SubmitRegistration(c *gin.Context) {
	var req service.SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Submit(&req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit registration", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
