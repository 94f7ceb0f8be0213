package handlers

import (
	"net/http"

	apperrors "event-registration-backend/internal/errors"
	"event-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApprovalHandler handles the admin approval queue
type ApprovalHandler struct {
	approvalService service.ApprovalServiceInterface
}

// NewApprovalHandler creates a new approval handler
func NewApprovalHandler(approvalService service.ApprovalServiceInterface) *ApprovalHandler {
	return &ApprovalHandler{approvalService: approvalService}
}

// DecisionRequest is the body for approve and reject calls
type DecisionRequest struct {
	ID      string `json:"id" binding:"required"`
	Remarks string `json:"remarks"`
}

// ListPending handles GET /admin/pending
// @Summary List pending registrations
// @Description Get pending registrations, newest first, with masked participant details
// @Tags admin-approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.RegistrationListResponse "Pending registrations"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /admin/pending [get]
func (h *ApprovalHandler) ListPending(c *gin.Context) {
	registrations, err := h.approvalService.ListPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load registrations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, service.RegistrationListResponse{Registrations: registrations})
}

// ListApproved handles GET /admin/approved
// @Summary List approved registrations
// @Description Get approved registrations ordered by approval time, newest first
// @Tags admin-approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.RegistrationListResponse "Approved registrations"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /admin/approved [get]
func (h *ApprovalHandler) ListApproved(c *gin.Context) {
	registrations, err := h.approvalService.ListApproved()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load registrations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, service.RegistrationListResponse{Registrations: registrations})
}

// Approve handles POST /admin/approve
// @Summary Approve a registration
// @Description Move a pending registration to APPROVED
// @Tags admin-approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param decision body DecisionRequest true "Decision"
// @Success 200 {object} map[string]interface{} "Registration approved"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Registration not found"
// @Failure 409 {object} map[string]interface{} "Registration already finalized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /admin/approve [post]
func (h *ApprovalHandler) Approve(c *gin.Context) {
	id, ok := h.parseDecision(c)
	if !ok {
		return
	}

	if err := h.approvalService.Approve(id); err != nil {
		respondDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Reject handles POST /admin/reject
// @Summary Reject a registration
// @Description Move a pending registration to REJECTED, recording the remarks
// @Tags admin-approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param decision body DecisionRequest true "Decision"
// @Success 200 {object} map[string]interface{} "Registration rejected"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Registration not found"
// @Failure 409 {object} map[string]interface{} "Registration already finalized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /admin/reject [post]
func (h *ApprovalHandler) Reject(c *gin.Context) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration ID"})
		return
	}

	if err := h.approvalService.Reject(id, req.Remarks); err != nil {
		respondDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ApprovalHandler) parseDecision(c *gin.Context) (uuid.UUID, bool) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return uuid.Nil, false
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration ID"})
		return uuid.Nil, false
	}

	return id, true
}

func respondDecisionError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsInvalidTransition(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update registration", "details": err.Error()})
	}
}
