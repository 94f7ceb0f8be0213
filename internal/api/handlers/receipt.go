package handlers

import (
	"fmt"
	"net/http"

	apperrors "event-registration-backend/internal/errors"
	"event-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReceiptHandler handles PDF receipt downloads
type ReceiptHandler struct {
	receiptService service.ReceiptServiceInterface
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService service.ReceiptServiceInterface) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// ReceiptRequest is the body for the receipt download call
type ReceiptRequest struct {
	ID string `json:"id" binding:"required"`
}

// GenerateReceipt handles POST /admin/pdf
// @Summary Download a registration receipt
// @Description Render the registration receipt as a PDF attachment
// @Tags admin-approvals
// @Accept json
// @Produce application/pdf
// @Security BearerAuth
// @Param request body ReceiptRequest true "Registration reference"
// @Success 200 {file} binary "PDF receipt"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Registration not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /admin/pdf [post]
func (h *ReceiptHandler) GenerateReceipt(c *gin.Context) {
	var req ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration ID"})
		return
	}

	result, err := h.receiptService.Generate(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate receipt", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.FileName))
	c.Data(http.StatusOK, "application/pdf", result.Content)
}
