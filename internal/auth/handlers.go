package auth

import (
	"errors"
	"net/http"
	"time"

	apperrors "event-registration-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginRequest represents the admin login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles POST /admin/login
// @Summary Admin login
// @Description Exchange the admin credential for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse "Token issued"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, expiresAt, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}
