package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"event-registration-backend/internal/config"
	apperrors "event-registration-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Admin tokens are short-lived; the panel is used in bursts around an event
const tokenTTL = 12 * time.Hour

// AdminClaims represents JWT token claims for the admin panel
type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService issues and validates admin JWTs against the configured credential
type AuthService struct {
	cfg *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Login checks the admin credential and returns a signed token on success
func (s *AuthService) Login(username, password string) (string, time.Time, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	if s.cfg.AdminPassword == "" || !userOK || !passOK {
		return "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(tokenTTL)
	claims := &AdminClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and verifies an admin token
func (s *AuthService) ValidateToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
