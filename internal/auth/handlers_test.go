package auth_test

import (
	"net/http"
	"testing"

	"event-registration-backend/internal/auth"
	"event-registration-backend/internal/config"
	"event-registration-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	httpSuite *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	service := auth.NewAuthService(&config.Config{
		JWTSecret:     "test-jwt-secret",
		AdminUsername: "admin",
		AdminPassword: "test-admin-password",
	})
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/admin/login", auth.NewAuthHandler(service).Login)
}

// TestLogin tests exchanging valid credentials for a token
func (suite *AuthHandlerTestSuite) TestLogin() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/login", map[string]string{
		"username": "admin",
		"password": "test-admin-password",
	})

	var resp auth.LoginResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.NotEmpty(resp.Token)
	suite.False(resp.ExpiresAt.IsZero())
}

// TestLoginInvalidCredentials tests bad credentials
func (suite *AuthHandlerTestSuite) TestLoginInvalidCredentials() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestLoginMissingFields tests an incomplete body
func (suite *AuthHandlerTestSuite) TestLoginMissingFields() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/login", map[string]string{
		"username": "admin",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// Run the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
