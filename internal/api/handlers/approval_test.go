package handlers_test

import (
	"net/http"
	"testing"

	"event-registration-backend/internal/api/handlers"
	apperrors "event-registration-backend/internal/errors"
	"event-registration-backend/internal/mocks"
	"event-registration-backend/internal/service"
	"event-registration-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ApprovalHandlerTestSuite defines the test suite for ApprovalHandler
type ApprovalHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockApprovalServiceInterface
	handler     *handlers.ApprovalHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ApprovalHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockApprovalServiceInterface(suite.ctrl)
	suite.handler = handlers.NewApprovalHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/admin/pending", suite.handler.ListPending)
	suite.httpSuite.Router.GET("/admin/approved", suite.handler.ListApproved)
	suite.httpSuite.Router.POST("/admin/approve", suite.handler.Approve)
	suite.httpSuite.Router.POST("/admin/reject", suite.handler.Reject)
}

// TearDownTest cleans up after each test
func (suite *ApprovalHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListPending tests the pending queue listing
func (suite *ApprovalHandlerTestSuite) TestListPending() {
	suite.mockService.EXPECT().ListPending().Return([]service.RegistrationDetail{
		{ID: uuid.New()},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/admin/pending", nil)

	var resp service.RegistrationListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Len(resp.Registrations, 1)
}

// TestListApproved tests the approved listing
func (suite *ApprovalHandlerTestSuite) TestListApproved() {
	suite.mockService.EXPECT().ListApproved().Return([]service.RegistrationDetail{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/admin/approved", nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
}

// TestApprove tests that the {id} body moves a registration to APPROVED
func (suite *ApprovalHandlerTestSuite) TestApprove() {
	id := uuid.New()
	suite.mockService.EXPECT().Approve(id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/approve", map[string]interface{}{
		"id": id.String(),
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestApproveMissingID tests a body without the registration id
func (suite *ApprovalHandlerTestSuite) TestApproveMissingID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/approve", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestApproveInvalidID tests a malformed registration id
func (suite *ApprovalHandlerTestSuite) TestApproveInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/approve", map[string]interface{}{
		"id": "not-a-uuid",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid registration ID")
}

// TestApproveNotFound tests approving an unknown registration
func (suite *ApprovalHandlerTestSuite) TestApproveNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Approve(id).Return(apperrors.ErrRegistrationNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/approve", map[string]interface{}{
		"id": id.String(),
	})

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestApproveConflict tests approving an already finalized registration
func (suite *ApprovalHandlerTestSuite) TestApproveConflict() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Approve(id).
		Return(apperrors.NewInvalidTransitionError("registration", "REJECTED"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/approve", map[string]interface{}{
		"id": id.String(),
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestReject tests rejecting with remarks
func (suite *ApprovalHandlerTestSuite) TestReject() {
	id := uuid.New()
	suite.mockService.EXPECT().Reject(id, "duplicate entry").Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/reject", map[string]interface{}{
		"id":      id.String(),
		"remarks": "duplicate entry",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestRejectConflict tests rejecting an already finalized registration
func (suite *ApprovalHandlerTestSuite) TestRejectConflict() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Reject(id, "").
		Return(apperrors.NewInvalidTransitionError("registration", "APPROVED"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/reject", map[string]interface{}{
		"id": id.String(),
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// Run the test suite
func TestApprovalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalHandlerTestSuite))
}
