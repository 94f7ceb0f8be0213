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

// ReceiptHandlerTestSuite defines the test suite for ReceiptHandler
type ReceiptHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockReceiptServiceInterface
	handler     *handlers.ReceiptHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ReceiptHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockReceiptServiceInterface(suite.ctrl)
	suite.handler = handlers.NewReceiptHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/admin/pdf", suite.handler.GenerateReceipt)
}

// TearDownTest cleans up after each test
func (suite *ReceiptHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGenerateReceipt tests the PDF attachment response for an {id} body
func (suite *ReceiptHandlerTestSuite) TestGenerateReceipt() {
	id := uuid.New()
	suite.mockService.EXPECT().Generate(id).Return(&service.ReceiptResult{
		FileName: "registration_" + id.String() + ".pdf",
		Content:  []byte("%PDF-1.3 test"),
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/pdf", map[string]interface{}{
		"id": id.String(),
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Equal(suite.T(),
		"attachment; filename=registration_"+id.String()+".pdf",
		recorder.Header().Get("Content-Disposition"))
	assert.Equal(suite.T(), "%PDF-1.3 test", recorder.Body.String())
}

// TestGenerateReceiptMissingID tests a body without the registration id
func (suite *ReceiptHandlerTestSuite) TestGenerateReceiptMissingID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/pdf", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestGenerateReceiptInvalidID tests a malformed registration id
func (suite *ReceiptHandlerTestSuite) TestGenerateReceiptInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/pdf", map[string]interface{}{
		"id": "nope",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid registration ID")
}

// TestGenerateReceiptNotFound tests an unknown registration
func (suite *ReceiptHandlerTestSuite) TestGenerateReceiptNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Generate(id).Return(nil, apperrors.ErrRegistrationNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/admin/pdf", map[string]interface{}{
		"id": id.String(),
	})

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// Run the test suite
func TestReceiptHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptHandlerTestSuite))
}
