package service_test

import (
	"testing"

	"event-registration-backend/internal/database/models"
	apperrors "event-registration-backend/internal/errors"
	"event-registration-backend/internal/mocks"
	"event-registration-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RegistrationServiceTestSuite defines the test suite for RegistrationService
type RegistrationServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockParticipantRepo  *mocks.MockParticipantRepositoryInterface
	mockRegistrationRepo *mocks.MockRegistrationRepositoryInterface
	registrationService  *service.RegistrationService
}

// SetupTest sets up the test suite
func (suite *RegistrationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockParticipantRepo = mocks.NewMockParticipantRepositoryInterface(suite.ctrl)
	suite.mockRegistrationRepo = mocks.NewMockRegistrationRepositoryInterface(suite.ctrl)
	suite.registrationService = service.NewRegistrationService(
		suite.mockParticipantRepo,
		suite.mockRegistrationRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *RegistrationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RegistrationServiceTestSuite) validSoloRequest() *service.SubmitRegistrationRequest {
	soloEventID := uuid.New()
	return &service.SubmitRegistrationRequest{
		FullName:          "Asha Sen",
		PhoneNumber:       "9876543210",
		GovernmentID:      "123456789012",
		GovernmentIDType:  models.GovernmentIDTypeAadhaar,
		Email:             "asha.sen@test.com",
		ParticipationType: models.ParticipationTypeSolo,
		SoloEventID:       &soloEventID,
	}
}

// TestSubmitSolo tests a valid solo submission
func (suite *RegistrationServiceTestSuite) TestSubmitSolo() {
	req := suite.validSoloRequest()
	participantID := uuid.New()

	suite.mockParticipantRepo.EXPECT().
		UpsertByPhoneNumber(gomock.Any()).
		DoAndReturn(func(p *models.Participant) error {
			assert.Equal(suite.T(), req.FullName, p.FullName)
			assert.Equal(suite.T(), req.PhoneNumber, p.PhoneNumber)
			p.ID = participantID
			return nil
		})
	suite.mockRegistrationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(r *models.Registration) error {
			assert.Equal(suite.T(), participantID, r.ParticipantID)
			assert.Equal(suite.T(), models.RegistrationStatusPending, r.Status)
			assert.Equal(suite.T(), *req.SoloEventID, *r.SoloEventID)
			assert.Nil(suite.T(), r.TeamID)
			r.ID = uuid.New()
			return nil
		})

	resp, err := suite.registrationService.Submit(req)
	suite.NoError(err)
	suite.NotNil(resp)
	suite.Equal(models.RegistrationStatusPending, resp.Status)
	suite.NotEqual(uuid.Nil, resp.ID)
}

// TestSubmitTeam tests a valid team submission
func (suite *RegistrationServiceTestSuite) TestSubmitTeam() {
	teamID := uuid.New()
	req := suite.validSoloRequest()
	req.ParticipationType = models.ParticipationTypeTeam
	req.SoloEventID = nil
	req.TeamID = &teamID

	suite.mockParticipantRepo.EXPECT().UpsertByPhoneNumber(gomock.Any()).Return(nil)
	suite.mockRegistrationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(r *models.Registration) error {
			assert.Equal(suite.T(), teamID, *r.TeamID)
			assert.Nil(suite.T(), r.SoloEventID)
			return nil
		})

	resp, err := suite.registrationService.Submit(req)
	suite.NoError(err)
	suite.NotNil(resp)
}

// TestSubmitDropsStrayReference tests that a solo submission ignores a stray team id
func (suite *RegistrationServiceTestSuite) TestSubmitDropsStrayReference() {
	strayTeamID := uuid.New()
	req := suite.validSoloRequest()
	req.TeamID = &strayTeamID

	suite.mockParticipantRepo.EXPECT().UpsertByPhoneNumber(gomock.Any()).Return(nil)
	suite.mockRegistrationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(r *models.Registration) error {
			assert.NotNil(suite.T(), r.SoloEventID)
			assert.Nil(suite.T(), r.TeamID)
			return nil
		})

	_, err := suite.registrationService.Submit(req)
	suite.NoError(err)
}

// TestSubmitValidation tests field-level validation messages; no repository
// calls happen on a validation failure.
func (suite *RegistrationServiceTestSuite) TestSubmitValidation() {
	testCases := []struct {
		name     string
		mutate   func(*service.SubmitRegistrationRequest)
		errorMsg string
	}{
		{
			name:     "Missing full name",
			mutate:   func(r *service.SubmitRegistrationRequest) { r.FullName = "   " },
			errorMsg: "Full Name is required",
		},
		{
			name:     "Short phone",
			mutate:   func(r *service.SubmitRegistrationRequest) { r.PhoneNumber = "12345" },
			errorMsg: "Phone must be 10 digits",
		},
		{
			name:     "Non-numeric phone",
			mutate:   func(r *service.SubmitRegistrationRequest) { r.PhoneNumber = "98765abcde" },
			errorMsg: "Phone must be 10 digits",
		},
		{
			name:     "Missing government ID",
			mutate:   func(r *service.SubmitRegistrationRequest) { r.GovernmentID = "" },
			errorMsg: "Government ID Number is required",
		},
		{
			name:     "Missing government ID type",
			mutate:   func(r *service.SubmitRegistrationRequest) { r.GovernmentIDType = "" },
			errorMsg: "Government ID Type is required",
		},
		{
			name:     "Missing solo event",
			mutate:   func(r *service.SubmitRegistrationRequest) { r.SoloEventID = nil },
			errorMsg: "Solo Event is required",
		},
		{
			name: "Missing team",
			mutate: func(r *service.SubmitRegistrationRequest) {
				r.ParticipationType = models.ParticipationTypeTeam
				r.SoloEventID = nil
				r.TeamID = nil
			},
			errorMsg: "Team selection is required",
		},
		{
			name:     "Invalid government ID type",
			mutate:   func(r *service.SubmitRegistrationRequest) { r.GovernmentIDType = "RATION_CARD" },
			errorMsg: "Invalid government ID type",
		},
		{
			name: "Invalid participation type",
			mutate: func(r *service.SubmitRegistrationRequest) {
				r.ParticipationType = "DUO"
				r.SoloEventID = nil
			},
			errorMsg: "Invalid participation data",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := suite.validSoloRequest()
			tc.mutate(req)

			resp, err := suite.registrationService.Submit(req)
			assert.Nil(t, resp)
			assert.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

// TestSubmitValidationMessage tests the exact message surfaced to the form
func (suite *RegistrationServiceTestSuite) TestSubmitValidationMessage() {
	req := suite.validSoloRequest()
	req.FullName = ""

	_, err := suite.registrationService.Submit(req)
	suite.Error(err)
	var validationErr *apperrors.ValidationError
	suite.ErrorAs(err, &validationErr)
	suite.Equal("Full Name is required", validationErr.Message)
}

// Run the test suite
func TestRegistrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceTestSuite))
}
