//go:build integration
// +build integration

package repository

import (
	"testing"

	"event-registration-backend/internal/database/models"
	"event-registration-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ParticipantRepositoryTestSuite tests the ParticipantRepository
type ParticipantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ParticipantRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ParticipantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewParticipantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ParticipantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ParticipantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ParticipantRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUpsertCreates tests that a new phone number creates a participant
func (suite *ParticipantRepositoryTestSuite) TestUpsertCreates() {
	participant := &models.Participant{
		FullName:         "Asha Sen",
		PhoneNumber:      "9876543210",
		GovernmentID:     "123456789012",
		GovernmentIDType: models.GovernmentIDTypeAadhaar,
	}

	err := suite.repo.UpsertByPhoneNumber(participant)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, participant.ID)

	count, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestUpsertUpdatesExisting tests that a repeated phone number updates the
// stored identity fields instead of creating a second row
func (suite *ParticipantRepositoryTestSuite) TestUpsertUpdatesExisting() {
	first := &models.Participant{
		FullName:         "Asha Sen",
		PhoneNumber:      "9876543210",
		GovernmentID:     "123456789012",
		GovernmentIDType: models.GovernmentIDTypeAadhaar,
	}
	suite.NoError(suite.repo.UpsertByPhoneNumber(first))

	second := &models.Participant{
		FullName:         "Asha Sen Gupta",
		PhoneNumber:      "9876543210",
		GovernmentID:     "ABCDE1234F",
		GovernmentIDType: models.GovernmentIDTypePAN,
		Email:            "asha@test.com",
	}
	suite.NoError(suite.repo.UpsertByPhoneNumber(second))

	count, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(1), count)

	stored, err := suite.repo.GetByPhoneNumber("9876543210")
	suite.NoError(err)
	suite.Equal(first.ID, stored.ID)
	suite.Equal("Asha Sen Gupta", stored.FullName)
	suite.Equal("ABCDE1234F", stored.GovernmentID)
	suite.Equal(models.GovernmentIDTypePAN, stored.GovernmentIDType)
	suite.Equal("asha@test.com", stored.Email)
}

// TestGetByIDNotFound tests looking up an unknown participant
func (suite *ParticipantRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestParticipantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ParticipantRepositoryTestSuite))
}
