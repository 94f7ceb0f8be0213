//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"event-registration-backend/internal/database/models"
	"event-registration-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RegistrationRepositoryTestSuite tests the RegistrationRepository
type RegistrationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite   *testutils.BaseTestSuite
	repo            *RegistrationRepository
	participantRepo *ParticipantRepository
	eventRepo       *EventRepository
	teamRepo        *TeamRepository
	factories       *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *RegistrationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRegistrationRepository(suite.baseTestSuite.DB)
	suite.participantRepo = NewParticipantRepository(suite.baseTestSuite.DB)
	suite.eventRepo = NewEventRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RegistrationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RegistrationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RegistrationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createSoloRegistration persists a participant, a solo event, and a pending
// registration linking them
func (suite *RegistrationRepositoryTestSuite) createSoloRegistration() *models.Registration {
	participant := suite.factories.Participant.Create()
	suite.NoError(suite.participantRepo.UpsertByPhoneNumber(participant))

	event := suite.factories.Event.Create()
	suite.NoError(suite.eventRepo.Create(event))

	registration := suite.factories.Registration.CreateSolo(participant.ID, event.ID)
	suite.NoError(suite.repo.Create(registration))
	return registration
}

// TestCreateAndGetByID tests basic persistence
func (suite *RegistrationRepositoryTestSuite) TestCreateAndGetByID() {
	registration := suite.createSoloRegistration()

	stored, err := suite.repo.GetByID(registration.ID)
	suite.NoError(err)
	suite.Equal(registration.ID, stored.ID)
	suite.Equal(models.RegistrationStatusPending, stored.Status)
}

// TestGetByIDWithDetails tests that associations are resolved
func (suite *RegistrationRepositoryTestSuite) TestGetByIDWithDetails() {
	participant := suite.factories.Participant.Create()
	suite.NoError(suite.participantRepo.UpsertByPhoneNumber(participant))

	event := &models.Event{
		Name: "Group Dance", Type: models.EventTypeTeam, IsActive: true,
		Teams: []models.Team{{Name: "Nritya Crew", IsActive: true}},
	}
	suite.NoError(suite.eventRepo.Create(event))
	teams, err := suite.teamRepo.GetByEventID(event.ID)
	suite.NoError(err)
	suite.Require().Len(teams, 1)

	registration := suite.factories.Registration.CreateTeam(participant.ID, teams[0].ID)
	suite.NoError(suite.repo.Create(registration))

	stored, err := suite.repo.GetByIDWithDetails(registration.ID)
	suite.NoError(err)
	suite.Equal(participant.FullName, stored.Participant.FullName)
	suite.Require().NotNil(stored.Team)
	suite.Equal("Nritya Crew", stored.Team.Name)
	suite.Equal("Group Dance", stored.Team.Event.Name)
	suite.Nil(stored.SoloEvent)
}

// TestListPendingFiltersAndOrders tests the pending queue query
func (suite *RegistrationRepositoryTestSuite) TestListPendingFiltersAndOrders() {
	participant := suite.factories.Participant.Create()
	suite.NoError(suite.participantRepo.UpsertByPhoneNumber(participant))
	event := suite.factories.Event.Create()
	suite.NoError(suite.eventRepo.Create(event))

	older := suite.factories.Registration.CreateSolo(participant.ID, event.ID)
	older.CreatedAt = time.Now().Add(-time.Hour)
	suite.NoError(suite.repo.Create(older))

	newer := suite.factories.Registration.CreateSolo(participant.ID, event.ID)
	suite.NoError(suite.repo.Create(newer))

	approved := suite.factories.Registration.WithStatus(participant.ID, event.ID, models.RegistrationStatusApproved)
	suite.NoError(suite.repo.Create(approved))

	pending, err := suite.repo.ListPending()
	suite.NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(newer.ID, pending[0].ID)
	suite.Equal(older.ID, pending[1].ID)
	suite.Equal(participant.FullName, pending[0].Participant.FullName)
}

// TestListApproved tests the approved listing filter
func (suite *RegistrationRepositoryTestSuite) TestListApproved() {
	participant := suite.factories.Participant.Create()
	suite.NoError(suite.participantRepo.UpsertByPhoneNumber(participant))
	event := suite.factories.Event.Create()
	suite.NoError(suite.eventRepo.Create(event))

	suite.NoError(suite.repo.Create(suite.factories.Registration.CreateSolo(participant.ID, event.ID)))
	approved := suite.factories.Registration.WithStatus(participant.ID, event.ID, models.RegistrationStatusApproved)
	suite.NoError(suite.repo.Create(approved))

	list, err := suite.repo.ListApproved()
	suite.NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(approved.ID, list[0].ID)
	suite.Equal(models.RegistrationStatusApproved, list[0].Status)
}

// TestFinalizePending tests the conditional status transition
func (suite *RegistrationRepositoryTestSuite) TestFinalizePending() {
	registration := suite.createSoloRegistration()

	moved, err := suite.repo.FinalizePending(registration.ID, models.RegistrationStatusApproved, "")
	suite.NoError(err)
	suite.True(moved)

	stored, err := suite.repo.GetByID(registration.ID)
	suite.NoError(err)
	suite.Equal(models.RegistrationStatusApproved, stored.Status)
	suite.Empty(stored.Remarks)

	// a second attempt finds no pending row
	moved, err = suite.repo.FinalizePending(registration.ID, models.RegistrationStatusRejected, "too late")
	suite.NoError(err)
	suite.False(moved)

	stored, err = suite.repo.GetByID(registration.ID)
	suite.NoError(err)
	suite.Equal(models.RegistrationStatusApproved, stored.Status)
}

// TestFinalizePendingWithRemarks tests that rejection remarks are persisted
func (suite *RegistrationRepositoryTestSuite) TestFinalizePendingWithRemarks() {
	registration := suite.createSoloRegistration()

	moved, err := suite.repo.FinalizePending(registration.ID, models.RegistrationStatusRejected, "duplicate entry")
	suite.NoError(err)
	suite.True(moved)

	stored, err := suite.repo.GetByID(registration.ID)
	suite.NoError(err)
	suite.Equal(models.RegistrationStatusRejected, stored.Status)
	suite.Equal("duplicate entry", stored.Remarks)
}

// TestFinalizePendingUnknownID tests finalizing a registration that does not exist
func (suite *RegistrationRepositoryTestSuite) TestFinalizePendingUnknownID() {
	moved, err := suite.repo.FinalizePending(uuid.New(), models.RegistrationStatusApproved, "")
	suite.NoError(err)
	suite.False(moved)
}

// TestGetByIDNotFound tests looking up an unknown registration
func (suite *RegistrationRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestRegistrationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationRepositoryTestSuite))
}
