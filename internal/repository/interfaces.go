package repository

import (
	"event-registration-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ParticipantRepositoryInterface defines the interface for participant repository operations
type ParticipantRepositoryInterface interface {
	UpsertByPhoneNumber(participant *models.Participant) error
	GetByID(id uuid.UUID) (*models.Participant, error)
	GetByPhoneNumber(phoneNumber string) (*models.Participant, error)
	Count() (int64, error)
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	GetAllWithTeams() ([]models.Event, error)
	GetActiveByType(eventType models.EventType) ([]models.Event, error)
	UpdateWithTeams(event *models.Event, teamNames []string) error
	DeleteWithTeams(id uuid.UUID) error
	UpsertByNameAndType(event *models.Event) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByEventID(eventID uuid.UUID) ([]models.Team, error)
	UpsertByNameAndEvent(team *models.Team) error
}

// RegistrationRepositoryInterface defines the interface for registration repository operations
type RegistrationRepositoryInterface interface {
	Create(registration *models.Registration) error
	GetByID(id uuid.UUID) (*models.Registration, error)
	GetByIDWithDetails(id uuid.UUID) (*models.Registration, error)
	ListPending() ([]models.Registration, error)
	ListApproved() ([]models.Registration, error)
	FinalizePending(id uuid.UUID, status models.RegistrationStatus, remarks string) (bool, error)
}
