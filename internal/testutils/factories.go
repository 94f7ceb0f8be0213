package testutils

import (
	"time"

	"event-registration-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenient use in tests
type FactorySet struct {
	Participant  *ParticipantFactory
	Event        *EventFactory
	Team         *TeamFactory
	Registration *RegistrationFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Participant:  NewParticipantFactory(),
		Event:        NewEventFactory(),
		Team:         NewTeamFactory(),
		Registration: NewRegistrationFactory(),
	}
}

// ParticipantFactory provides methods to create test Participant data
type ParticipantFactory struct{}

// NewParticipantFactory creates a new ParticipantFactory
func NewParticipantFactory() *ParticipantFactory {
	return &ParticipantFactory{}
}

// Create creates a test Participant with default values
func (f *ParticipantFactory) Create() *models.Participant {
	id := uuid.New()
	// Derive a unique 10-digit phone from the UUID to avoid conflicts
	phone := "9"
	for _, r := range id.String() {
		if r >= '0' && r <= '9' {
			phone += string(r)
		}
		if len(phone) == 10 {
			break
		}
	}
	for len(phone) < 10 {
		phone += "0"
	}

	return &models.Participant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:         "Asha Sen",
		PhoneNumber:      phone,
		GovernmentID:     "123456789012",
		GovernmentIDType: models.GovernmentIDTypeAadhaar,
		Email:            "asha.sen@test.com",
	}
}

// WithPhoneNumber sets a custom phone number for the participant
func (f *ParticipantFactory) WithPhoneNumber(phone string) *models.Participant {
	participant := f.Create()
	participant.PhoneNumber = phone
	return participant
}

// WithFullName sets a custom name for the participant
func (f *ParticipantFactory) WithFullName(name string) *models.Participant {
	participant := f.Create()
	participant.FullName = name
	return participant
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates a test solo Event with default values
func (f *EventFactory) Create() *models.Event {
	id := uuid.New()
	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Event " + id.String()[:8],
		Type:     models.EventTypeSolo,
		IsActive: true,
	}
}

// WithName sets a custom name for the event
func (f *EventFactory) WithName(name string) *models.Event {
	event := f.Create()
	event.Name = name
	return event
}

// WithType sets a custom type for the event
func (f *EventFactory) WithType(eventType models.EventType) *models.Event {
	event := f.Create()
	event.Type = eventType
	return event
}

// Inactive creates an event flagged as not active
func (f *EventFactory) Inactive() *models.Event {
	event := f.Create()
	event.IsActive = false
	return event
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team belonging to the given event
func (f *TeamFactory) Create(eventID uuid.UUID) *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Team " + id.String()[:8],
		EventID:  eventID,
		IsActive: true,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(eventID uuid.UUID, name string) *models.Team {
	team := f.Create(eventID)
	team.Name = name
	return team
}

// RegistrationFactory provides methods to create test Registration data
type RegistrationFactory struct{}

// NewRegistrationFactory creates a new RegistrationFactory
func NewRegistrationFactory() *RegistrationFactory {
	return &RegistrationFactory{}
}

// CreateSolo creates a pending solo registration
func (f *RegistrationFactory) CreateSolo(participantID, soloEventID uuid.UUID) *models.Registration {
	return &models.Registration{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ParticipantID: participantID,
		SoloEventID:   &soloEventID,
		Status:        models.RegistrationStatusPending,
	}
}

// CreateTeam creates a pending team registration
func (f *RegistrationFactory) CreateTeam(participantID, teamID uuid.UUID) *models.Registration {
	return &models.Registration{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ParticipantID: participantID,
		TeamID:        &teamID,
		Status:        models.RegistrationStatusPending,
	}
}

// WithStatus sets a custom status on a solo registration
func (f *RegistrationFactory) WithStatus(participantID, soloEventID uuid.UUID, status models.RegistrationStatus) *models.Registration {
	registration := f.CreateSolo(participantID, soloEventID)
	registration.Status = status
	return registration
}
