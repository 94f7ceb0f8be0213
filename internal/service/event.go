package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"event-registration-backend/internal/database/models"
	apperrors "event-registration-backend/internal/errors"
	"event-registration-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status value the admin form sends for an active event
const eventStatusPublished = "Published"

// EventService handles business logic for events and their teams
type EventService struct {
	eventRepo repository.EventRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// Ensure EventService implements EventServiceInterface
var _ EventServiceInterface = (*EventService)(nil)

// NewEventService creates a new event service
func NewEventService(
	eventRepo repository.EventRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	validator *validator.Validate,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Name   string           `json:"name" validate:"required"`
	Type   models.EventType `json:"type" validate:"required"`
	Status string           `json:"status"`
	Teams  []string         `json:"teams"`
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Name   string           `json:"name" validate:"required"`
	Type   models.EventType `json:"type" validate:"required"`
	Status string           `json:"status"`
	Teams  []string         `json:"teams"`
}

// Field-level messages surfaced to the admin event form
var eventFieldMessages = map[string]string{
	"Name": "Event name required",
	"Type": "Event type required",
}

// translateEventError converts validator output into the form's
// field-level message for the first failing field.
func translateEventError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := fieldErrs[0].StructField()
		if msg, ok := eventFieldMessages[field]; ok {
			return apperrors.NewValidationError(fieldErrs[0].Field(), msg)
		}
	}
	return apperrors.NewValidationError("", "Invalid event data")
}

// TeamResponse represents a single team in API responses
type TeamResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	EventID  uuid.UUID `json:"event_id"`
	IsActive bool      `json:"is_active"`
}

// EventResponse represents a single event in API responses
type EventResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Type      models.EventType `json:"type"`
	IsActive  bool             `json:"is_active"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Teams     []TeamResponse   `json:"teams,omitempty"`
}

// EventListResponse represents the admin event listing
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// PublicEventListResponse represents the public listing of active events
type PublicEventListResponse struct {
	SoloEvents []EventResponse `json:"solo_events"`
	TeamEvents []EventResponse `json:"team_events"`
}

// ListEvents retrieves all events with nested teams, newest first
func (s *EventService) ListEvents() ([]EventResponse, error) {
	events, err := s.eventRepo.GetAllWithTeams()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]EventResponse, len(events))
	for i, event := range events {
		responses[i] = s.toResponse(&event)
	}
	return responses, nil
}

// ListPublicEvents retrieves active events split into solo and team lists,
// ordered by name; team events carry their active teams.
func (s *EventService) ListPublicEvents() (*PublicEventListResponse, error) {
	soloEvents, err := s.eventRepo.GetActiveByType(models.EventTypeSolo)
	if err != nil {
		return nil, fmt.Errorf("failed to list solo events: %w", err)
	}
	teamEvents, err := s.eventRepo.GetActiveByType(models.EventTypeTeam)
	if err != nil {
		return nil, fmt.Errorf("failed to list team events: %w", err)
	}

	resp := &PublicEventListResponse{
		SoloEvents: make([]EventResponse, len(soloEvents)),
		TeamEvents: make([]EventResponse, len(teamEvents)),
	}
	for i, event := range soloEvents {
		resp.SoloEvents[i] = s.toResponse(&event)
	}
	for i, event := range teamEvents {
		resp.TeamEvents[i] = s.toResponse(&event)
	}
	return resp, nil
}

// CreateEvent creates an event; for TEAM events the non-empty team names are
// created atomically with the event.
func (s *EventService) CreateEvent(req *CreateEventRequest) (*EventResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, translateEventError(err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "Invalid event type")
	}

	event := &models.Event{
		Name:     req.Name,
		Type:     req.Type,
		IsActive: req.Status == eventStatusPublished,
	}
	if req.Type == models.EventTypeTeam {
		for _, name := range cleanTeamNames(req.Teams) {
			event.Teams = append(event.Teams, models.Team{Name: name, IsActive: true})
		}
	}

	if err := s.eventRepo.Create(event); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	resp := s.toResponse(event)
	return &resp, nil
}

// UpdateEvent updates the event's scalar fields; for TEAM events the team
// set is reconciled against the submitted names, keeping surviving teams and
// their ids intact.
func (s *EventService) UpdateEvent(id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, translateEventError(err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "Invalid event type")
	}

	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	event.Name = req.Name
	event.Type = req.Type
	event.IsActive = req.Status == eventStatusPublished

	var teamNames []string
	if req.Type == models.EventTypeTeam {
		teamNames = cleanTeamNames(req.Teams)
	}

	if err := s.eventRepo.UpdateWithTeams(event, teamNames); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	updated, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload event: %w", err)
	}
	resp := s.toResponse(updated)
	return &resp, nil
}

// DeleteEvent deletes the event together with all teams it owns
func (s *EventService) DeleteEvent(id uuid.UUID) error {
	if _, err := s.eventRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event: %w", err)
	}

	if err := s.eventRepo.DeleteWithTeams(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// cleanTeamNames trims entries and drops empty ones
func cleanTeamNames(names []string) []string {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			cleaned = append(cleaned, name)
		}
	}
	return cleaned
}

// toResponse converts an Event model to API response
func (s *EventService) toResponse(event *models.Event) EventResponse {
	resp := EventResponse{
		ID:        event.ID,
		Name:      event.Name,
		Type:      event.Type,
		IsActive:  event.IsActive,
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
	}
	for _, team := range event.Teams {
		resp.Teams = append(resp.Teams, TeamResponse{
			ID:       team.ID,
			Name:     team.Name,
			EventID:  team.EventID,
			IsActive: team.IsActive,
		})
	}
	return resp
}
