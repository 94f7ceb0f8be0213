package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"event-registration-backend/internal/database/models"
	apperrors "event-registration-backend/internal/errors"
	"event-registration-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApprovalService handles the admin approval/rejection workflow
type ApprovalService struct {
	registrationRepo repository.RegistrationRepositoryInterface
}

// Ensure ApprovalService implements ApprovalServiceInterface
var _ ApprovalServiceInterface = (*ApprovalService)(nil)

// NewApprovalService creates a new approval service
func NewApprovalService(registrationRepo repository.RegistrationRepositoryInterface) *ApprovalService {
	return &ApprovalService{registrationRepo: registrationRepo}
}

// ParticipantDetail is the participant as shown to admins; the government ID
// is masked for display and never leaves raw
type ParticipantDetail struct {
	ID               uuid.UUID               `json:"id"`
	FullName         string                  `json:"full_name"`
	PhoneNumber      string                  `json:"phone_number"`
	GovernmentID     string                  `json:"government_id"`
	GovernmentIDType models.GovernmentIDType `json:"government_id_type"`
	Email            string                  `json:"email,omitempty"`
}

// TeamDetail is a team with its owning event, as resolved for admin review
type TeamDetail struct {
	ID    uuid.UUID      `json:"id"`
	Name  string         `json:"name"`
	Event *EventResponse `json:"event,omitempty"`
}

// RegistrationDetail is a registration resolved with its participant and
// the solo event or team it references
type RegistrationDetail struct {
	ID          uuid.UUID                 `json:"id"`
	Status      models.RegistrationStatus `json:"status"`
	Remarks     string                    `json:"remarks,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
	Participant *ParticipantDetail        `json:"participant,omitempty"`
	SoloEvent   *EventResponse            `json:"solo_event,omitempty"`
	Team        *TeamDetail               `json:"team,omitempty"`
}

// RegistrationListResponse represents an admin registration listing
type RegistrationListResponse struct {
	Registrations []RegistrationDetail `json:"registrations"`
}

// ListPending retrieves all pending registrations, newest first
func (s *ApprovalService) ListPending() ([]RegistrationDetail, error) {
	registrations, err := s.registrationRepo.ListPending()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending registrations: %w", err)
	}
	return s.toDetails(registrations), nil
}

// ListApproved retrieves all approved registrations, most recently updated first
func (s *ApprovalService) ListApproved() ([]RegistrationDetail, error) {
	registrations, err := s.registrationRepo.ListApproved()
	if err != nil {
		return nil, fmt.Errorf("failed to list approved registrations: %w", err)
	}
	return s.toDetails(registrations), nil
}

// Approve moves a pending registration to APPROVED. A registration already
// in a terminal state is not re-applied; the caller gets a transition error.
func (s *ApprovalService) Approve(id uuid.UUID) error {
	return s.finalize(id, models.RegistrationStatusApproved, "")
}

// Reject moves a pending registration to REJECTED, persisting the remarks
// on the registration for audit.
func (s *ApprovalService) Reject(id uuid.UUID, remarks string) error {
	return s.finalize(id, models.RegistrationStatusRejected, strings.TrimSpace(remarks))
}

func (s *ApprovalService) finalize(id uuid.UUID, status models.RegistrationStatus, remarks string) error {
	ok, err := s.registrationRepo.FinalizePending(id, status, remarks)
	if err != nil {
		return fmt.Errorf("failed to update registration status: %w", err)
	}
	if ok {
		return nil
	}

	// No pending row matched: distinguish unknown id from a finalized one
	registration, err := s.registrationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRegistrationNotFound
		}
		return fmt.Errorf("failed to get registration: %w", err)
	}
	return apperrors.NewInvalidTransitionError("registration", string(registration.Status))
}

func (s *ApprovalService) toDetails(registrations []models.Registration) []RegistrationDetail {
	details := make([]RegistrationDetail, len(registrations))
	for i, registration := range registrations {
		details[i] = s.toDetail(&registration)
	}
	return details
}

func (s *ApprovalService) toDetail(registration *models.Registration) RegistrationDetail {
	detail := RegistrationDetail{
		ID:        registration.ID,
		Status:    registration.Status,
		Remarks:   registration.Remarks,
		CreatedAt: registration.CreatedAt,
		UpdatedAt: registration.UpdatedAt,
	}
	if registration.Participant != nil {
		detail.Participant = &ParticipantDetail{
			ID:               registration.Participant.ID,
			FullName:         registration.Participant.FullName,
			PhoneNumber:      registration.Participant.PhoneNumber,
			GovernmentID:     MaskGovernmentID(registration.Participant.GovernmentID),
			GovernmentIDType: registration.Participant.GovernmentIDType,
			Email:            registration.Participant.Email,
		}
	}
	if registration.SoloEvent != nil {
		event := EventResponse{
			ID:        registration.SoloEvent.ID,
			Name:      registration.SoloEvent.Name,
			Type:      registration.SoloEvent.Type,
			IsActive:  registration.SoloEvent.IsActive,
			CreatedAt: registration.SoloEvent.CreatedAt,
			UpdatedAt: registration.SoloEvent.UpdatedAt,
		}
		detail.SoloEvent = &event
	}
	if registration.Team != nil {
		team := TeamDetail{
			ID:   registration.Team.ID,
			Name: registration.Team.Name,
		}
		if registration.Team.Event != nil {
			event := EventResponse{
				ID:        registration.Team.Event.ID,
				Name:      registration.Team.Event.Name,
				Type:      registration.Team.Event.Type,
				IsActive:  registration.Team.Event.IsActive,
				CreatedAt: registration.Team.Event.CreatedAt,
				UpdatedAt: registration.Team.Event.UpdatedAt,
			}
			team.Event = &event
		}
		detail.Team = &team
	}
	return detail
}

// MaskGovernmentID replaces every character of a government ID except the
// last four with '*'. Display-only; stored data is never masked.
func MaskGovernmentID(id string) string {
	runes := []rune(id)
	if len(runes) <= 4 {
		return id
	}
	masked := make([]rune, len(runes))
	for i := range runes {
		if i < len(runes)-4 {
			masked[i] = '*'
		} else {
			masked[i] = runes[i]
		}
	}
	return string(masked)
}
