package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"event-registration-backend/internal/database/models"
	apperrors "event-registration-backend/internal/errors"
	"event-registration-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RegistrationService handles the public registration workflow
type RegistrationService struct {
	participantRepo  repository.ParticipantRepositoryInterface
	registrationRepo repository.RegistrationRepositoryInterface
	validator        *validator.Validate
}

// Ensure RegistrationService implements RegistrationServiceInterface
var _ RegistrationServiceInterface = (*RegistrationService)(nil)

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	participantRepo repository.ParticipantRepositoryInterface,
	registrationRepo repository.RegistrationRepositoryInterface,
	validator *validator.Validate,
) *RegistrationService {
	return &RegistrationService{
		participantRepo:  participantRepo,
		registrationRepo: registrationRepo,
		validator:        validator,
	}
}

// SubmitRegistrationRequest represents the request to submit a registration
type SubmitRegistrationRequest struct {
	FullName          string                    `json:"full_name" validate:"required"`
	PhoneNumber       string                    `json:"phone_number" validate:"required,len=10,numeric"`
	GovernmentID      string                    `json:"government_id" validate:"required"`
	GovernmentIDType  models.GovernmentIDType   `json:"government_id_type" validate:"required"`
	Email             string                    `json:"email,omitempty"`
	ParticipationType models.ParticipationType  `json:"participation_type" validate:"required"`
	SoloEventID       *uuid.UUID                `json:"solo_event_id,omitempty" validate:"required_if=ParticipationType SOLO"`
	TeamID            *uuid.UUID                `json:"team_id,omitempty" validate:"required_if=ParticipationType TEAM"`
}

// SubmitRegistrationResponse represents the result of a submission
type SubmitRegistrationResponse struct {
	ID     uuid.UUID                 `json:"id"`
	Status models.RegistrationStatus `json:"status"`
}

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Field-level messages surfaced to the registration form
var submitFieldMessages = map[string]string{
	"FullName":          "Full Name is required",
	"PhoneNumber":       "Phone must be 10 digits",
	"GovernmentID":      "Government ID Number is required",
	"GovernmentIDType":  "Government ID Type is required",
	"ParticipationType": "Participation type is required",
	"SoloEventID":       "Solo Event is required",
	"TeamID":            "Team selection is required",
}

// Submit validates and creates a registration. The participant is upserted
// by phone number, then a PENDING registration is created referencing
// exactly one of the solo event or team. Validation fails fast: no writes
// happen on a validation error. The upsert is not rolled back if the second
// write fails; it is idempotent and safe to retry.
func (s *RegistrationService) Submit(req *SubmitRegistrationRequest) (*SubmitRegistrationResponse, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.GovernmentID = strings.TrimSpace(req.GovernmentID)

	if err := s.validator.Struct(req); err != nil {
		return nil, translateSubmitError(err)
	}
	if !phonePattern.MatchString(req.PhoneNumber) {
		return nil, apperrors.NewValidationError("phone_number", submitFieldMessages["PhoneNumber"])
	}
	if !req.GovernmentIDType.IsValid() {
		return nil, apperrors.NewValidationError("government_id_type", "Invalid government ID type")
	}
	if !req.ParticipationType.IsValid() {
		return nil, apperrors.NewValidationError("participation_type", "Invalid participation type")
	}

	participant := &models.Participant{
		FullName:         req.FullName,
		PhoneNumber:      req.PhoneNumber,
		GovernmentID:     req.GovernmentID,
		GovernmentIDType: req.GovernmentIDType,
		Email:            req.Email,
	}
	if err := s.participantRepo.UpsertByPhoneNumber(participant); err != nil {
		return nil, fmt.Errorf("failed to upsert participant: %w", err)
	}

	registration := &models.Registration{
		ParticipantID: participant.ID,
		Status:        models.RegistrationStatusPending,
	}
	// Exactly one of the two references is stored; a stray id for the other
	// participation type is dropped so mutual exclusivity always holds.
	if req.ParticipationType == models.ParticipationTypeSolo {
		registration.SoloEventID = req.SoloEventID
	} else {
		registration.TeamID = req.TeamID
	}

	if err := s.registrationRepo.Create(registration); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	return &SubmitRegistrationResponse{
		ID:     registration.ID,
		Status: registration.Status,
	}, nil
}

// translateSubmitError converts validator output into the form's
// field-level message for the first failing field.
func translateSubmitError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := fieldErrs[0].StructField()
		if msg, ok := submitFieldMessages[field]; ok {
			return apperrors.NewValidationError(fieldErrs[0].Field(), msg)
		}
	}
	return apperrors.NewValidationError("", "Invalid registration data")
}
