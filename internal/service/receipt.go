package service

import (
	"errors"
	"fmt"

	apperrors "event-registration-backend/internal/errors"
	"event-registration-backend/internal/pdf"
	"event-registration-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceiptService resolves a registration and renders its approval receipt
type ReceiptService struct {
	registrationRepo repository.RegistrationRepositoryInterface
}

// Ensure ReceiptService implements ReceiptServiceInterface
var _ ReceiptServiceInterface = (*ReceiptService)(nil)

// NewReceiptService creates a new receipt service
func NewReceiptService(registrationRepo repository.RegistrationRepositoryInterface) *ReceiptService {
	return &ReceiptService{registrationRepo: registrationRepo}
}

// ReceiptResult carries the rendered PDF and its download filename
type ReceiptResult struct {
	FileName string
	Content  []byte
}

// Generate resolves the registration with its participant, event and team
// and renders the fixed-layout PDF receipt.
func (s *ReceiptService) Generate(id uuid.UUID) (*ReceiptResult, error) {
	registration, err := s.registrationRepo.GetByIDWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	receipt := &pdf.Receipt{ApprovedAt: registration.UpdatedAt}
	if registration.Participant != nil {
		receipt.ParticipantName = registration.Participant.FullName
		receipt.GovernmentIDType = string(registration.Participant.GovernmentIDType)
		receipt.MaskedGovernmentID = MaskGovernmentID(registration.Participant.GovernmentID)
	}
	if registration.SoloEvent != nil {
		receipt.EventName = registration.SoloEvent.Name
	}
	if registration.Team != nil {
		receipt.TeamName = registration.Team.Name
		if registration.Team.Event != nil {
			receipt.EventName = registration.Team.Event.Name
		}
	}

	content, err := pdf.RenderReceipt(receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}

	return &ReceiptResult{
		FileName: fmt.Sprintf("registration_%s.pdf", registration.ID),
		Content:  content,
	}, nil
}
