package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RegistrationServiceInterface defines the interface for the registration workflow
type RegistrationServiceInterface interface {
	Submit(req *SubmitRegistrationRequest) (*SubmitRegistrationResponse, error)
}

// EventServiceInterface defines the interface for the event/team admin workflow
type EventServiceInterface interface {
	ListEvents() ([]EventResponse, error)
	ListPublicEvents() (*PublicEventListResponse, error)
	CreateEvent(req *CreateEventRequest) (*EventResponse, error)
	UpdateEvent(id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error)
	DeleteEvent(id uuid.UUID) error
	SeedFixtures() error
}

// ApprovalServiceInterface defines the interface for the approval/rejection workflow
type ApprovalServiceInterface interface {
	ListPending() ([]RegistrationDetail, error)
	ListApproved() ([]RegistrationDetail, error)
	Approve(id uuid.UUID) error
	Reject(id uuid.UUID, remarks string) error
}

// ReceiptServiceInterface defines the interface for receipt generation
type ReceiptServiceInterface interface {
	Generate(id uuid.UUID) (*ReceiptResult, error)
}
