package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this event"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error with a human-readable message
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidTransitionError represents an attempt to mutate a registration
// that has already reached a terminal status
type InvalidTransitionError struct {
	Entity string
	Status string
}

func (e *InvalidTransitionError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s is already %s and cannot be changed", e.Entity, e.Status)
	}
	return fmt.Sprintf("%s is no longer pending and cannot be changed", e.Entity)
}

// Is enables errors.Is() comparison for InvalidTransitionError
func (e *InvalidTransitionError) Is(target error) bool {
	t, ok := target.(*InvalidTransitionError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrParticipantNotFound  = &NotFoundError{Entity: "participant"}
	ErrEventNotFound        = &NotFoundError{Entity: "event"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrRegistrationNotFound = &NotFoundError{Entity: "registration"}
)

// Already Exists Errors
var (
	ErrEventExists = &AlreadyExistsError{Entity: "event", Context: "with this name and type"}
	ErrTeamExists  = &AlreadyExistsError{Entity: "team", Context: "with this name for this event"}
)

// Workflow Errors
var (
	ErrRegistrationFinalized = &InvalidTransitionError{Entity: "registration"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidTransitionError creates an InvalidTransitionError carrying the current status
func NewInvalidTransitionError(entity, status string) error {
	return &InvalidTransitionError{Entity: entity, Status: status}
}
