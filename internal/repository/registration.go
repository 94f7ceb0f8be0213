package repository

import (
	"event-registration-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationRepository handles database operations for registrations
type RegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create creates a new registration
func (r *RegistrationRepository) Create(registration *models.Registration) error {
	return r.db.Create(registration).Error
}

// GetByID retrieves a registration by ID
func (r *RegistrationRepository) GetByID(id uuid.UUID) (*models.Registration, error) {
	var registration models.Registration
	err := r.db.First(&registration, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// GetByIDWithDetails retrieves a registration resolved with its participant,
// solo event, and team with owning event
func (r *RegistrationRepository) GetByIDWithDetails(id uuid.UUID) (*models.Registration, error) {
	var registration models.Registration
	err := r.db.
		Preload("Participant").
		Preload("SoloEvent").
		Preload("Team").
		Preload("Team.Event").
		First(&registration, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// ListPending retrieves all PENDING registrations, newest first, resolved
func (r *RegistrationRepository) ListPending() ([]models.Registration, error) {
	return r.listByStatus(models.RegistrationStatusPending, "created_at DESC")
}

// ListApproved retrieves all APPROVED registrations, most recently updated first, resolved
func (r *RegistrationRepository) ListApproved() ([]models.Registration, error) {
	return r.listByStatus(models.RegistrationStatusApproved, "updated_at DESC")
}

func (r *RegistrationRepository) listByStatus(status models.RegistrationStatus, order string) ([]models.Registration, error) {
	var registrations []models.Registration
	err := r.db.
		Preload("Participant").
		Preload("SoloEvent").
		Preload("Team").
		Preload("Team.Event").
		Where("status = ?", status).
		Order(order).
		Find(&registrations).Error
	return registrations, err
}

// FinalizePending moves a PENDING registration to the given terminal status
// as a single conditional update. It reports false when no pending row
// matched, i.e. the registration is unknown or already finalized.
func (r *RegistrationRepository) FinalizePending(id uuid.UUID, status models.RegistrationStatus, remarks string) (bool, error) {
	updates := map[string]interface{}{"status": status}
	if remarks != "" {
		updates["remarks"] = remarks
	}
	result := r.db.Model(&models.Registration{}).
		Where("id = ? AND status = ?", id, models.RegistrationStatusPending).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
