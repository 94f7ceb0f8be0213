package repository

import (
	"event-registration-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ParticipantRepository handles database operations for participants
type ParticipantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// UpsertByPhoneNumber creates the participant or, when the phone number is
// already registered, updates the stored identity fields in a single write.
// The participant ID is populated either way via RETURNING.
func (r *ParticipantRepository) UpsertByPhoneNumber(participant *models.Participant) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "phone_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "government_id", "government_id_type", "email", "updated_at",
		}),
	}).Create(participant).Error
}

// GetByID retrieves a participant by ID
func (r *ParticipantRepository) GetByID(id uuid.UUID) (*models.Participant, error) {
	var participant models.Participant
	err := r.db.First(&participant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// GetByPhoneNumber retrieves a participant by phone number
func (r *ParticipantRepository) GetByPhoneNumber(phoneNumber string) (*models.Participant, error) {
	var participant models.Participant
	err := r.db.First(&participant, "phone_number = ?", phoneNumber).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// Count returns the number of stored participants
func (r *ParticipantRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Participant{}).Count(&count).Error
	return count, err
}
