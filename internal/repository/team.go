package repository

import (
	"event-registration-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByEventID retrieves all teams owned by an event
func (r *TeamRepository) GetByEventID(eventID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("event_id = ?", eventID).Order("name ASC").Find(&teams).Error
	return teams, err
}

// UpsertByNameAndEvent finds a team by its (name, event) natural key or
// creates it; existing teams are left unchanged. Used by the seed loader.
func (r *TeamRepository) UpsertByNameAndEvent(team *models.Team) error {
	return r.db.Where("name = ? AND event_id = ?", team.Name, team.EventID).
		Attrs(models.Team{IsActive: true}).
		FirstOrCreate(team).Error
}
