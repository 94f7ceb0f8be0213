package repository

import (
	"event-registration-backend/internal/database/models"
	apperrors "event-registration-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository handles database operations for events and their teams
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event; any teams attached to the model are created
// with it in the same transaction.
func (r *EventRepository) Create(event *models.Event) error {
	if err := r.db.Create(event).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrEventExists
		}
		return err
	}
	return nil
}

// GetByID retrieves an event by ID with its teams
func (r *EventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("Teams").First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetAllWithTeams retrieves all events with nested teams, newest first
func (r *EventRepository) GetAllWithTeams() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Preload("Teams").Order("created_at DESC").Find(&events).Error
	return events, err
}

// GetActiveByType retrieves active events of the given type ordered by name.
// TEAM events carry their active teams, also ordered by name.
func (r *EventRepository) GetActiveByType(eventType models.EventType) ([]models.Event, error) {
	var events []models.Event
	query := r.db.Where("is_active = ? AND type = ?", true, eventType).Order("name ASC")
	if eventType == models.EventTypeTeam {
		query = query.Preload("Teams", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("teams.name ASC")
		})
	}
	err := query.Find(&events).Error
	return events, err
}

// UpdateWithTeams saves the event's scalar fields and reconciles its team set
// against teamNames in one transaction: teams missing from the list are
// deleted, new names are inserted, surviving teams keep their ids. A nil
// teamNames leaves the team set untouched.
func (r *EventRepository) UpdateWithTeams(event *models.Event, teamNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":      event.Name,
			"type":      event.Type,
			"is_active": event.IsActive,
		}
		if err := tx.Model(&models.Event{}).Where("id = ?", event.ID).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return apperrors.ErrEventExists
			}
			return err
		}
		if teamNames == nil {
			return nil
		}

		var existing []models.Team
		if err := tx.Where("event_id = ?", event.ID).Find(&existing).Error; err != nil {
			return err
		}

		wanted := make(map[string]bool, len(teamNames))
		for _, name := range teamNames {
			wanted[name] = true
		}

		current := make(map[string]bool, len(existing))
		for _, team := range existing {
			current[team.Name] = true
			if !wanted[team.Name] {
				if err := tx.Delete(&models.Team{}, "id = ?", team.ID).Error; err != nil {
					return err
				}
			}
		}

		for _, name := range teamNames {
			if current[name] {
				continue
			}
			team := models.Team{Name: name, EventID: event.ID, IsActive: true}
			if err := tx.Create(&team).Error; err != nil {
				if isUniqueViolation(err) {
					return apperrors.ErrTeamExists
				}
				return err
			}
		}

		return nil
	})
}

// DeleteWithTeams deletes the event's teams and then the event itself in one
// transaction so a midway failure cannot leave orphaned teams.
func (r *EventRepository) DeleteWithTeams(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Team{}, "event_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, "id = ?", id).Error
	})
}

// UpsertByNameAndType finds an event by its (name, type) natural key or
// creates it; existing events are left unchanged. Used by the seed loader.
func (r *EventRepository) UpsertByNameAndType(event *models.Event) error {
	return r.db.Where("name = ? AND type = ?", event.Name, event.Type).
		Attrs(models.Event{IsActive: true}).
		FirstOrCreate(event).Error
}
