package models

import (
	"github.com/google/uuid"
)

// Team represents a named team owned by a TEAM event
type Team struct {
	BaseModel
	Name     string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_teams_name_event" validate:"required,min=1,max=100"`
	EventID  uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_teams_name_event" validate:"required"`
	IsActive bool      `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
