package models

import (
	"github.com/google/uuid"
)

// Registration links a participant to exactly one of a solo event or a team.
// Invariant: SoloEventID and TeamID are mutually exclusive; one is always set.
type Registration struct {
	BaseModel
	ParticipantID uuid.UUID          `json:"participant_id" gorm:"type:uuid;not null;index" validate:"required"`
	SoloEventID   *uuid.UUID         `json:"solo_event_id,omitempty" gorm:"type:uuid;index"`
	TeamID        *uuid.UUID         `json:"team_id,omitempty" gorm:"type:uuid;index"`
	Status        RegistrationStatus `json:"status" gorm:"size:10;not null;default:'PENDING';index"`
	Remarks       string             `json:"remarks,omitempty" gorm:"size:500" validate:"max=500"`

	// Relationships
	Participant *Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
	SoloEvent   *Event       `json:"solo_event,omitempty" gorm:"foreignKey:SoloEventID"`
	Team        *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Registration
func (Registration) TableName() string {
	return "registrations"
}
