package models

// Participant represents a person registering for events, keyed by phone number
type Participant struct {
	BaseModel
	FullName         string           `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	PhoneNumber      string           `json:"phone_number" gorm:"size:10;not null;uniqueIndex" validate:"required,len=10,numeric"`
	GovernmentID     string           `json:"government_id" gorm:"size:40;not null" validate:"required,max=40"`
	GovernmentIDType GovernmentIDType `json:"government_id_type" gorm:"size:20;not null" validate:"required"`
	Email            string           `json:"email,omitempty" gorm:"size:100" validate:"omitempty,email,max=100"`

	// Relationships
	Registrations []Registration `json:"registrations,omitempty" gorm:"foreignKey:ParticipantID"`
}

// TableName returns the table name for Participant
func (Participant) TableName() string {
	return "participants"
}
