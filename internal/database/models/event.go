package models

// Event represents a solo or team event participants register for.
// The (name, type) pair is the natural key used by the seed loader.
type Event struct {
	BaseModel
	Name     string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_events_name_type" validate:"required,min=1,max=100"`
	Type     EventType `json:"type" gorm:"size:10;not null;uniqueIndex:idx_events_name_type" validate:"required"`
	IsActive bool      `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:EventID"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
