package models

// EventType defines whether participants register individually or by team
type EventType string

const (
	EventTypeSolo EventType = "SOLO"
	EventTypeTeam EventType = "TEAM"
)

// ParticipationType mirrors EventType on the registration side
type ParticipationType string

const (
	ParticipationTypeSolo ParticipationType = "SOLO"
	ParticipationTypeTeam ParticipationType = "TEAM"
)

// RegistrationStatus defines the approval state of a registration
type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "PENDING"
	RegistrationStatusApproved RegistrationStatus = "APPROVED"
	RegistrationStatusRejected RegistrationStatus = "REJECTED"
)

// GovernmentIDType defines the accepted identity document types
type GovernmentIDType string

const (
	GovernmentIDTypeAadhaar        GovernmentIDType = "AADHAAR"
	GovernmentIDTypePAN            GovernmentIDType = "PAN"
	GovernmentIDTypeVoterID        GovernmentIDType = "VOTER_ID"
	GovernmentIDTypeDrivingLicense GovernmentIDType = "DRIVING_LICENSE"
	GovernmentIDTypePassport       GovernmentIDType = "PASSPORT"
	GovernmentIDTypeOther          GovernmentIDType = "OTHER"
)

// IsValid checks if the EventType is valid
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeSolo, EventTypeTeam:
		return true
	}
	return false
}

// IsValid checks if the ParticipationType is valid
func (t ParticipationType) IsValid() bool {
	switch t {
	case ParticipationTypeSolo, ParticipationTypeTeam:
		return true
	}
	return false
}

// IsValid checks if the RegistrationStatus is valid
func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusApproved, RegistrationStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions
func (s RegistrationStatus) IsTerminal() bool {
	return s == RegistrationStatusApproved || s == RegistrationStatusRejected
}

// IsValid checks if the GovernmentIDType is valid
func (t GovernmentIDType) IsValid() bool {
	switch t {
	case GovernmentIDTypeAadhaar, GovernmentIDTypePAN, GovernmentIDTypeVoterID,
		GovernmentIDTypeDrivingLicense, GovernmentIDTypePassport, GovernmentIDTypeOther:
		return true
	}
	return false
}
