// Package model holds the shared domain types for the teamup service.
package model

import "time"

// EventType classifies what an intent card is recruiting for.
type EventType string

const (
	EventHackathon EventType = "Hackathon"
	EventSports    EventType = "Sports"
	EventProject   EventType = "Project"
	EventOther     EventType = "Other"
)

// CommitmentLevel is an ordered scale of how seriously a user intends to
// participate: casual < serious < win.
type CommitmentLevel string

const (
	CommitmentCasual  CommitmentLevel = "casual"
	CommitmentSerious CommitmentLevel = "serious"
	CommitmentWin     CommitmentLevel = "win"
)

// Index returns the position of the level on the ordered scale, or -1 for an
// unknown value.
func (c CommitmentLevel) Index() int {
	switch c {
	case CommitmentCasual:
		return 0
	case CommitmentSerious:
		return 1
	case CommitmentWin:
		return 2
	default:
		return -1
	}
}

// HostelStatus is the residence bucket used as a small scoring nudge.
type HostelStatus string

const (
	HostelHosteler   HostelStatus = "hosteler"
	HostelDayScholar HostelStatus = "day-scholar"
)

// Availability describes a recurring weekly time window. Times are wall-clock
// "HH:MM" strings in campus-local time; Weekdays/Weekends select which
// day-classes the window applies to.
type Availability struct {
	Weekdays  bool   `json:"weekdays"`
	Weekends  bool   `json:"weekends"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// IntentCard is one user's stated need for a specific event.
//
// LookingForRoles and RequiredSkills are stored deduplicated
// case-insensitively with the first-inserted casing preserved.
type IntentCard struct {
	ID       string `json:"id"`
	OwnerUID string `json:"owner_uid"`

	OwnerName     string  `json:"owner_name"`
	OwnerEmail    *string `json:"owner_email,omitempty"`
	OwnerPhotoURL *string `json:"owner_photo_url,omitempty"`

	EventType EventType `json:"event_type"`
	EventName string    `json:"event_name"`
	ShortGoal string    `json:"short_goal"`

	LookingForRoles []string `json:"looking_for_roles"`
	RequiredSkills  []string `json:"required_skills"`

	Availability    Availability    `json:"availability"`
	HostelStatus    HostelStatus    `json:"hostel_status"`
	CommitmentLevel CommitmentLevel `json:"commitment_level"`

	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RequestStatus is the lifecycle state of a connection request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// ConnectionRequest is a directed ask between two cards' owners.
type ConnectionRequest struct {
	ID string `json:"id"`

	FromUID      string  `json:"from_uid"`
	FromName     string  `json:"from_name"`
	FromPhotoURL *string `json:"from_photo_url,omitempty"`

	ToUID      string  `json:"to_uid"`
	ToName     string  `json:"to_name"`
	ToPhotoURL *string `json:"to_photo_url,omitempty"`

	FromIntentCardID string `json:"from_intent_card_id"`
	ToIntentCardID   string `json:"to_intent_card_id"`

	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Connection is the record materialized when a request is accepted.
// UIDs holds the two owners' uids in lexicographic order.
type Connection struct {
	ID        string    `json:"id"`
	UIDs      [2]string `json:"uids"`
	RequestID string    `json:"request_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the identity-provider view of the current user. The service
// treats all fields as opaque strings supplied by the gateway.
type Profile struct {
	UID      string  `json:"uid"`
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}
