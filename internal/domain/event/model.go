package event

import (
	"strings"
	"time"
)

// Type classifies calendar entries. Only match-type events carry a score,
// a timeline and a lifecycle beyond scheduled.
type Type string

const (
	TypeTraining Type = "training"
	TypeMatch    Type = "match"
	TypeMeeting  Type = "meeting"
	TypeOther    Type = "other"
)

var AllTypes = map[Type]struct{}{
	TypeTraining: {},
	TypeMatch:    {},
	TypeMeeting:  {},
	TypeOther:    {},
}

// Status is the lifecycle state of an event.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// CanTransition reports whether moving from one status to another is a legal
// lifecycle step. Transitions to the current status are allowed so that
// repeated start calls stay idempotent. Completed and cancelled are terminal.
func CanTransition(from, to Status) bool {
	if from == to {
		return from == StatusScheduled || from == StatusLive
	}
	switch from {
	case StatusScheduled:
		return to == StatusLive || to == StatusCompleted || to == StatusCancelled
	case StatusLive:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

// ParseStatus normalizes a status string, returning false for unknown values.
func ParseStatus(value string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusScheduled:
		return StatusScheduled, true
	case StatusLive:
		return StatusLive, true
	case StatusCompleted:
		return StatusCompleted, true
	case StatusCancelled:
		return StatusCancelled, true
	default:
		return "", false
	}
}

// Attendance statuses for players invited to an event.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendancePending = "pending"
)

var AllAttendanceStatuses = map[string]struct{}{
	AttendancePresent: {},
	AttendanceAbsent:  {},
	AttendancePending: {},
}

// MatchEventType classifies timeline entries.
type MatchEventType string

const (
	MatchEventGoal         MatchEventType = "goal"
	MatchEventAssist       MatchEventType = "assist"
	MatchEventYellow       MatchEventType = "yellow"
	MatchEventRed          MatchEventType = "red"
	MatchEventSubstitution MatchEventType = "substitution"
)

var AllMatchEventTypes = map[MatchEventType]struct{}{
	MatchEventGoal:         {},
	MatchEventAssist:       {},
	MatchEventYellow:       {},
	MatchEventRed:          {},
	MatchEventSubstitution: {},
}

// MatchEvent is one immutable entry in a match timeline.
type MatchEvent struct {
	ID        string         `json:"id"`
	Type      MatchEventType `json:"type"`
	PlayerID  string         `json:"player_id"`
	Minute    int            `json:"minute"`
	Timestamp time.Time      `json:"timestamp"`
}

// Score is the match score from the organizing club's fixture sheet.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Convocation statuses for the invitation/response workflow.
const (
	ConvocationPending   = "pending"
	ConvocationConfirmed = "confirmed"
	ConvocationRefused   = "refused"
)

var AllConvocationResponses = map[string]struct{}{
	ConvocationConfirmed: {},
	ConvocationRefused:   {},
}

// Convocation is one player's invitation state for an event.
type Convocation struct {
	Status       string     `json:"status"`
	ResponseDate *time.Time `json:"response_date,omitempty"`
}

// Event is a calendar entry owned by a club, optionally scoped to a team.
// Attendance maps player id to an attendance status; MatchEvents is an
// append-only timeline; Convocations holds the invitation workflow state.
type Event struct {
	ID           string
	ClubID       string
	TeamID       string
	Title        string
	Type         Type
	Date         time.Time
	Location     string
	Description  string
	Opponent     string
	IsHome       bool
	Attendance   map[string]string
	Score        Score
	MatchEvents  []MatchEvent
	Convocations map[string]Convocation
	Status       Status
	CreatedBy    string
	CreatedAt    time.Time
}
