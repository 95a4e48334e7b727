package event

import "context"

// Repository exposes event persistence. Mutations mirror the partial-update
// operations of a document store: attendance and convocation writes merge
// into the stored maps, AppendMatchEvent appends without rewriting the
// timeline, and SetScore/SetStatus touch only their own fields.
type Repository interface {
	Create(ctx context.Context, item Event) error
	GetByID(ctx context.Context, eventID string) (Event, bool, error)
	// SetAttendance merges the given entries into the event's attendance map.
	SetAttendance(ctx context.Context, eventID string, statusByPlayer map[string]string) error
	SetScore(ctx context.Context, eventID string, score Score) error
	SetStatus(ctx context.Context, eventID string, status Status) error
	AppendMatchEvent(ctx context.Context, eventID string, entry MatchEvent) error
	// SetConvocations merges the given entries into the event's convocation map.
	SetConvocations(ctx context.Context, eventID string, byPlayer map[string]Convocation) error
	// ListCompletedMatches returns completed match-type events for the club,
	// filtered by team when teamID is non-empty.
	ListCompletedMatches(ctx context.Context, clubID, teamID string) ([]Event, error)
}
