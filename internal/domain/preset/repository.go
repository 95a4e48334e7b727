package preset

import "context"

// Repository exposes tactic preset persistence.
type Repository interface {
	// Upsert saves the preset keyed by (club, team, name) and returns the
	// id of the stored record, which is the pre-existing id on overwrite.
	Upsert(ctx context.Context, item TacticPreset) (string, error)
	// ListByClubAndTeam returns presets ordered by creation time, newest first.
	ListByClubAndTeam(ctx context.Context, clubID, teamID string) ([]TacticPreset, error)
	GetByID(ctx context.Context, presetID string) (TacticPreset, bool, error)
	// DeleteByID removes the preset; deleting an unknown id is not an error.
	DeleteByID(ctx context.Context, presetID string) error
}
