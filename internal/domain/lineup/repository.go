package lineup

import (
	"context"
	"time"
)

// Repository exposes lineup persistence. UpsertComposition and
// UpsertTacticalConfig are deliberately two independent writes against the
// same logical record: composition saves must never clobber the tactical
// config and vice versa.
type Repository interface {
	GetByClubAndTeam(ctx context.Context, clubID, teamID string) (Lineup, bool, error)
	UpsertComposition(ctx context.Context, item Lineup) error
	UpsertTacticalConfig(ctx context.Context, clubID, teamID string, config map[string]string, updatedAt time.Time) error
}
