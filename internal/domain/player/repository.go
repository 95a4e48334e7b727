package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListByClub(ctx context.Context, clubID, teamID string) ([]Player, error)
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
}
