package memory

import (
	"context"
	"sync"
	"time"

	"github.com/maelvns/footlogic/internal/domain/lineup"
)

type LineupRepository struct {
	mu    sync.RWMutex
	items map[string]lineup.Lineup
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{items: make(map[string]lineup.Lineup)}
}

func (r *LineupRepository) GetByClubAndTeam(_ context.Context, clubID, teamID string) (lineup.Lineup, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[scopeKey(clubID, teamID)]
	if !ok {
		return lineup.Lineup{}, false, nil
	}

	return cloneLineup(item), true, nil
}

// UpsertComposition replaces the composition fields while carrying over any
// previously stored tactical config, mirroring a partial $set.
func (r *LineupRepository) UpsertComposition(_ context.Context, item lineup.Lineup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := scopeKey(item.ClubID, item.TeamID)
	stored := cloneLineup(item)
	if existing, ok := r.items[key]; ok {
		stored.TacticalConfig = existing.TacticalConfig
	}
	r.items[key] = stored

	return nil
}

// UpsertTacticalConfig touches only the tactical config plus updated_at. A
// missing record is created with the default composition so a later read
// still sees a coherent lineup.
func (r *LineupRepository) UpsertTacticalConfig(_ context.Context, clubID, teamID string, config map[string]string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := scopeKey(clubID, teamID)
	existing, ok := r.items[key]
	if !ok {
		existing = lineup.Default(clubID, teamID)
	}
	existing.TacticalConfig = cloneStringMap(config)
	existing.UpdatedAt = updatedAt
	r.items[key] = existing

	return nil
}

func scopeKey(clubID, teamID string) string {
	return clubID + "::" + teamID
}

func cloneLineup(item lineup.Lineup) lineup.Lineup {
	copied := item
	copied.Starters = cloneStringMap(item.Starters)
	copied.Substitutes = append([]string(nil), item.Substitutes...)
	copied.Captains = append([]string(nil), item.Captains...)
	copied.SetPieces = cloneSetPieces(item.SetPieces)
	copied.TacticalConfig = cloneStringMap(item.TacticalConfig)
	return copied
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cloneSetPieces(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for kind, takers := range in {
		out[kind] = append([]string(nil), takers...)
	}
	return out
}
