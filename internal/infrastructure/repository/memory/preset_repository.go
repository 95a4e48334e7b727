package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/maelvns/footlogic/internal/domain/preset"
)

type PresetRepository struct {
	mu      sync.RWMutex
	items   map[string]preset.TacticPreset
	byScope map[string]string // club::team::name -> preset id
}

func NewPresetRepository() *PresetRepository {
	return &PresetRepository{
		items:   make(map[string]preset.TacticPreset),
		byScope: make(map[string]string),
	}
}

// Upsert stores the preset keyed by (club, team, name). Overwriting keeps the
// original id and creation time; every other field is replaced.
func (r *PresetRepository) Upsert(_ context.Context, item preset.TacticPreset) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := presetKey(item.ClubID, item.TeamID, item.Name)
	if existingID, ok := r.byScope[key]; ok {
		existing := r.items[existingID]
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
	}

	r.items[item.ID] = clonePreset(item)
	r.byScope[key] = item.ID

	return item.ID, nil
}

func (r *PresetRepository) ListByClubAndTeam(_ context.Context, clubID, teamID string) ([]preset.TacticPreset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]preset.TacticPreset, 0, len(r.items))
	for _, item := range r.items {
		if item.ClubID == clubID && item.TeamID == teamID {
			out = append(out, clonePreset(item))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *PresetRepository) GetByID(_ context.Context, presetID string) (preset.TacticPreset, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[presetID]
	if !ok {
		return preset.TacticPreset{}, false, nil
	}

	return clonePreset(item), true, nil
}

func (r *PresetRepository) DeleteByID(_ context.Context, presetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[presetID]
	if !ok {
		return nil
	}

	delete(r.items, presetID)
	delete(r.byScope, presetKey(item.ClubID, item.TeamID, item.Name))

	return nil
}

func presetKey(clubID, teamID, name string) string {
	return clubID + "::" + teamID + "::" + name
}

func clonePreset(item preset.TacticPreset) preset.TacticPreset {
	copied := item
	copied.Starters = preset.Starters{
		Slots:      cloneStringMap(item.Starters.Slots),
		LegacyList: append([]string(nil), item.Starters.LegacyList...),
	}
	copied.Substitutes = append([]string(nil), item.Substitutes...)
	copied.Captains = append([]string(nil), item.Captains...)
	copied.SetPieces = cloneSetPieces(item.SetPieces)
	return copied
}
