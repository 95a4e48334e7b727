package preset

import (
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
)

// Starters is the starter assignment stored inside a tactic preset. Current
// records store a slot map; records saved before the tactical board rework
// stored a plain player id list. Both shapes survive round-trips, and callers
// must branch on IsLegacy instead of guessing a slot assignment for old rows.
type Starters struct {
	Slots      map[string]string
	LegacyList []string
}

// IsLegacy reports whether the starters were stored in the historical
// list shape.
func (s Starters) IsLegacy() bool {
	return s.Slots == nil && s.LegacyList != nil
}

func (s Starters) MarshalJSON() ([]byte, error) {
	if s.IsLegacy() {
		return sonic.Marshal(s.LegacyList)
	}
	if s.Slots == nil {
		return []byte("{}"), nil
	}
	return sonic.Marshal(s.Slots)
}

func (s *Starters) UnmarshalJSON(data []byte) error {
	var slots map[string]string
	if err := sonic.Unmarshal(data, &slots); err == nil {
		s.Slots = slots
		s.LegacyList = nil
		return nil
	}

	var list []string
	if err := sonic.Unmarshal(data, &list); err == nil {
		s.Slots = nil
		s.LegacyList = list
		return nil
	}

	return fmt.Errorf("starters must be a slot map or a player id list")
}

// TacticPreset is a named, reusable lineup template scoped to
// (club, team, name). Name is unique within that scope; saving an existing
// name overwrites the record in place.
type TacticPreset struct {
	ID           string
	ClubID       string
	TeamID       string
	Name         string
	Description  string
	Formation    string
	Starters     Starters
	Substitutes  []string
	Instructions string
	Captains     []string
	SetPieces    map[string][]string
	CreatedAt    time.Time
}
