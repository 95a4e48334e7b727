package lineup

import "time"

// DefaultFormation is returned when a club/team has no saved lineup yet.
const DefaultFormation = "4-3-3"

// Lineup is the single active tactical setup for a (club, team) pair.
// TeamID is empty for the club-wide lineup. Starters maps free-form slot
// labels ("GK", "LB", "DEF1", ...) to player ids; slots are not pre-enumerated.
type Lineup struct {
	ClubID         string
	TeamID         string
	Formation      string
	Starters       map[string]string
	Substitutes    []string
	Captains       []string
	SetPieces      map[string][]string
	TacticalConfig map[string]string
	UpdatedAt      time.Time
}

// Default returns the documented empty lineup for a scope with no record.
func Default(clubID, teamID string) Lineup {
	return Lineup{
		ClubID:         clubID,
		TeamID:         teamID,
		Formation:      DefaultFormation,
		Starters:       map[string]string{},
		Substitutes:    []string{},
		Captains:       []string{},
		SetPieces:      map[string][]string{},
		TacticalConfig: map[string]string{},
	}
}
