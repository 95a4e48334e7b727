package player

import "fmt"

// Position represents the pitch role categories used on the tactical board.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionAttacker   Position = "ATT"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionAttacker:   {},
}

// Status is the availability status of a player.
type Status string

const (
	StatusActive    Status = "active"
	StatusInjured   Status = "injured"
	StatusSuspended Status = "suspended"
)

// Player is a registered athlete in a club roster. TeamID is empty for
// players not yet assigned to a specific team. Jersey numbers are not
// enforced unique within a team.
type Player struct {
	ID           string
	ClubID       string
	TeamID       string
	UserID       string
	Name         string
	JerseyNumber int
	Position     Position
	Status       Status
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.ClubID == "" {
		return fmt.Errorf("player club id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}
