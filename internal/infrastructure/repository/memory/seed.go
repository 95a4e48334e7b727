package memory

import "github.com/maelvns/footlogic/internal/domain/player"

// Seed ids used by dev mode and the service tests.
const (
	ClubIDLesAiglons  = "club-les-aiglons"
	TeamIDSeniorsA    = "team-seniors-a"
	TeamIDU19         = "team-u19"
	PlayerIDKeeper    = "pl-keeper-01"
	PlayerIDBackLeft  = "pl-back-02"
	PlayerIDMidfield  = "pl-mid-08"
	PlayerIDStriker   = "pl-striker-09"
	PlayerIDU19Keeper = "pl-u19-keeper"
)

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: PlayerIDKeeper, ClubID: ClubIDLesAiglons, TeamID: TeamIDSeniorsA, Name: "Antoine Leroy", JerseyNumber: 1, Position: player.PositionGoalkeeper, Status: player.StatusActive},
		{ID: PlayerIDBackLeft, ClubID: ClubIDLesAiglons, TeamID: TeamIDSeniorsA, Name: "Malik Diarra", JerseyNumber: 3, Position: player.PositionDefender, Status: player.StatusActive},
		{ID: "pl-back-04", ClubID: ClubIDLesAiglons, TeamID: TeamIDSeniorsA, Name: "Hugo Wattel", JerseyNumber: 4, Position: player.PositionDefender, Status: player.StatusActive},
		{ID: PlayerIDMidfield, ClubID: ClubIDLesAiglons, TeamID: TeamIDSeniorsA, Name: "Yanis Bouchard", JerseyNumber: 8, Position: player.PositionMidfielder, Status: player.StatusActive},
		{ID: "pl-mid-10", ClubID: ClubIDLesAiglons, TeamID: TeamIDSeniorsA, Name: "Rémi Castel", JerseyNumber: 10, Position: player.PositionMidfielder, Status: player.StatusInjured},
		{ID: PlayerIDStriker, ClubID: ClubIDLesAiglons, TeamID: TeamIDSeniorsA, Name: "Idriss Konaté", JerseyNumber: 9, Position: player.PositionAttacker, Status: player.StatusActive},
		{ID: PlayerIDU19Keeper, ClubID: ClubIDLesAiglons, TeamID: TeamIDU19, Name: "Lucas Perrin", JerseyNumber: 1, Position: player.PositionGoalkeeper, Status: player.StatusActive},
		{ID: "pl-u19-att", ClubID: ClubIDLesAiglons, TeamID: TeamIDU19, Name: "Noah Girard", JerseyNumber: 11, Position: player.PositionAttacker, Status: player.StatusSuspended},
	}
}
