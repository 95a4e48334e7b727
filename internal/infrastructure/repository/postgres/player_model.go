package postgres

import "github.com/maelvns/footlogic/internal/domain/player"

type playerTableModel struct {
	ID           string `db:"id"`
	ClubID       string `db:"club_id"`
	TeamID       string `db:"team_id"`
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	JerseyNumber int    `db:"jersey_number"`
	Position     string `db:"position"`
	Status       string `db:"status"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.ID,
		ClubID:       row.ClubID,
		TeamID:       row.TeamID,
		UserID:       row.UserID,
		Name:         row.Name,
		JerseyNumber: row.JerseyNumber,
		Position:     player.Position(row.Position),
		Status:       player.Status(row.Status),
	}
}
