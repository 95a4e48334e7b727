package postgres

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/maelvns/footlogic/internal/domain/preset"
)

type presetTableModel struct {
	ID           string         `db:"id"`
	ClubID       string         `db:"club_id"`
	TeamID       string         `db:"team_id"`
	Name         string         `db:"name"`
	Description  string         `db:"description"`
	Formation    string         `db:"formation"`
	Starters     []byte         `db:"starters"`
	Substitutes  pq.StringArray `db:"substitutes"`
	Instructions string         `db:"instructions"`
	Captains     pq.StringArray `db:"captains"`
	SetPieces    []byte         `db:"set_pieces"`
	CreatedAt    time.Time      `db:"created_at"`
}

func presetFromRow(row presetTableModel) (preset.TacticPreset, error) {
	item := preset.TacticPreset{
		ID:           row.ID,
		ClubID:       row.ClubID,
		TeamID:       row.TeamID,
		Name:         row.Name,
		Description:  row.Description,
		Formation:    row.Formation,
		Substitutes:  append([]string(nil), row.Substitutes...),
		Instructions: row.Instructions,
		Captains:     append([]string(nil), row.Captains...),
		CreatedAt:    row.CreatedAt,
	}

	// Starters decodes through the tagged representation, which tolerates
	// legacy rows that stored a plain player id list.
	if err := unmarshalJSONB(row.Starters, &item.Starters); err != nil {
		return preset.TacticPreset{}, fmt.Errorf("decode preset starters: %w", err)
	}
	if err := unmarshalJSONB(row.SetPieces, &item.SetPieces); err != nil {
		return preset.TacticPreset{}, fmt.Errorf("decode preset set pieces: %w", err)
	}

	return item, nil
}
