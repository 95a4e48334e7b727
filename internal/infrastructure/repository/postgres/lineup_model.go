package postgres

import (
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/lib/pq"

	"github.com/maelvns/footlogic/internal/domain/lineup"
)

type lineupTableModel struct {
	ClubID         string         `db:"club_id"`
	TeamID         string         `db:"team_id"`
	Formation      string         `db:"formation"`
	Starters       []byte         `db:"starters"`
	Substitutes    pq.StringArray `db:"substitutes"`
	Captains       pq.StringArray `db:"captains"`
	SetPieces      []byte         `db:"set_pieces"`
	TacticalConfig []byte         `db:"tactical_config"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func lineupFromRow(row lineupTableModel) (lineup.Lineup, error) {
	item := lineup.Lineup{
		ClubID:      row.ClubID,
		TeamID:      row.TeamID,
		Formation:   row.Formation,
		Substitutes: append([]string(nil), row.Substitutes...),
		Captains:    append([]string(nil), row.Captains...),
		UpdatedAt:   row.UpdatedAt,
	}

	if err := unmarshalJSONB(row.Starters, &item.Starters); err != nil {
		return lineup.Lineup{}, fmt.Errorf("decode lineup starters: %w", err)
	}
	if err := unmarshalJSONB(row.SetPieces, &item.SetPieces); err != nil {
		return lineup.Lineup{}, fmt.Errorf("decode lineup set pieces: %w", err)
	}
	if err := unmarshalJSONB(row.TacticalConfig, &item.TacticalConfig); err != nil {
		return lineup.Lineup{}, fmt.Errorf("decode lineup tactical config: %w", err)
	}

	return item, nil
}

func unmarshalJSONB(data []byte, target any) error {
	if len(data) == 0 {
		return nil
	}
	return sonic.Unmarshal(data, target)
}

func marshalJSONB(value any) ([]byte, error) {
	data, err := sonic.Marshal(value)
	if err != nil {
		return nil, err
	}
	return data, nil
}
