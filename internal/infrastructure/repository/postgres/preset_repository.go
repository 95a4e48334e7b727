package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/maelvns/footlogic/internal/domain/preset"
	qb "github.com/maelvns/footlogic/internal/platform/querybuilder"
)

type PresetRepository struct {
	db *sqlx.DB
}

func NewPresetRepository(db *sqlx.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

// Upsert saves the preset keyed by (club_id, team_id, name). On conflict the
// existing row keeps its id and created_at; every other field is replaced.
func (r *PresetRepository) Upsert(ctx context.Context, item preset.TacticPreset) (string, error) {
	starters, err := marshalJSONB(item.Starters)
	if err != nil {
		return "", fmt.Errorf("encode preset starters: %w", err)
	}
	setPieces, err := marshalJSONB(item.SetPieces)
	if err != nil {
		return "", fmt.Errorf("encode preset set pieces: %w", err)
	}

	query, args, err := qb.InsertInto("tactic_presets").
		Columns("id", "club_id", "team_id", "name", "description", "formation", "starters", "substitutes", "instructions", "captains", "set_pieces", "created_at").
		Values(item.ID, item.ClubID, item.TeamID, item.Name, item.Description, item.Formation, starters, pq.StringArray(item.Substitutes), item.Instructions, pq.StringArray(item.Captains), setPieces, item.CreatedAt).
		Suffix(`ON CONFLICT (club_id, team_id, name)
DO UPDATE SET
    description = EXCLUDED.description,
    formation = EXCLUDED.formation,
    starters = EXCLUDED.starters,
    substitutes = EXCLUDED.substitutes,
    instructions = EXCLUDED.instructions,
    captains = EXCLUDED.captains,
    set_pieces = EXCLUDED.set_pieces
RETURNING id`).
		ToSQL()
	if err != nil {
		return "", fmt.Errorf("build preset upsert query: %w", err)
	}

	var storedID string
	if err := r.db.GetContext(ctx, &storedID, query, args...); err != nil {
		return "", fmt.Errorf("upsert preset: %w", err)
	}

	return storedID, nil
}

func (r *PresetRepository) ListByClubAndTeam(ctx context.Context, clubID, teamID string) ([]preset.TacticPreset, error) {
	query, args, err := qb.Select("*").
		From("tactic_presets").
		Where(qb.Eq("club_id", clubID), qb.Eq("team_id", teamID)).
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list presets query: %w", err)
	}

	var rows []presetTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}

	out := make([]preset.TacticPreset, 0, len(rows))
	for _, row := range rows {
		item, err := presetFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *PresetRepository) GetByID(ctx context.Context, presetID string) (preset.TacticPreset, bool, error) {
	query, args, err := qb.Select("*").
		From("tactic_presets").
		Where(qb.Eq("id", presetID)).
		ToSQL()
	if err != nil {
		return preset.TacticPreset{}, false, fmt.Errorf("build get preset query: %w", err)
	}

	var row presetTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return preset.TacticPreset{}, false, nil
		}
		return preset.TacticPreset{}, false, fmt.Errorf("get preset: %w", err)
	}

	item, err := presetFromRow(row)
	if err != nil {
		return preset.TacticPreset{}, false, err
	}

	return item, true, nil
}

func (r *PresetRepository) DeleteByID(ctx context.Context, presetID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM tactic_presets WHERE id = $1", presetID); err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}

	return nil
}
