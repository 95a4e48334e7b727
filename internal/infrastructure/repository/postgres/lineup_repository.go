package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/maelvns/footlogic/internal/domain/lineup"
	qb "github.com/maelvns/footlogic/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) GetByClubAndTeam(ctx context.Context, clubID, teamID string) (lineup.Lineup, bool, error) {
	query, args, err := qb.Select("*").
		From("lineups").
		Where(qb.Eq("club_id", clubID), qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return lineup.Lineup{}, false, fmt.Errorf("build get lineup query: %w", err)
	}

	var row lineupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.Lineup{}, false, nil
		}
		return lineup.Lineup{}, false, fmt.Errorf("get lineup: %w", err)
	}

	item, err := lineupFromRow(row)
	if err != nil {
		return lineup.Lineup{}, false, err
	}

	return item, true, nil
}

// UpsertComposition writes every composition field and leaves tactical_config
// untouched, so the two lineup writes stay independent.
func (r *LineupRepository) UpsertComposition(ctx context.Context, item lineup.Lineup) error {
	starters, err := marshalJSONB(item.Starters)
	if err != nil {
		return fmt.Errorf("encode lineup starters: %w", err)
	}
	setPieces, err := marshalJSONB(item.SetPieces)
	if err != nil {
		return fmt.Errorf("encode lineup set pieces: %w", err)
	}

	query, args, err := qb.InsertInto("lineups").
		Columns("club_id", "team_id", "formation", "starters", "substitutes", "captains", "set_pieces", "updated_at").
		Values(item.ClubID, item.TeamID, item.Formation, starters, pq.StringArray(item.Substitutes), pq.StringArray(item.Captains), setPieces, item.UpdatedAt).
		Suffix(`ON CONFLICT (club_id, team_id)
DO UPDATE SET
    formation = EXCLUDED.formation,
    starters = EXCLUDED.starters,
    substitutes = EXCLUDED.substitutes,
    captains = EXCLUDED.captains,
    set_pieces = EXCLUDED.set_pieces,
    updated_at = EXCLUDED.updated_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build lineup upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert lineup composition: %w", err)
	}

	return nil
}

// UpsertTacticalConfig touches only tactical_config and updated_at. Creating
// the row on first write seeds the default composition so reads stay coherent.
func (r *LineupRepository) UpsertTacticalConfig(ctx context.Context, clubID, teamID string, config map[string]string, updatedAt time.Time) error {
	configJSON, err := marshalJSONB(config)
	if err != nil {
		return fmt.Errorf("encode tactical config: %w", err)
	}

	query, args, err := qb.InsertInto("lineups").
		Columns("club_id", "team_id", "formation", "starters", "substitutes", "captains", "set_pieces", "tactical_config", "updated_at").
		Values(clubID, teamID, lineup.DefaultFormation, []byte("{}"), pq.StringArray{}, pq.StringArray{}, []byte("{}"), configJSON, updatedAt).
		Suffix(`ON CONFLICT (club_id, team_id)
DO UPDATE SET
    tactical_config = EXCLUDED.tactical_config,
    updated_at = EXCLUDED.updated_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build tactical config upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert tactical config: %w", err)
	}

	return nil
}
