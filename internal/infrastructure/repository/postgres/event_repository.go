package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/maelvns/footlogic/internal/domain/event"
	qb "github.com/maelvns/footlogic/internal/platform/querybuilder"
)

// EventRepository stores events with jsonb columns for the attendance map,
// the convocation map and the match timeline, so partial writes merge or
// append server-side the way the document-store contract requires.
type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, item event.Event) error {
	attendance, err := marshalJSONB(item.Attendance)
	if err != nil {
		return fmt.Errorf("encode event attendance: %w", err)
	}
	timeline, err := marshalJSONB(item.MatchEvents)
	if err != nil {
		return fmt.Errorf("encode event timeline: %w", err)
	}
	convocations, err := marshalJSONB(item.Convocations)
	if err != nil {
		return fmt.Errorf("encode event convocations: %w", err)
	}

	query, args, err := qb.InsertInto("events").
		Columns("id", "club_id", "team_id", "title", "type", "date", "location", "description", "opponent", "is_home", "attendance", "home_score", "away_score", "match_events", "convocations", "status", "created_by", "created_at").
		Values(item.ID, item.ClubID, item.TeamID, item.Title, string(item.Type), item.Date, item.Location, item.Description, item.Opponent, item.IsHome, attendance, item.Score.Home, item.Score.Away, timeline, convocations, string(item.Status), item.CreatedBy, item.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build create event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	query, args, err := qb.Select("*").
		From("events").
		Where(qb.Eq("id", eventID)).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build get event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event: %w", err)
	}

	item, err := eventFromRow(row)
	if err != nil {
		return event.Event{}, false, err
	}

	return item, true, nil
}

// SetAttendance merges the entries into the stored attendance map with a
// jsonb concatenation, which overwrites colliding player keys only.
func (r *EventRepository) SetAttendance(ctx context.Context, eventID string, statusByPlayer map[string]string) error {
	patch, err := marshalJSONB(statusByPlayer)
	if err != nil {
		return fmt.Errorf("encode attendance patch: %w", err)
	}

	query, args, err := qb.Update("events").
		SetExpr("attendance", "COALESCE(attendance, '{}'::jsonb) || $1::jsonb", patch).
		Where(qb.Eq("id", eventID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set attendance query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set attendance: %w", err)
	}

	return nil
}

func (r *EventRepository) SetScore(ctx context.Context, eventID string, score event.Score) error {
	query, args, err := qb.Update("events").
		Set("home_score", score.Home).
		Set("away_score", score.Away).
		Where(qb.Eq("id", eventID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set score query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set score: %w", err)
	}

	return nil
}

func (r *EventRepository) SetStatus(ctx context.Context, eventID string, status event.Status) error {
	query, args, err := qb.Update("events").
		Set("status", string(status)).
		Where(qb.Eq("id", eventID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set status query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	return nil
}

// AppendMatchEvent appends one entry to the timeline server-side; existing
// entries are never rewritten.
func (r *EventRepository) AppendMatchEvent(ctx context.Context, eventID string, entry event.MatchEvent) error {
	entryJSON, err := marshalJSONB(entry)
	if err != nil {
		return fmt.Errorf("encode match event: %w", err)
	}

	query, args, err := qb.Update("events").
		SetExpr("match_events", "COALESCE(match_events, '[]'::jsonb) || $1::jsonb", entryJSON).
		Where(qb.Eq("id", eventID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build append match event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append match event: %w", err)
	}

	return nil
}

func (r *EventRepository) SetConvocations(ctx context.Context, eventID string, byPlayer map[string]event.Convocation) error {
	patch, err := marshalJSONB(byPlayer)
	if err != nil {
		return fmt.Errorf("encode convocation patch: %w", err)
	}

	query, args, err := qb.Update("events").
		SetExpr("convocations", "COALESCE(convocations, '{}'::jsonb) || $1::jsonb", patch).
		Where(qb.Eq("id", eventID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set convocations query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set convocations: %w", err)
	}

	return nil
}

func (r *EventRepository) ListCompletedMatches(ctx context.Context, clubID, teamID string) ([]event.Event, error) {
	builder := qb.Select("*").
		From("events").
		Where(
			qb.Eq("club_id", clubID),
			qb.Eq("type", string(event.TypeMatch)),
			qb.Eq("status", string(event.StatusCompleted)),
		)
	if teamID != "" {
		builder = builder.Where(qb.Eq("team_id", teamID))
	}

	query, args, err := builder.OrderBy("date").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list completed matches query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list completed matches: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		item, err := eventFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}
