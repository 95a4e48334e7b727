package postgres

import (
	"fmt"
	"time"

	"github.com/maelvns/footlogic/internal/domain/event"
)

type eventTableModel struct {
	ID           string    `db:"id"`
	ClubID       string    `db:"club_id"`
	TeamID       string    `db:"team_id"`
	Title        string    `db:"title"`
	Type         string    `db:"type"`
	Date         time.Time `db:"date"`
	Location     string    `db:"location"`
	Description  string    `db:"description"`
	Opponent     string    `db:"opponent"`
	IsHome       bool      `db:"is_home"`
	Attendance   []byte    `db:"attendance"`
	HomeScore    int       `db:"home_score"`
	AwayScore    int       `db:"away_score"`
	MatchEvents  []byte    `db:"match_events"`
	Convocations []byte    `db:"convocations"`
	Status       string    `db:"status"`
	CreatedBy    string    `db:"created_by"`
	CreatedAt    time.Time `db:"created_at"`
}

func eventFromRow(row eventTableModel) (event.Event, error) {
	item := event.Event{
		ID:          row.ID,
		ClubID:      row.ClubID,
		TeamID:      row.TeamID,
		Title:       row.Title,
		Type:        event.Type(row.Type),
		Date:        row.Date,
		Location:    row.Location,
		Description: row.Description,
		Opponent:    row.Opponent,
		IsHome:      row.IsHome,
		Score:       event.Score{Home: row.HomeScore, Away: row.AwayScore},
		Status:      event.Status(row.Status),
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt,
	}

	if err := unmarshalJSONB(row.Attendance, &item.Attendance); err != nil {
		return event.Event{}, fmt.Errorf("decode event attendance: %w", err)
	}
	if err := unmarshalJSONB(row.MatchEvents, &item.MatchEvents); err != nil {
		return event.Event{}, fmt.Errorf("decode event timeline: %w", err)
	}
	if err := unmarshalJSONB(row.Convocations, &item.Convocations); err != nil {
		return event.Event{}, fmt.Errorf("decode event convocations: %w", err)
	}

	return item, nil
}
