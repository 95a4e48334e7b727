package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maelvns/footlogic/internal/domain/event"
	"github.com/maelvns/footlogic/internal/domain/season"
	idgen "github.com/maelvns/footlogic/internal/platform/id"
	"github.com/maelvns/footlogic/internal/platform/logging"
)

// CreateEventInput carries a new calendar entry. Match-type events start
// scheduled with a zeroed score and an empty timeline.
type CreateEventInput struct {
	ClubID      string
	TeamID      string
	Title       string
	Type        event.Type
	Date        time.Time
	Location    string
	Description string
	Opponent    string
	IsHome      bool
	CreatedBy   string
}

// MatchService owns the event lifecycle, the append-only match timeline and
// the derived season statistics.
type MatchService struct {
	eventRepo event.Repository
	idGen     idgen.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewMatchService(eventRepo event.Repository, idGen idgen.Generator, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		eventRepo: eventRepo,
		idGen:     idGen,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *MatchService) CreateEvent(ctx context.Context, input CreateEventInput) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateEvent")
	defer span.End()

	input.ClubID = strings.TrimSpace(input.ClubID)
	input.Title = strings.TrimSpace(input.Title)

	if input.ClubID == "" {
		return event.Event{}, fmt.Errorf("%w: club_id is required", ErrInvalidInput)
	}
	if input.Title == "" {
		return event.Event{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if _, ok := event.AllTypes[input.Type]; !ok {
		return event.Event{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, input.Type)
	}

	eventID, err := s.idGen.NewID()
	if err != nil {
		return event.Event{}, fmt.Errorf("generate event id: %w", err)
	}

	item := event.Event{
		ID:           eventID,
		ClubID:       input.ClubID,
		TeamID:       strings.TrimSpace(input.TeamID),
		Title:        input.Title,
		Type:         input.Type,
		Date:         input.Date,
		Location:     strings.TrimSpace(input.Location),
		Description:  strings.TrimSpace(input.Description),
		Opponent:     strings.TrimSpace(input.Opponent),
		IsHome:       input.IsHome,
		Attendance:   map[string]string{},
		Score:        event.Score{},
		MatchEvents:  []event.MatchEvent{},
		Convocations: map[string]event.Convocation{},
		Status:       event.StatusScheduled,
		CreatedBy:    strings.TrimSpace(input.CreatedBy),
		CreatedAt:    s.now().UTC(),
	}

	if err := s.eventRepo.Create(ctx, item); err != nil {
		return event.Event{}, fmt.Errorf("create event: %w", err)
	}

	s.logger.InfoContext(ctx, "event created",
		"event_id", item.ID, "club_id", item.ClubID, "type", item.Type)

	return item, nil
}

func (s *MatchService) GetEvent(ctx context.Context, eventID string) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetEvent")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return event.Event{}, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	item, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	return item, nil
}

// Start moves a scheduled match to live. Starting an already live match is a
// no-op; starting a completed or cancelled match is rejected.
func (s *MatchService) Start(ctx context.Context, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Start")
	defer span.End()

	item, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	if item.Status == event.StatusLive {
		return nil
	}
	if !event.CanTransition(item.Status, event.StatusLive) {
		return fmt.Errorf("%w: cannot start a %s match", ErrInvalidTransition, item.Status)
	}

	if err := s.eventRepo.SetStatus(ctx, item.ID, event.StatusLive); err != nil {
		return fmt.Errorf("start match: %w", err)
	}

	return nil
}

// Finish completes a live match. Scheduled matches may finish directly, which
// covers walkovers.
func (s *MatchService) Finish(ctx context.Context, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Finish")
	defer span.End()

	item, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	if !event.CanTransition(item.Status, event.StatusCompleted) {
		return fmt.Errorf("%w: cannot finish a %s match", ErrInvalidTransition, item.Status)
	}

	if err := s.eventRepo.SetStatus(ctx, item.ID, event.StatusCompleted); err != nil {
		return fmt.Errorf("finish match: %w", err)
	}

	return nil
}

// Cancel cancels a scheduled or live match.
func (s *MatchService) Cancel(ctx context.Context, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Cancel")
	defer span.End()

	item, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	if !event.CanTransition(item.Status, event.StatusCancelled) {
		return fmt.Errorf("%w: cannot cancel a %s match", ErrInvalidTransition, item.Status)
	}

	if err := s.eventRepo.SetStatus(ctx, item.ID, event.StatusCancelled); err != nil {
		return fmt.Errorf("cancel match: %w", err)
	}

	return nil
}

// SetScore records the score in any lifecycle state. When status is non-empty
// it is applied in the same call, which lets a caller record a final score and
// complete the match at once.
func (s *MatchService) SetScore(ctx context.Context, eventID string, home, away int, status string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SetScore")
	defer span.End()

	if home < 0 || away < 0 {
		return fmt.Errorf("%w: score cannot be negative", ErrInvalidInput)
	}

	item, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	if err := s.eventRepo.SetScore(ctx, item.ID, event.Score{Home: home, Away: away}); err != nil {
		return fmt.Errorf("set score: %w", err)
	}

	if strings.TrimSpace(status) == "" {
		return nil
	}

	parsed, ok := event.ParseStatus(status)
	if !ok {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	if err := s.eventRepo.SetStatus(ctx, item.ID, parsed); err != nil {
		return fmt.Errorf("set score status: %w", err)
	}

	return nil
}

// AddMatchEvent appends one immutable entry to the match timeline. Minute is
// only required to be non-negative; it is not checked against match duration.
func (s *MatchService) AddMatchEvent(ctx context.Context, eventID string, entryType event.MatchEventType, playerID string, minute int) (event.MatchEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AddMatchEvent")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return event.MatchEvent{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}
	if _, ok := event.AllMatchEventTypes[entryType]; !ok {
		return event.MatchEvent{}, fmt.Errorf("%w: unknown match event type %q", ErrInvalidInput, entryType)
	}
	if minute < 0 {
		return event.MatchEvent{}, fmt.Errorf("%w: minute cannot be negative", ErrInvalidInput)
	}

	item, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return event.MatchEvent{}, err
	}

	entryID, err := s.idGen.NewID()
	if err != nil {
		return event.MatchEvent{}, fmt.Errorf("generate match event id: %w", err)
	}

	entry := event.MatchEvent{
		ID:        entryID,
		Type:      entryType,
		PlayerID:  playerID,
		Minute:    minute,
		Timestamp: s.now().UTC(),
	}

	if err := s.eventRepo.AppendMatchEvent(ctx, item.ID, entry); err != nil {
		return event.MatchEvent{}, fmt.Errorf("add match event: %w", err)
	}

	return entry, nil
}

// SeasonStats recomputes the season record from all completed matches in
// scope on every call. Goals are attributed through each match's IsHome flag;
// points are 3 per win plus 1 per draw.
func (s *MatchService) SeasonStats(ctx context.Context, clubID, teamID string) (season.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SeasonStats")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return season.Stats{}, fmt.Errorf("%w: club_id is required", ErrInvalidInput)
	}

	matches, err := s.eventRepo.ListCompletedMatches(ctx, clubID, strings.TrimSpace(teamID))
	if err != nil {
		return season.Stats{}, fmt.Errorf("list completed matches: %w", err)
	}

	var stats season.Stats
	for _, m := range matches {
		ourGoals, theirGoals := m.Score.Home, m.Score.Away
		if !m.IsHome {
			ourGoals, theirGoals = m.Score.Away, m.Score.Home
		}

		stats.Played++
		stats.GoalsFor += ourGoals
		stats.GoalsAgainst += theirGoals

		switch {
		case ourGoals > theirGoals:
			stats.Wins++
		case ourGoals < theirGoals:
			stats.Losses++
		default:
			stats.Draws++
		}
	}

	stats.GoalDifference = stats.GoalsFor - stats.GoalsAgainst
	stats.Points = 3*stats.Wins + stats.Draws

	return stats, nil
}
