package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/maelvns/footlogic/internal/domain/event"
	"github.com/maelvns/footlogic/internal/domain/player"
	"github.com/maelvns/footlogic/internal/platform/logging"
)

// RosterEntry is a player enriched with their attendance status for an event.
// Status is empty for roster players with no attendance entry yet.
type RosterEntry struct {
	Player player.Player
	Status string
}

// AttendanceService manages the per-event attendance map.
type AttendanceService struct {
	eventRepo  event.Repository
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewAttendanceService(eventRepo event.Repository, playerRepo player.Repository, logger *logging.Logger) *AttendanceService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AttendanceService{
		eventRepo:  eventRepo,
		playerRepo: playerRepo,
		logger:     logger,
	}
}

// Set upserts one player's attendance entry. Status must be one of
// present, absent or pending.
func (s *AttendanceService) Set(ctx context.Context, eventID, playerID, status string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.Set")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	playerID = strings.TrimSpace(playerID)
	status = strings.ToLower(strings.TrimSpace(status))

	if eventID == "" || playerID == "" {
		return fmt.Errorf("%w: event_id and player_id are required", ErrInvalidInput)
	}
	if _, ok := event.AllAttendanceStatuses[status]; !ok {
		return fmt.Errorf("%w: unknown attendance status %q", ErrInvalidInput, status)
	}

	if err := s.eventRepo.SetAttendance(ctx, eventID, map[string]string{playerID: status}); err != nil {
		return fmt.Errorf("set attendance: %w", err)
	}

	return nil
}

// SetBulk applies all entries through a single persistence call. An empty
// input is a no-op. Either the whole batch is merged or the call fails as a
// whole; there is no partial application.
func (s *AttendanceService) SetBulk(ctx context.Context, eventID string, statusByPlayer map[string]string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.SetBulk")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	cleaned := make(map[string]string, len(statusByPlayer))
	for playerID, status := range statusByPlayer {
		playerID = strings.TrimSpace(playerID)
		status = strings.ToLower(strings.TrimSpace(status))
		if playerID == "" {
			continue
		}
		if _, ok := event.AllAttendanceStatuses[status]; !ok {
			return fmt.Errorf("%w: unknown attendance status %q for player %s", ErrInvalidInput, status, playerID)
		}
		cleaned[playerID] = status
	}

	if len(cleaned) == 0 {
		return nil
	}

	if err := s.eventRepo.SetAttendance(ctx, eventID, cleaned); err != nil {
		return fmt.Errorf("set bulk attendance: %w", err)
	}

	s.logger.DebugContext(ctx, "bulk attendance saved", "event_id", eventID, "entries", len(cleaned))

	return nil
}

// Get returns the raw attendance map. An unknown event or an event with no
// entries yields an empty map, not an error.
func (s *AttendanceService) Get(ctx context.Context, eventID string) (map[string]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.Get")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	item, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	if !exists || item.Attendance == nil {
		return map[string]string{}, nil
	}

	return item.Attendance, nil
}

// Roster joins the attendance map against the player collection, enriching
// each tracked player with their status. Players missing from the store are
// skipped; ordering follows the underlying store.
func (s *AttendanceService) Roster(ctx context.Context, eventID string) ([]RosterEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.Roster")
	defer span.End()

	attendance, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(attendance) == 0 {
		return []RosterEntry{}, nil
	}

	playerIDs := make([]string, 0, len(attendance))
	for playerID := range attendance {
		playerIDs = append(playerIDs, playerID)
	}

	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("get attendance roster players: %w", err)
	}

	out := make([]RosterEntry, 0, len(players))
	for _, p := range players {
		out = append(out, RosterEntry{Player: p, Status: attendance[p.ID]})
	}

	return out, nil
}

// ClubRoster lists the club's players, optionally narrowed to one team. This
// is the sheet an attendance or convocation round starts from.
func (s *AttendanceService) ClubRoster(ctx context.Context, clubID, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.ClubRoster")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return nil, fmt.Errorf("%w: club_id is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.ListByClub(ctx, clubID, strings.TrimSpace(teamID))
	if err != nil {
		return nil, fmt.Errorf("list club players: %w", err)
	}

	return players, nil
}

// AddAttendee marks the player present. The entry is overwritten, not removed,
// by a later RemoveAttendee.
func (s *AttendanceService) AddAttendee(ctx context.Context, eventID, playerID string) error {
	return s.Set(ctx, eventID, playerID, event.AttendancePresent)
}

// RemoveAttendee marks the player absent, keeping the map entry.
func (s *AttendanceService) RemoveAttendee(ctx context.Context, eventID, playerID string) error {
	return s.Set(ctx, eventID, playerID, event.AttendanceAbsent)
}
