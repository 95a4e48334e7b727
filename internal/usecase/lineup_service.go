package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maelvns/footlogic/internal/domain/lineup"
	"github.com/maelvns/footlogic/internal/platform/logging"
)

// SaveLineupInput carries one tactical board save. TeamID is empty for the
// club-wide lineup. Empty or blank player references are pruned, never stored.
type SaveLineupInput struct {
	ClubID      string
	TeamID      string
	Formation   string
	Starters    map[string]string
	Substitutes []string
	Captains    []string
	SetPieces   map[string][]string
}

// LineupService is the store for the single active lineup per (club, team).
// It deliberately performs no referential-integrity checks against clubs,
// teams or players; unknown ids are accepted and the upsert stays idempotent.
type LineupService struct {
	lineupRepo lineup.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewLineupService(lineupRepo lineup.Repository, logger *logging.Logger) *LineupService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LineupService{
		lineupRepo: lineupRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *LineupService) Save(ctx context.Context, input SaveLineupInput) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Save")
	defer span.End()

	input.ClubID = strings.TrimSpace(input.ClubID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Formation = strings.TrimSpace(input.Formation)

	if input.ClubID == "" {
		return lineup.Lineup{}, fmt.Errorf("%w: club_id is required", ErrInvalidInput)
	}

	if err := ValidateFormation(input.Formation, input.Starters, false); err != nil {
		return lineup.Lineup{}, err
	}

	item := lineup.Lineup{
		ClubID:      input.ClubID,
		TeamID:      input.TeamID,
		Formation:   input.Formation,
		Starters:    pruneSlotMap(input.Starters),
		Substitutes: pruneIDs(input.Substitutes),
		Captains:    pruneIDs(input.Captains),
		SetPieces:   pruneSetPieces(input.SetPieces),
		UpdatedAt:   s.now().UTC(),
	}

	if err := s.lineupRepo.UpsertComposition(ctx, item); err != nil {
		return lineup.Lineup{}, fmt.Errorf("save lineup: %w", err)
	}

	s.logger.DebugContext(ctx, "lineup saved",
		"club_id", item.ClubID, "team_id", item.TeamID, "formation", item.Formation)

	return item, nil
}

// GetActive returns the stored lineup for the scope, or the documented
// default when none exists yet. Absence is not an error.
func (s *LineupService) GetActive(ctx context.Context, clubID, teamID string) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.GetActive")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	teamID = strings.TrimSpace(teamID)
	if clubID == "" {
		return lineup.Lineup{}, fmt.Errorf("%w: club_id is required", ErrInvalidInput)
	}

	item, exists, err := s.lineupRepo.GetByClubAndTeam(ctx, clubID, teamID)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("get active lineup: %w", err)
	}
	if !exists {
		return lineup.Default(clubID, teamID), nil
	}

	return item, nil
}

// SaveTacticalConfig upserts only the free-form tactical configuration. It is
// a second, independent write against the lineup record: a concurrent Save
// may interleave and a reader can briefly observe composition from one call
// and config from another, which is the accepted consistency window.
func (s *LineupService) SaveTacticalConfig(ctx context.Context, clubID, teamID string, config map[string]string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.SaveTacticalConfig")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	teamID = strings.TrimSpace(teamID)
	if clubID == "" {
		return fmt.Errorf("%w: club_id is required", ErrInvalidInput)
	}

	cleaned := make(map[string]string, len(config))
	for key, value := range config {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		cleaned[key] = value
	}

	if err := s.lineupRepo.UpsertTacticalConfig(ctx, clubID, teamID, cleaned, s.now().UTC()); err != nil {
		return fmt.Errorf("save tactical config: %w", err)
	}

	return nil
}

func pruneSlotMap(starters map[string]string) map[string]string {
	cleaned := make(map[string]string, len(starters))
	for slot, playerID := range starters {
		slot = strings.TrimSpace(slot)
		playerID = strings.TrimSpace(playerID)
		if slot == "" || playerID == "" {
			continue
		}
		cleaned[slot] = playerID
	}
	return cleaned
}

func pruneIDs(ids []string) []string {
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		cleaned = append(cleaned, id)
	}
	return cleaned
}

func pruneSetPieces(setPieces map[string][]string) map[string][]string {
	cleaned := make(map[string][]string, len(setPieces))
	for kind, takers := range setPieces {
		kind = strings.TrimSpace(kind)
		if kind == "" {
			continue
		}
		cleaned[kind] = pruneIDs(takers)
	}
	return cleaned
}
