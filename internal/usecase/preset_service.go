package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maelvns/footlogic/internal/domain/preset"
	idgen "github.com/maelvns/footlogic/internal/platform/id"
	"github.com/maelvns/footlogic/internal/platform/logging"
)

// SavePresetInput carries one "save preset" action from the tactical board.
type SavePresetInput struct {
	ClubID       string
	TeamID       string
	Name         string
	Description  string
	Formation    string
	Starters     map[string]string
	Substitutes  []string
	Instructions string
	Captains     []string
	SetPieces    map[string][]string
}

// PresetService is the catalog of named lineup templates per (club, team).
type PresetService struct {
	presetRepo preset.Repository
	lineupSvc  *LineupService
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewPresetService(
	presetRepo preset.Repository,
	lineupSvc *LineupService,
	idGen idgen.Generator,
	logger *logging.Logger,
) *PresetService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PresetService{
		presetRepo: presetRepo,
		lineupSvc:  lineupSvc,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

// Save creates or overwrites the preset named input.Name for the scope and
// returns the id of the stored record. Overwriting keeps the original id, so
// two saves with the same name never produce two rows.
func (s *PresetService) Save(ctx context.Context, input SavePresetInput) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PresetService.Save")
	defer span.End()

	input.ClubID = strings.TrimSpace(input.ClubID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Name = strings.TrimSpace(input.Name)
	input.Formation = strings.TrimSpace(input.Formation)

	if input.ClubID == "" {
		return "", fmt.Errorf("%w: club_id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return "", fmt.Errorf("%w: preset name is required", ErrInvalidInput)
	}

	// Presets may be partially specified, so only descriptor syntax is checked.
	if err := ValidateFormation(input.Formation, input.Starters, false); err != nil {
		return "", err
	}

	presetID, err := s.idGen.NewID()
	if err != nil {
		return "", fmt.Errorf("generate preset id: %w", err)
	}

	item := preset.TacticPreset{
		ID:           presetID,
		ClubID:       input.ClubID,
		TeamID:       input.TeamID,
		Name:         input.Name,
		Description:  strings.TrimSpace(input.Description),
		Formation:    input.Formation,
		Starters:     preset.Starters{Slots: pruneSlotMap(input.Starters)},
		Substitutes:  pruneIDs(input.Substitutes),
		Instructions: strings.TrimSpace(input.Instructions),
		Captains:     pruneIDs(input.Captains),
		SetPieces:    pruneSetPieces(input.SetPieces),
		CreatedAt:    s.now().UTC(),
	}

	storedID, err := s.presetRepo.Upsert(ctx, item)
	if err != nil {
		return "", fmt.Errorf("save preset: %w", err)
	}

	s.logger.DebugContext(ctx, "preset saved",
		"club_id", item.ClubID, "team_id", item.TeamID, "name", item.Name, "preset_id", storedID)

	return storedID, nil
}

// List returns a snapshot of the scope's presets, newest first.
func (s *PresetService) List(ctx context.Context, clubID, teamID string) ([]preset.TacticPreset, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PresetService.List")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return nil, fmt.Errorf("%w: club_id is required", ErrInvalidInput)
	}

	items, err := s.presetRepo.ListByClubAndTeam(ctx, clubID, strings.TrimSpace(teamID))
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}

	return items, nil
}

func (s *PresetService) Load(ctx context.Context, presetID string) (preset.TacticPreset, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PresetService.Load")
	defer span.End()

	presetID = strings.TrimSpace(presetID)
	if presetID == "" {
		return preset.TacticPreset{}, fmt.Errorf("%w: preset id is required", ErrInvalidInput)
	}

	item, exists, err := s.presetRepo.GetByID(ctx, presetID)
	if err != nil {
		return preset.TacticPreset{}, fmt.Errorf("load preset: %w", err)
	}
	if !exists {
		return preset.TacticPreset{}, fmt.Errorf("%w: preset=%s", ErrNotFound, presetID)
	}

	return item, nil
}

// Apply copies the preset into the active lineup for the scope. Presets saved
// in the historical list shape apply with empty starters rather than a
// guessed slot assignment. When the preset carries instructions they become
// the lineup's tactical config through the second, independent write.
func (s *PresetService) Apply(ctx context.Context, clubID, teamID, presetID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PresetService.Apply")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	teamID = strings.TrimSpace(teamID)
	if clubID == "" {
		return fmt.Errorf("%w: club_id is required", ErrInvalidInput)
	}

	item, err := s.Load(ctx, presetID)
	if err != nil {
		return err
	}

	starters := item.Starters.Slots
	if item.Starters.IsLegacy() {
		s.logger.WarnContext(ctx, "preset has legacy list-shaped starters, applying empty slot map",
			"preset_id", item.ID, "club_id", clubID)
		starters = map[string]string{}
	}

	if _, err := s.lineupSvc.Save(ctx, SaveLineupInput{
		ClubID:      clubID,
		TeamID:      teamID,
		Formation:   item.Formation,
		Starters:    starters,
		Substitutes: item.Substitutes,
		Captains:    item.Captains,
		SetPieces:   item.SetPieces,
	}); err != nil {
		return fmt.Errorf("apply preset to lineup: %w", err)
	}

	if item.Instructions != "" {
		config := map[string]string{"instructions": item.Instructions}
		if err := s.lineupSvc.SaveTacticalConfig(ctx, clubID, teamID, config); err != nil {
			return fmt.Errorf("apply preset instructions: %w", err)
		}
	}

	return nil
}

// Delete removes the preset by id. Deleting an unknown id is a no-op.
func (s *PresetService) Delete(ctx context.Context, presetID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PresetService.Delete")
	defer span.End()

	presetID = strings.TrimSpace(presetID)
	if presetID == "" {
		return fmt.Errorf("%w: preset id is required", ErrInvalidInput)
	}

	if err := s.presetRepo.DeleteByID(ctx, presetID); err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}

	return nil
}
