package usecase

import (
	"errors"
	"testing"

	"github.com/maelvns/footlogic/internal/infrastructure/repository/memory"
	"github.com/maelvns/footlogic/internal/platform/logging"
)

func newLineupService() (*LineupService, *memory.LineupRepository) {
	repo := memory.NewLineupRepository()
	return NewLineupService(repo, logging.NewNop()), repo
}

func TestLineupService_SaveAndGetActive(t *testing.T) {
	svc, _ := newLineupService()

	saved, err := svc.Save(t.Context(), SaveLineupInput{
		ClubID:      memory.ClubIDLesAiglons,
		TeamID:      memory.TeamIDSeniorsA,
		Formation:   "4-3-3",
		Starters:    map[string]string{"GK": memory.PlayerIDKeeper, "ST": memory.PlayerIDStriker},
		Substitutes: []string{memory.PlayerIDMidfield},
		Captains:    []string{memory.PlayerIDStriker},
		SetPieces:   map[string][]string{"corners": {memory.PlayerIDMidfield}},
	})
	if err != nil {
		t.Fatalf("save lineup: %v", err)
	}
	if saved.Formation != "4-3-3" {
		t.Fatalf("unexpected formation: %s", saved.Formation)
	}

	got, err := svc.GetActive(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDSeniorsA)
	if err != nil {
		t.Fatalf("get active lineup: %v", err)
	}
	if got.Starters["GK"] != memory.PlayerIDKeeper {
		t.Fatalf("unexpected GK starter: %s", got.Starters["GK"])
	}
	if len(got.SetPieces["corners"]) != 1 {
		t.Fatalf("unexpected corner takers: %v", got.SetPieces["corners"])
	}
}

func TestLineupService_SaveIsIdempotent(t *testing.T) {
	svc, _ := newLineupService()

	input := SaveLineupInput{
		ClubID:    memory.ClubIDLesAiglons,
		TeamID:    memory.TeamIDSeniorsA,
		Formation: "4-4-2",
		Starters:  map[string]string{"GK": memory.PlayerIDKeeper},
	}

	if _, err := svc.Save(t.Context(), input); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, err := svc.Save(t.Context(), input); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := svc.GetActive(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDSeniorsA)
	if err != nil {
		t.Fatalf("get active lineup: %v", err)
	}
	if got.Formation != "4-4-2" {
		t.Fatalf("unexpected formation after repeated save: %s", got.Formation)
	}
}

func TestLineupService_SavePrunesEmptyReferences(t *testing.T) {
	svc, _ := newLineupService()

	saved, err := svc.Save(t.Context(), SaveLineupInput{
		ClubID:      memory.ClubIDLesAiglons,
		TeamID:      memory.TeamIDSeniorsA,
		Formation:   "4-3-3",
		Starters:    map[string]string{"GK": memory.PlayerIDKeeper, "LB": "  ", "": memory.PlayerIDStriker},
		Substitutes: []string{"", "  ", memory.PlayerIDMidfield},
		Captains:    []string{""},
		SetPieces:   map[string][]string{"penalties": {"", memory.PlayerIDStriker}, " ": {memory.PlayerIDKeeper}},
	})
	if err != nil {
		t.Fatalf("save lineup: %v", err)
	}

	if len(saved.Starters) != 1 {
		t.Fatalf("expected empty starter entries pruned, got %v", saved.Starters)
	}
	if len(saved.Substitutes) != 1 || saved.Substitutes[0] != memory.PlayerIDMidfield {
		t.Fatalf("expected blank substitutes pruned, got %v", saved.Substitutes)
	}
	if len(saved.Captains) != 0 {
		t.Fatalf("expected blank captains pruned, got %v", saved.Captains)
	}
	if len(saved.SetPieces) != 1 || len(saved.SetPieces["penalties"]) != 1 {
		t.Fatalf("expected set piece entries pruned, got %v", saved.SetPieces)
	}
}

func TestLineupService_GetActiveDefault(t *testing.T) {
	svc, _ := newLineupService()

	got, err := svc.GetActive(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDU19)
	if err != nil {
		t.Fatalf("get active lineup: %v", err)
	}
	if got.Formation != "4-3-3" {
		t.Fatalf("expected default formation 4-3-3, got %s", got.Formation)
	}
	if len(got.Starters) != 0 {
		t.Fatalf("expected empty default starters, got %v", got.Starters)
	}
}

func TestLineupService_Save_InvalidFormation(t *testing.T) {
	svc, _ := newLineupService()

	_, err := svc.Save(t.Context(), SaveLineupInput{
		ClubID:    memory.ClubIDLesAiglons,
		Formation: "4-x-3",
	})
	if !errors.Is(err, ErrInvalidFormation) {
		t.Fatalf("expected ErrInvalidFormation, got %v", err)
	}
}

func TestLineupService_Save_RequiresClub(t *testing.T) {
	svc, _ := newLineupService()

	_, err := svc.Save(t.Context(), SaveLineupInput{Formation: "4-3-3"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLineupService_TacticalConfigIsIndependentWrite(t *testing.T) {
	svc, _ := newLineupService()

	if _, err := svc.Save(t.Context(), SaveLineupInput{
		ClubID:    memory.ClubIDLesAiglons,
		TeamID:    memory.TeamIDSeniorsA,
		Formation: "4-3-3",
		Starters:  map[string]string{"GK": memory.PlayerIDKeeper},
	}); err != nil {
		t.Fatalf("save lineup: %v", err)
	}

	config := map[string]string{"pressing": "high", "  ": "dropped"}
	if err := svc.SaveTacticalConfig(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDSeniorsA, config); err != nil {
		t.Fatalf("save tactical config: %v", err)
	}

	got, err := svc.GetActive(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDSeniorsA)
	if err != nil {
		t.Fatalf("get active lineup: %v", err)
	}
	if got.TacticalConfig["pressing"] != "high" {
		t.Fatalf("unexpected tactical config: %v", got.TacticalConfig)
	}
	if _, ok := got.TacticalConfig["  "]; ok {
		t.Fatalf("expected blank config keys pruned")
	}
	if got.Starters["GK"] != memory.PlayerIDKeeper {
		t.Fatalf("config write must not touch composition, got starters %v", got.Starters)
	}

	// And the reverse: a composition save keeps the stored config.
	if _, err := svc.Save(t.Context(), SaveLineupInput{
		ClubID:    memory.ClubIDLesAiglons,
		TeamID:    memory.TeamIDSeniorsA,
		Formation: "3-5-2",
	}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err = svc.GetActive(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDSeniorsA)
	if err != nil {
		t.Fatalf("get active lineup: %v", err)
	}
	if got.TacticalConfig["pressing"] != "high" {
		t.Fatalf("composition save must not clear tactical config, got %v", got.TacticalConfig)
	}
}

func TestLineupService_TacticalConfigSeedsDefaultLineup(t *testing.T) {
	svc, _ := newLineupService()

	if err := svc.SaveTacticalConfig(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDU19, map[string]string{"blocks": "low"}); err != nil {
		t.Fatalf("save tactical config: %v", err)
	}

	got, err := svc.GetActive(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDU19)
	if err != nil {
		t.Fatalf("get active lineup: %v", err)
	}
	if got.Formation != "4-3-3" {
		t.Fatalf("expected default formation, got %s", got.Formation)
	}
	if got.TacticalConfig["blocks"] != "low" {
		t.Fatalf("unexpected tactical config: %v", got.TacticalConfig)
	}
}

func TestLineupService_ScopesAreIsolated(t *testing.T) {
	svc, _ := newLineupService()

	if _, err := svc.Save(t.Context(), SaveLineupInput{
		ClubID:    memory.ClubIDLesAiglons,
		TeamID:    memory.TeamIDSeniorsA,
		Formation: "4-3-3",
	}); err != nil {
		t.Fatalf("save seniors lineup: %v", err)
	}
	if _, err := svc.Save(t.Context(), SaveLineupInput{
		ClubID:    memory.ClubIDLesAiglons,
		TeamID:    memory.TeamIDU19,
		Formation: "4-4-2",
	}); err != nil {
		t.Fatalf("save u19 lineup: %v", err)
	}

	seniors, err := svc.GetActive(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDSeniorsA)
	if err != nil {
		t.Fatalf("get seniors lineup: %v", err)
	}
	u19, err := svc.GetActive(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDU19)
	if err != nil {
		t.Fatalf("get u19 lineup: %v", err)
	}
	if seniors.Formation != "4-3-3" || u19.Formation != "4-4-2" {
		t.Fatalf("scopes bled into each other: seniors=%s u19=%s", seniors.Formation, u19.Formation)
	}
}
