package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/maelvns/footlogic/internal/domain/preset"
	"github.com/maelvns/footlogic/internal/infrastructure/repository/memory"
	idgen "github.com/maelvns/footlogic/internal/platform/id"
	"github.com/maelvns/footlogic/internal/platform/logging"
)

func newPresetService() (*PresetService, *LineupService, *memory.PresetRepository) {
	presetRepo := memory.NewPresetRepository()
	lineupSvc := NewLineupService(memory.NewLineupRepository(), logging.NewNop())
	svc := NewPresetService(presetRepo, lineupSvc, idgen.NewRandomGenerator(), logging.NewNop())
	return svc, lineupSvc, presetRepo
}

func TestPresetService_SaveOverwritesByName(t *testing.T) {
	svc, _, _ := newPresetService()

	firstID, err := svc.Save(t.Context(), SavePresetInput{
		ClubID:    memory.ClubIDLesAiglons,
		TeamID:    memory.TeamIDSeniorsA,
		Name:      "pressing",
		Formation: "4-3-3",
		Starters:  map[string]string{"GK": memory.PlayerIDKeeper},
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	secondID, err := svc.Save(t.Context(), SavePresetInput{
		ClubID:    memory.ClubIDLesAiglons,
		TeamID:    memory.TeamIDSeniorsA,
		Name:      "pressing",
		Formation: "4-4-2",
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if firstID != secondID {
		t.Fatalf("overwrite must keep the original id: %s vs %s", firstID, secondID)
	}

	items, err := svc.List(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDSeniorsA)
	if err != nil {
		t.Fatalf("list presets: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected a single preset after overwrite, got %d", len(items))
	}
	if items[0].Formation != "4-4-2" {
		t.Fatalf("expected overwritten formation, got %s", items[0].Formation)
	}
}

func TestPresetService_ListNewestFirst(t *testing.T) {
	svc, _, _ := newPresetService()

	base := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	names := []string{"first", "second", "third"}
	for i, name := range names {
		stamp := base.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return stamp }
		if _, err := svc.Save(t.Context(), SavePresetInput{
			ClubID:    memory.ClubIDLesAiglons,
			Name:      name,
			Formation: "4-3-3",
		}); err != nil {
			t.Fatalf("save preset %s: %v", name, err)
		}
	}

	items, err := svc.List(t.Context(), memory.ClubIDLesAiglons, "")
	if err != nil {
		t.Fatalf("list presets: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(items))
	}
	if items[0].Name != "third" || items[2].Name != "first" {
		t.Fatalf("expected newest first ordering, got %s..%s", items[0].Name, items[2].Name)
	}
}

func TestPresetService_LoadUnknownID(t *testing.T) {
	svc, _, _ := newPresetService()

	if _, err := svc.Load(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPresetService_Apply(t *testing.T) {
	svc, lineupSvc, _ := newPresetService()

	presetID, err := svc.Save(t.Context(), SavePresetInput{
		ClubID:       memory.ClubIDLesAiglons,
		TeamID:       memory.TeamIDSeniorsA,
		Name:         "counter",
		Formation:    "5-3-2",
		Starters:     map[string]string{"GK": memory.PlayerIDKeeper, "ST": memory.PlayerIDStriker},
		Substitutes:  []string{memory.PlayerIDMidfield},
		Instructions: "sit deep, hit the channels",
	})
	if err != nil {
		t.Fatalf("save preset: %v", err)
	}

	if err := svc.Apply(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDSeniorsA, presetID); err != nil {
		t.Fatalf("apply preset: %v", err)
	}

	got, err := lineupSvc.GetActive(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDSeniorsA)
	if err != nil {
		t.Fatalf("get active lineup: %v", err)
	}
	if got.Formation != "5-3-2" {
		t.Fatalf("unexpected formation after apply: %s", got.Formation)
	}
	if got.Starters["ST"] != memory.PlayerIDStriker {
		t.Fatalf("unexpected starters after apply: %v", got.Starters)
	}
	if got.TacticalConfig["instructions"] != "sit deep, hit the channels" {
		t.Fatalf("expected instructions copied into tactical config, got %v", got.TacticalConfig)
	}
}

func TestPresetService_ApplyLegacyListStarters(t *testing.T) {
	svc, lineupSvc, presetRepo := newPresetService()

	// Old records stored starters as a plain id list; applying one must not
	// guess a slot assignment.
	legacy := preset.TacticPreset{
		ID:        "legacy-1",
		ClubID:    memory.ClubIDLesAiglons,
		TeamID:    memory.TeamIDSeniorsA,
		Name:      "old-school",
		Formation: "4-4-2",
		Starters:  preset.Starters{LegacyList: []string{memory.PlayerIDKeeper, memory.PlayerIDStriker}},
		CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	if _, err := presetRepo.Upsert(t.Context(), legacy); err != nil {
		t.Fatalf("seed legacy preset: %v", err)
	}

	if err := svc.Apply(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDSeniorsA, "legacy-1"); err != nil {
		t.Fatalf("apply legacy preset: %v", err)
	}

	got, err := lineupSvc.GetActive(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDSeniorsA)
	if err != nil {
		t.Fatalf("get active lineup: %v", err)
	}
	if got.Formation != "4-4-2" {
		t.Fatalf("unexpected formation: %s", got.Formation)
	}
	if len(got.Starters) != 0 {
		t.Fatalf("legacy starters must apply as an empty slot map, got %v", got.Starters)
	}
}

func TestPresetService_ApplyUnknownPreset(t *testing.T) {
	svc, _, _ := newPresetService()

	err := svc.Apply(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDSeniorsA, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPresetService_DeleteIsIdempotent(t *testing.T) {
	svc, _, _ := newPresetService()

	presetID, err := svc.Save(t.Context(), SavePresetInput{
		ClubID:    memory.ClubIDLesAiglons,
		Name:      "short-lived",
		Formation: "4-3-3",
	})
	if err != nil {
		t.Fatalf("save preset: %v", err)
	}

	if err := svc.Delete(t.Context(), presetID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(t.Context(), presetID); err != nil {
		t.Fatalf("second delete must be a no-op: %v", err)
	}

	items, err := svc.List(t.Context(), memory.ClubIDLesAiglons, "")
	if err != nil {
		t.Fatalf("list presets: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no presets after delete, got %d", len(items))
	}
}

func TestPresetService_ScopedListing(t *testing.T) {
	svc, _, _ := newPresetService()

	if _, err := svc.Save(t.Context(), SavePresetInput{
		ClubID: memory.ClubIDLesAiglons, TeamID: memory.TeamIDSeniorsA, Name: "seniors", Formation: "4-3-3",
	}); err != nil {
		t.Fatalf("save seniors preset: %v", err)
	}
	if _, err := svc.Save(t.Context(), SavePresetInput{
		ClubID: memory.ClubIDLesAiglons, TeamID: memory.TeamIDU19, Name: "youth", Formation: "4-4-2",
	}); err != nil {
		t.Fatalf("save u19 preset: %v", err)
	}

	items, err := svc.List(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDU19)
	if err != nil {
		t.Fatalf("list presets: %v", err)
	}
	if len(items) != 1 || items[0].Name != "youth" {
		t.Fatalf("unexpected scoped listing: %+v", items)
	}
}
