package usecase

import (
	"errors"
	"testing"

	"github.com/maelvns/footlogic/internal/domain/event"
	"github.com/maelvns/footlogic/internal/infrastructure/repository/memory"
	idgen "github.com/maelvns/footlogic/internal/platform/id"
	"github.com/maelvns/footlogic/internal/platform/logging"
)

func newAttendanceService(t *testing.T) (*AttendanceService, string) {
	t.Helper()

	eventRepo := memory.NewEventRepository()
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := NewAttendanceService(eventRepo, playerRepo, logging.NewNop())

	matchSvc := NewMatchService(eventRepo, idgen.NewRandomGenerator(), logging.NewNop())
	created, err := matchSvc.CreateEvent(t.Context(), CreateEventInput{
		ClubID: memory.ClubIDLesAiglons,
		TeamID: memory.TeamIDSeniorsA,
		Title:  "Saturday training",
		Type:   event.TypeTraining,
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	return svc, created.ID
}

func TestAttendanceService_GetDefaultsToEmptyMap(t *testing.T) {
	svc, eventID := newAttendanceService(t)

	got, err := svc.Get(t.Context(), eventID)
	if err != nil {
		t.Fatalf("get attendance: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty attendance map, got %v", got)
	}

	// Unknown events read the same way, they never 404 here.
	got, err = svc.Get(t.Context(), "ev-unknown")
	if err != nil {
		t.Fatalf("get attendance for unknown event: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty map for unknown event, got %v", got)
	}
}

func TestAttendanceService_SetBulkRoundTrip(t *testing.T) {
	svc, eventID := newAttendanceService(t)

	entries := map[string]string{
		memory.PlayerIDKeeper:   "Present",
		memory.PlayerIDStriker:  event.AttendanceAbsent,
		memory.PlayerIDMidfield: event.AttendancePending,
		"  ":                    event.AttendancePresent,
	}
	if err := svc.SetBulk(t.Context(), eventID, entries); err != nil {
		t.Fatalf("set bulk attendance: %v", err)
	}

	got, err := svc.Get(t.Context(), eventID)
	if err != nil {
		t.Fatalf("get attendance: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %v", got)
	}
	if got[memory.PlayerIDKeeper] != event.AttendancePresent {
		t.Fatalf("expected status normalized to lowercase, got %q", got[memory.PlayerIDKeeper])
	}
}

func TestAttendanceService_SetBulkRejectsWholeBatchOnBadStatus(t *testing.T) {
	svc, eventID := newAttendanceService(t)

	err := svc.SetBulk(t.Context(), eventID, map[string]string{
		memory.PlayerIDKeeper:  event.AttendancePresent,
		memory.PlayerIDStriker: "maybe",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	got, err := svc.Get(t.Context(), eventID)
	if err != nil {
		t.Fatalf("get attendance: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("rejected batch must not be partially applied, got %v", got)
	}
}

func TestAttendanceService_SetBulkEmptyIsNoop(t *testing.T) {
	svc, eventID := newAttendanceService(t)

	if err := svc.SetBulk(t.Context(), eventID, nil); err != nil {
		t.Fatalf("empty bulk must be a no-op: %v", err)
	}
	if err := svc.SetBulk(t.Context(), eventID, map[string]string{"  ": event.AttendancePresent}); err != nil {
		t.Fatalf("bulk with only blank ids must be a no-op: %v", err)
	}
}

func TestAttendanceService_SetBulkMergesWithExisting(t *testing.T) {
	svc, eventID := newAttendanceService(t)

	if err := svc.Set(t.Context(), eventID, memory.PlayerIDKeeper, event.AttendancePresent); err != nil {
		t.Fatalf("set attendance: %v", err)
	}
	if err := svc.SetBulk(t.Context(), eventID, map[string]string{
		memory.PlayerIDStriker: event.AttendanceAbsent,
	}); err != nil {
		t.Fatalf("set bulk attendance: %v", err)
	}

	got, err := svc.Get(t.Context(), eventID)
	if err != nil {
		t.Fatalf("get attendance: %v", err)
	}
	if got[memory.PlayerIDKeeper] != event.AttendancePresent || got[memory.PlayerIDStriker] != event.AttendanceAbsent {
		t.Fatalf("bulk write must merge, not replace: %v", got)
	}
}

func TestAttendanceService_SetRejectsUnknownStatus(t *testing.T) {
	svc, eventID := newAttendanceService(t)

	err := svc.Set(t.Context(), eventID, memory.PlayerIDKeeper, "late")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAttendanceService_RosterJoinsPlayers(t *testing.T) {
	svc, eventID := newAttendanceService(t)

	if err := svc.SetBulk(t.Context(), eventID, map[string]string{
		memory.PlayerIDKeeper:  event.AttendancePresent,
		memory.PlayerIDStriker: event.AttendanceAbsent,
		"pl-ghost":             event.AttendancePending,
	}); err != nil {
		t.Fatalf("set bulk attendance: %v", err)
	}

	roster, err := svc.Roster(t.Context(), eventID)
	if err != nil {
		t.Fatalf("get roster: %v", err)
	}
	// pl-ghost has an attendance entry but no player record, so it is skipped.
	if len(roster) != 2 {
		t.Fatalf("expected 2 roster entries, got %d", len(roster))
	}
	for _, entry := range roster {
		if entry.Player.Name == "" {
			t.Fatalf("roster entry missing player data: %+v", entry)
		}
		if entry.Status == "" {
			t.Fatalf("roster entry missing status: %+v", entry)
		}
	}
}

func TestAttendanceService_ClubRoster(t *testing.T) {
	svc, _ := newAttendanceService(t)

	all, err := svc.ClubRoster(t.Context(), memory.ClubIDLesAiglons, "")
	if err != nil {
		t.Fatalf("club roster: %v", err)
	}
	if len(all) != len(memory.SeedPlayers()) {
		t.Fatalf("expected the whole club, got %d players", len(all))
	}

	u19, err := svc.ClubRoster(t.Context(), memory.ClubIDLesAiglons, memory.TeamIDU19)
	if err != nil {
		t.Fatalf("club roster for team: %v", err)
	}
	if len(u19) != 2 {
		t.Fatalf("expected 2 u19 players, got %d", len(u19))
	}
	for _, p := range u19 {
		if p.TeamID != memory.TeamIDU19 {
			t.Fatalf("team filter leaked player %s from %s", p.ID, p.TeamID)
		}
	}

	if _, err := svc.ClubRoster(t.Context(), "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without club id, got %v", err)
	}
}

func TestAttendanceService_AddAndRemoveAttendeeOverwrite(t *testing.T) {
	svc, eventID := newAttendanceService(t)

	if err := svc.AddAttendee(t.Context(), eventID, memory.PlayerIDKeeper); err != nil {
		t.Fatalf("add attendee: %v", err)
	}
	got, err := svc.Get(t.Context(), eventID)
	if err != nil {
		t.Fatalf("get attendance: %v", err)
	}
	if got[memory.PlayerIDKeeper] != event.AttendancePresent {
		t.Fatalf("expected present after add, got %q", got[memory.PlayerIDKeeper])
	}

	// Removing keeps the entry, flipped to absent.
	if err := svc.RemoveAttendee(t.Context(), eventID, memory.PlayerIDKeeper); err != nil {
		t.Fatalf("remove attendee: %v", err)
	}
	got, err = svc.Get(t.Context(), eventID)
	if err != nil {
		t.Fatalf("get attendance: %v", err)
	}
	if got[memory.PlayerIDKeeper] != event.AttendanceAbsent {
		t.Fatalf("expected absent after remove, got %q", got[memory.PlayerIDKeeper])
	}
	if len(got) != 1 {
		t.Fatalf("remove must overwrite, not delete: %v", got)
	}
}
