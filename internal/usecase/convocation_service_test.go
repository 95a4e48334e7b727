package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/maelvns/footlogic/internal/domain/event"
	"github.com/maelvns/footlogic/internal/infrastructure/repository/memory"
	idgen "github.com/maelvns/footlogic/internal/platform/id"
	"github.com/maelvns/footlogic/internal/platform/logging"
)

type recordingNotifier struct {
	calls [][]string
	err   error
}

func (n *recordingNotifier) NotifyConvocations(_ context.Context, _ event.Event, playerIDs []string) error {
	n.calls = append(n.calls, playerIDs)
	return n.err
}

func newConvocationService(t *testing.T, notifier ConvocationNotifier) (*ConvocationService, string) {
	t.Helper()

	eventRepo := memory.NewEventRepository()
	svc := NewConvocationService(eventRepo, notifier, logging.NewNop())

	matchSvc := NewMatchService(eventRepo, idgen.NewRandomGenerator(), logging.NewNop())
	created, err := matchSvc.CreateEvent(t.Context(), CreateEventInput{
		ClubID: memory.ClubIDLesAiglons,
		TeamID: memory.TeamIDSeniorsA,
		Title:  "Cup quarter final",
		Type:   event.TypeMatch,
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	return svc, created.ID
}

func TestConvocationService_IssueCreatesPendingEntries(t *testing.T) {
	svc, eventID := newConvocationService(t, nil)

	invited := []string{memory.PlayerIDKeeper, memory.PlayerIDStriker}
	if err := svc.Issue(t.Context(), eventID, invited); err != nil {
		t.Fatalf("issue convocations: %v", err)
	}

	got, err := svc.Get(t.Context(), eventID)
	if err != nil {
		t.Fatalf("get convocations: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 convocations, got %v", got)
	}
	for _, playerID := range invited {
		entry, ok := got[playerID]
		if !ok {
			t.Fatalf("player %s missing from convocations: %v", playerID, got)
		}
		if entry.Status != event.ConvocationPending {
			t.Fatalf("expected pending for %s, got %q", playerID, entry.Status)
		}
		if entry.ResponseDate != nil {
			t.Fatalf("fresh convocation must have no response date: %+v", entry)
		}
	}
}

func TestConvocationService_IssueUnknownEvent(t *testing.T) {
	svc, _ := newConvocationService(t, nil)

	err := svc.Issue(t.Context(), "ev-missing", []string{memory.PlayerIDKeeper})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConvocationService_IssueEmptyIsNoop(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, eventID := newConvocationService(t, notifier)

	if err := svc.Issue(t.Context(), eventID, nil); err != nil {
		t.Fatalf("empty issue must be a no-op: %v", err)
	}
	if err := svc.Issue(t.Context(), eventID, []string{"", "  "}); err != nil {
		t.Fatalf("issue with only blank ids must be a no-op: %v", err)
	}
	if len(notifier.calls) != 0 {
		t.Fatalf("no-op issues must not notify, got %d calls", len(notifier.calls))
	}
}

func TestConvocationService_ReissueResetsToPending(t *testing.T) {
	svc, eventID := newConvocationService(t, nil)

	if err := svc.Issue(t.Context(), eventID, []string{memory.PlayerIDKeeper}); err != nil {
		t.Fatalf("issue convocations: %v", err)
	}
	if err := svc.Respond(t.Context(), eventID, memory.PlayerIDKeeper, event.ConvocationConfirmed); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if err := svc.Issue(t.Context(), eventID, []string{memory.PlayerIDKeeper}); err != nil {
		t.Fatalf("re-issue convocations: %v", err)
	}

	got, err := svc.Get(t.Context(), eventID)
	if err != nil {
		t.Fatalf("get convocations: %v", err)
	}
	entry := got[memory.PlayerIDKeeper]
	if entry.Status != event.ConvocationPending {
		t.Fatalf("re-issue must reset to pending, got %q", entry.Status)
	}
	if entry.ResponseDate != nil {
		t.Fatalf("re-issue must clear the response date, got %v", entry.ResponseDate)
	}
}

func TestConvocationService_Respond(t *testing.T) {
	svc, eventID := newConvocationService(t, nil)

	if err := svc.Issue(t.Context(), eventID, []string{memory.PlayerIDKeeper}); err != nil {
		t.Fatalf("issue convocations: %v", err)
	}

	// Pending is an issued state, not an answer.
	if err := svc.Respond(t.Context(), eventID, memory.PlayerIDKeeper, event.ConvocationPending); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for pending answer, got %v", err)
	}
	if err := svc.Respond(t.Context(), eventID, memory.PlayerIDStriker, event.ConvocationConfirmed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for uninvited player, got %v", err)
	}

	if err := svc.Respond(t.Context(), eventID, memory.PlayerIDKeeper, "Refused"); err != nil {
		t.Fatalf("respond: %v", err)
	}

	got, err := svc.Get(t.Context(), eventID)
	if err != nil {
		t.Fatalf("get convocations: %v", err)
	}
	entry := got[memory.PlayerIDKeeper]
	if entry.Status != event.ConvocationRefused {
		t.Fatalf("expected refused, got %q", entry.Status)
	}
	if entry.ResponseDate == nil {
		t.Fatalf("an answer must carry a response date")
	}
}

func TestConvocationService_GetDefaultsToEmptyMap(t *testing.T) {
	svc, eventID := newConvocationService(t, nil)

	got, err := svc.Get(t.Context(), eventID)
	if err != nil {
		t.Fatalf("get convocations: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty convocation map, got %v", got)
	}

	got, err = svc.Get(t.Context(), "ev-unknown")
	if err != nil {
		t.Fatalf("get convocations for unknown event: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty map for unknown event, got %v", got)
	}
}

func TestConvocationService_IssueNotifiesWithCleanedIDs(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, eventID := newConvocationService(t, notifier)

	if err := svc.Issue(t.Context(), eventID, []string{memory.PlayerIDKeeper, "  ", memory.PlayerIDStriker, ""}); err != nil {
		t.Fatalf("issue convocations: %v", err)
	}

	if len(notifier.calls) != 1 {
		t.Fatalf("expected one notification batch, got %d", len(notifier.calls))
	}
	if len(notifier.calls[0]) != 2 {
		t.Fatalf("expected blank ids dropped before notification, got %v", notifier.calls[0])
	}
}

func TestConvocationService_NotifierFailureDoesNotRollBack(t *testing.T) {
	notifier := &recordingNotifier{err: fmt.Errorf("webhook down")}
	svc, eventID := newConvocationService(t, notifier)

	if err := svc.Issue(t.Context(), eventID, []string{memory.PlayerIDKeeper}); err != nil {
		t.Fatalf("notifier failures must not fail the issue: %v", err)
	}

	got, err := svc.Get(t.Context(), eventID)
	if err != nil {
		t.Fatalf("get convocations: %v", err)
	}
	if got[memory.PlayerIDKeeper].Status != event.ConvocationPending {
		t.Fatalf("convocations must persist despite notifier failure, got %v", got)
	}
}
