package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/maelvns/footlogic/internal/domain/event"
)

// EventRepository keeps events in memory with document-store update
// semantics: partial writes against an unknown event id match nothing and
// are not an error.
type EventRepository struct {
	mu    sync.RWMutex
	items map[string]event.Event
}

func NewEventRepository() *EventRepository {
	return &EventRepository{items: make(map[string]event.Event)}
}

func (r *EventRepository) Create(_ context.Context, item event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneEvent(item)
	return nil
}

func (r *EventRepository) GetByID(_ context.Context, eventID string) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[eventID]
	if !ok {
		return event.Event{}, false, nil
	}

	return cloneEvent(item), true, nil
}

func (r *EventRepository) SetAttendance(_ context.Context, eventID string, statusByPlayer map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[eventID]
	if !ok {
		return nil
	}

	if item.Attendance == nil {
		item.Attendance = make(map[string]string, len(statusByPlayer))
	}
	for playerID, status := range statusByPlayer {
		item.Attendance[playerID] = status
	}
	r.items[eventID] = item

	return nil
}

func (r *EventRepository) SetScore(_ context.Context, eventID string, score event.Score) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[eventID]
	if !ok {
		return nil
	}

	item.Score = score
	r.items[eventID] = item

	return nil
}

func (r *EventRepository) SetStatus(_ context.Context, eventID string, status event.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[eventID]
	if !ok {
		return nil
	}

	item.Status = status
	r.items[eventID] = item

	return nil
}

func (r *EventRepository) AppendMatchEvent(_ context.Context, eventID string, entry event.MatchEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[eventID]
	if !ok {
		return nil
	}

	item.MatchEvents = append(item.MatchEvents, entry)
	r.items[eventID] = item

	return nil
}

func (r *EventRepository) SetConvocations(_ context.Context, eventID string, byPlayer map[string]event.Convocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[eventID]
	if !ok {
		return nil
	}

	if item.Convocations == nil {
		item.Convocations = make(map[string]event.Convocation, len(byPlayer))
	}
	for playerID, convocation := range byPlayer {
		item.Convocations[playerID] = convocation
	}
	r.items[eventID] = item

	return nil
}

func (r *EventRepository) ListCompletedMatches(_ context.Context, clubID, teamID string) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0)
	for _, item := range r.items {
		if item.ClubID != clubID || item.Type != event.TypeMatch || item.Status != event.StatusCompleted {
			continue
		}
		if teamID != "" && item.TeamID != teamID {
			continue
		}
		out = append(out, cloneEvent(item))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

func cloneEvent(item event.Event) event.Event {
	copied := item
	copied.Attendance = cloneStringMap(item.Attendance)
	copied.MatchEvents = append([]event.MatchEvent(nil), item.MatchEvents...)
	if item.Convocations != nil {
		copied.Convocations = make(map[string]event.Convocation, len(item.Convocations))
		for playerID, convocation := range item.Convocations {
			copied.Convocations[playerID] = convocation
		}
	}
	return copied
}
