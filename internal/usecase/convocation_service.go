package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maelvns/footlogic/internal/domain/event"
	"github.com/maelvns/footlogic/internal/platform/logging"
)

// ConvocationNotifier delivers invitation notifications to players. Delivery
// is best-effort: a failed notification never rolls back the convocations.
type ConvocationNotifier interface {
	NotifyConvocations(ctx context.Context, item event.Event, playerIDs []string) error
}

// ConvocationService runs the invitation/response workflow attached to events.
type ConvocationService struct {
	eventRepo event.Repository
	notifier  ConvocationNotifier
	logger    *logging.Logger
	now       func() time.Time
}

func NewConvocationService(eventRepo event.Repository, notifier ConvocationNotifier, logger *logging.Logger) *ConvocationService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ConvocationService{
		eventRepo: eventRepo,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// Issue invites the given players to the event, creating pending convocation
// entries in bulk. Re-issuing to an already invited player resets their entry
// to pending.
func (s *ConvocationService) Issue(ctx context.Context, eventID string, playerIDs []string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConvocationService.Issue")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	cleaned := pruneIDs(playerIDs)
	if len(cleaned) == 0 {
		return nil
	}

	item, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event for convocation: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	byPlayer := make(map[string]event.Convocation, len(cleaned))
	for _, playerID := range cleaned {
		byPlayer[playerID] = event.Convocation{Status: event.ConvocationPending}
	}

	if err := s.eventRepo.SetConvocations(ctx, eventID, byPlayer); err != nil {
		return fmt.Errorf("issue convocations: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyConvocations(ctx, item, cleaned); err != nil {
			s.logger.WarnContext(ctx, "convocation notifications failed",
				"event_id", eventID, "players", len(cleaned), "error", err)
		}
	}

	return nil
}

// Respond records a player's answer to their convocation. Only confirmed and
// refused are valid answers, and only invited players can respond. Staff
// overrides go through the same path.
func (s *ConvocationService) Respond(ctx context.Context, eventID, playerID, status string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConvocationService.Respond")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	playerID = strings.TrimSpace(playerID)
	status = strings.ToLower(strings.TrimSpace(status))

	if eventID == "" || playerID == "" {
		return fmt.Errorf("%w: event_id and player_id are required", ErrInvalidInput)
	}
	if _, ok := event.AllConvocationResponses[status]; !ok {
		return fmt.Errorf("%w: unknown convocation response %q", ErrInvalidInput, status)
	}

	item, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event for convocation response: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}
	if _, invited := item.Convocations[playerID]; !invited {
		return fmt.Errorf("%w: player %s was not convoked to event %s", ErrNotFound, playerID, eventID)
	}

	responseDate := s.now().UTC()
	update := map[string]event.Convocation{
		playerID: {Status: status, ResponseDate: &responseDate},
	}
	if err := s.eventRepo.SetConvocations(ctx, eventID, update); err != nil {
		return fmt.Errorf("record convocation response: %w", err)
	}

	return nil
}

// Get returns the convocation map for an event, empty when the event is
// unknown or nobody has been invited.
func (s *ConvocationService) Get(ctx context.Context, eventID string) (map[string]event.Convocation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConvocationService.Get")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	item, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get convocations: %w", err)
	}
	if !exists || item.Convocations == nil {
		return map[string]event.Convocation{}, nil
	}

	return item.Convocations, nil
}
