package notifier

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/maelvns/footlogic/internal/domain/event"
	"github.com/maelvns/footlogic/internal/platform/logging"
	"github.com/maelvns/footlogic/internal/platform/resilience"
)

var errWebhookTransient = crerr.New("webhook transient failure")

const (
	defaultTimeout = 10 * time.Second
	defaultWorkers = 4
	defaultRetries = 2
)

type WebhookNotifierConfig struct {
	WebhookURL          string
	Timeout             time.Duration
	Workers             int
	Retries             int
	CircuitFailureCount int
	CircuitOpenTimeout  time.Duration
}

// WebhookNotifier delivers convocation notifications to an external endpoint,
// one POST per invited player, fanned out over a bounded worker pool. A
// circuit breaker keeps a dead endpoint from stalling convocation issue calls.
type WebhookNotifier struct {
	client  *http.Client
	url     string
	workers int
	retries int
	logger  *logging.Logger
	breaker *resilience.CircuitBreaker
}

type convocationPayload struct {
	EventID   string    `json:"event_id"`
	ClubID    string    `json:"club_id"`
	TeamID    string    `json:"team_id,omitempty"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	PlayerID  string    `json:"player_id"`
	Status    string    `json:"status"`
	IssuedAt  time.Time `json:"issued_at"`
	EventType string    `json:"event_type"`
}

func NewWebhookNotifier(cfg WebhookNotifierConfig, logger *logging.Logger) *WebhookNotifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	retries := cfg.Retries
	if retries < 0 {
		retries = defaultRetries
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &WebhookNotifier{
		client:  &http.Client{Timeout: timeout},
		url:     cfg.WebhookURL,
		workers: workers,
		retries: retries,
		logger:  logger,
		breaker: resilience.NewCircuitBreaker(cfg.CircuitFailureCount, cfg.CircuitOpenTimeout),
	}
}

// NotifyConvocations posts one notification per player. Deliveries run
// concurrently; the call returns after every delivery has been attempted and
// reports how many failed.
func (n *WebhookNotifier) NotifyConvocations(ctx context.Context, item event.Event, playerIDs []string) error {
	if n.url == "" || len(playerIDs) == 0 {
		return nil
	}

	pool, err := ants.NewPool(n.workers)
	if err != nil {
		return fmt.Errorf("create notifier pool: %w", err)
	}
	defer pool.Release()

	issuedAt := time.Now().UTC()

	var failed atomic.Int32
	var workers sync.WaitGroup
	for _, playerID := range playerIDs {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			payload := convocationPayload{
				EventID:   item.ID,
				ClubID:    item.ClubID,
				TeamID:    item.TeamID,
				Title:     item.Title,
				Date:      item.Date,
				PlayerID:  playerID,
				Status:    event.ConvocationPending,
				IssuedAt:  issuedAt,
				EventType: string(item.Type),
			}

			if err := n.deliver(ctx, payload); err != nil {
				failed.Add(1)
				n.logger.WarnContext(ctx, "convocation notification failed",
					"event_id", item.ID, "player_id", playerID, "error", err)
			}
		}); err != nil {
			workers.Done()
			failed.Add(1)
		}
	}
	workers.Wait()

	if count := failed.Load(); count > 0 {
		return fmt.Errorf("%d of %d convocation notifications failed", count, len(playerIDs))
	}

	return nil
}

func (n *WebhookNotifier) deliver(ctx context.Context, payload convocationPayload) error {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode convocation payload: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= n.retries; attempt++ {
		if err := n.breaker.Allow(); err != nil {
			return err
		}

		lastErr = n.post(ctx, body)
		if lastErr == nil {
			n.breaker.RecordSuccess()
			return nil
		}

		n.breaker.RecordFailure()
		if !crerr.Is(lastErr, errWebhookTransient) {
			return lastErr
		}
	}

	return lastErr
}

func (n *WebhookNotifier) post(ctx context.Context, body []byte) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.Write(body); err != nil {
		return fmt.Errorf("buffer convocation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(buf.B))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return crerr.Wrapf(errWebhookTransient, "post webhook: %v", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return crerr.Wrapf(errWebhookTransient, "webhook returned %d", resp.StatusCode)
	default:
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}
}
