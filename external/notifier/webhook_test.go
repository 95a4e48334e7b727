package notifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maelvns/footlogic/internal/domain/event"
	"github.com/maelvns/footlogic/internal/platform/logging"
)

func testEvent() event.Event {
	return event.Event{
		ID:     "evt-1",
		ClubID: "club-1",
		TeamID: "team-a",
		Title:  "Derby",
		Type:   event.TypeMatch,
		Date:   time.Date(2025, 9, 14, 15, 0, 0, 0, time.UTC),
	}
}

func TestWebhookNotifierDeliversOnePostPerPlayer(t *testing.T) {
	var mu sync.Mutex
	received := map[string]convocationPayload{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload convocationPayload
		require.NoError(t, sonic.ConfigDefault.NewDecoder(r.Body).Decode(&payload))

		mu.Lock()
		received[payload.PlayerID] = payload
		mu.Unlock()

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(WebhookNotifierConfig{WebhookURL: srv.URL, Workers: 2}, logging.NewNop())

	err := n.NotifyConvocations(context.Background(), testEvent(), []string{"p1", "p2", "p3"})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 3)
	for _, playerID := range []string{"p1", "p2", "p3"} {
		payload, ok := received[playerID]
		require.True(t, ok, "missing delivery for %s", playerID)
		assert.Equal(t, "evt-1", payload.EventID)
		assert.Equal(t, event.ConvocationPending, payload.Status)
		assert.Equal(t, "match", payload.EventType)
	}
}

func TestWebhookNotifierRetriesTransientFailures(t *testing.T) {
	var mu sync.Mutex
	attempts := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		first := attempts == 1
		mu.Unlock()

		if first {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(WebhookNotifierConfig{
		WebhookURL:          srv.URL,
		Workers:             1,
		Retries:             2,
		CircuitFailureCount: 10,
	}, logging.NewNop())

	err := n.NotifyConvocations(context.Background(), testEvent(), []string{"p1"})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, attempts)
}

func TestWebhookNotifierDoesNotRetryClientErrors(t *testing.T) {
	var mu sync.Mutex
	attempts := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		mu.Unlock()
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(WebhookNotifierConfig{
		WebhookURL:          srv.URL,
		Workers:             1,
		Retries:             3,
		CircuitFailureCount: 10,
	}, logging.NewNop())

	err := n.NotifyConvocations(context.Background(), testEvent(), []string{"p1"})
	require.Error(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, attempts)
}

func TestWebhookNotifierNoopWithoutURLOrPlayers(t *testing.T) {
	n := NewWebhookNotifier(WebhookNotifierConfig{}, logging.NewNop())
	require.NoError(t, n.NotifyConvocations(context.Background(), testEvent(), []string{"p1"}))

	n = NewWebhookNotifier(WebhookNotifierConfig{WebhookURL: "http://localhost:1"}, logging.NewNop())
	require.NoError(t, n.NotifyConvocations(context.Background(), testEvent(), nil))
}
