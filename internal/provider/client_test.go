package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/notification-service/internal/config"
	"github.com/aliskhannn/notification-service/internal/model"
)

// providerStub replays a fixed sequence of status codes and records what it saw.
type providerStub struct {
	mu       sync.Mutex
	statuses []int
	calls    int
	bodies   []map[string]string
	apiKeys  []string
	paths    []string
}

func (p *providerStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		defer p.mu.Unlock()

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)

		p.bodies = append(p.bodies, body)
		p.apiKeys = append(p.apiKeys, r.Header.Get("X-API-Key"))
		p.paths = append(p.paths, r.URL.Path)

		status := http.StatusOK
		if p.calls < len(p.statuses) {
			status = p.statuses[p.calls]
		}
		p.calls++

		w.WriteHeader(status)
	}
}

func newTestClient(t *testing.T, baseURL string) (*Client, *[]time.Duration) {
	t.Helper()

	c := NewClient(config.Provider{
		BaseURL:      baseURL,
		APIKey:       "test-key",
		Timeout:      time.Second,
		MaxRetryWait: 4 * time.Second,
	})

	var sleeps []time.Duration
	c.sleep = func(d time.Duration) {
		sleeps = append(sleeps, d)
	}

	return c, &sleeps
}

func testRequest() model.Request {
	return model.Request{
		ID:      uuid.New(),
		To:      "a@b.com",
		Message: "hi",
		Channel: model.ChannelEmail,
		Status:  model.StatusProcessing,
	}
}

func TestClient_Deliver_Success(t *testing.T) {
	stub := &providerStub{}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c, sleeps := newTestClient(t, srv.URL)
	strategy := retry.Strategy{Attempts: 3, Delay: 500 * time.Millisecond, Backoff: 2}

	req := testRequest()
	require.NoError(t, c.Deliver(context.Background(), strategy, req))

	assert.Equal(t, 1, stub.calls)
	assert.Empty(t, *sleeps)
	assert.Equal(t, "/v1/notify", stub.paths[0])
	assert.Equal(t, "test-key", stub.apiKeys[0])
	assert.Equal(t, map[string]string{
		"to":      "a@b.com",
		"message": "hi",
		"type":    "email",
	}, stub.bodies[0])
}

func TestClient_Deliver_RetriesThenSucceeds(t *testing.T) {
	stub := &providerStub{statuses: []int{
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		http.StatusOK,
	}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c, sleeps := newTestClient(t, srv.URL)
	strategy := retry.Strategy{Attempts: 3, Delay: 500 * time.Millisecond, Backoff: 2}

	require.NoError(t, c.Deliver(context.Background(), strategy, testRequest()))

	assert.Equal(t, 3, stub.calls)

	// Two waits: min wait, then doubled.
	require.Len(t, *sleeps, 2)
	assert.Equal(t, 500*time.Millisecond, (*sleeps)[0])
	assert.Equal(t, time.Second, (*sleeps)[1])

	var total time.Duration
	for _, d := range *sleeps {
		total += d
	}
	assert.GreaterOrEqual(t, total, 1500*time.Millisecond)
}

func TestClient_Deliver_TooManyRequestsIsRetryable(t *testing.T) {
	stub := &providerStub{statuses: []int{http.StatusTooManyRequests, http.StatusOK}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	require.NoError(t, c.Deliver(context.Background(), strategy, testRequest()))
	assert.Equal(t, 2, stub.calls)
}

func TestClient_Deliver_NonRetryableShortCircuits(t *testing.T) {
	stub := &providerStub{statuses: []int{http.StatusBadRequest}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c, sleeps := newTestClient(t, srv.URL)
	strategy := retry.Strategy{Attempts: 3, Delay: 500 * time.Millisecond, Backoff: 2}

	err := c.Deliver(context.Background(), strategy, testRequest())
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
	assert.False(t, statusErr.Retryable())

	// One attempt, no waits: the remaining budget is not consumed.
	assert.Equal(t, 1, stub.calls)
	assert.Empty(t, *sleeps)
}

func TestClient_Deliver_AttemptBudgetExhausted(t *testing.T) {
	stub := &providerStub{statuses: []int{
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		http.StatusInternalServerError,
	}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c, sleeps := newTestClient(t, srv.URL)
	strategy := retry.Strategy{Attempts: 3, Delay: 500 * time.Millisecond, Backoff: 2}

	err := c.Deliver(context.Background(), strategy, testRequest())
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)

	assert.Equal(t, 3, stub.calls)
	assert.Len(t, *sleeps, 2)
}

func TestClient_Deliver_BackoffClampedAtMaxWait(t *testing.T) {
	stub := &providerStub{statuses: []int{
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		http.StatusInternalServerError,
	}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c := NewClient(config.Provider{
		BaseURL:      srv.URL,
		APIKey:       "test-key",
		Timeout:      time.Second,
		MaxRetryWait: 2 * time.Second,
	})

	var sleeps []time.Duration
	c.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	strategy := retry.Strategy{Attempts: 4, Delay: time.Second, Backoff: 3}

	err := c.Deliver(context.Background(), strategy, testRequest())
	require.Error(t, err)

	// 1s, then 3s clamped to 2s, and it stays clamped.
	require.Len(t, sleeps, 3)
	assert.Equal(t, time.Second, sleeps[0])
	assert.Equal(t, 2*time.Second, sleeps[1])
	assert.Equal(t, 2*time.Second, sleeps[2])
}

func TestClient_Deliver_TransportErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse every connection

	c, sleeps := newTestClient(t, srv.URL)
	strategy := retry.Strategy{Attempts: 2, Delay: time.Millisecond, Backoff: 2}

	err := c.Deliver(context.Background(), strategy, testRequest())
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))

	// Both attempts consumed, one wait in between.
	assert.Len(t, *sleeps, 1)
}
