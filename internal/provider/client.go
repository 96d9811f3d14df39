package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-service/internal/config"
	"github.com/aliskhannn/notification-service/internal/model"
)

// StatusError is a non-2xx answer from the provider.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider responded with status %d", e.Code)
}

// Retryable reports whether the provider response is worth another attempt.
// 429 and 500 are treated as transient; everything else is a hard reject.
func (e *StatusError) Retryable() bool {
	return e.Code == http.StatusTooManyRequests || e.Code == http.StatusInternalServerError
}

// Client sends notifications to the provider over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	maxWait time.Duration
	client  *http.Client

	sleep func(time.Duration) // swapped out in tests
}

// NewClient creates a provider client from the provider section of the config.
// The per-call timeout bounds every individual delivery attempt.
func NewClient(cfg config.Provider) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		maxWait: cfg.MaxRetryWait,
		client:  &http.Client{Timeout: cfg.Timeout},
		sleep:   time.Sleep,
	}
}

// notifyRequest represents the payload for the provider notify API.
type notifyRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Deliver sends the request to the provider, retrying transient failures
// according to strategy: the wait starts at strategy.Delay, is multiplied by
// strategy.Backoff after each attempt and never exceeds the configured
// maximum wait. Transport errors and 429/500 responses are retried; any
// other non-200 response fails immediately without consuming the remaining
// attempts. When the attempt budget runs out the last observed error is
// returned.
func (c *Client) Deliver(ctx context.Context, strategy retry.Strategy, req model.Request) error {
	attempt := 0
	currentDelay := strategy.Delay

	var lastErr error

	for attempt < strategy.Attempts {
		err := c.send(ctx, req)
		if err == nil {
			return nil
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Retryable() {
			return fmt.Errorf("deliver request %s: %w", req.ID, err)
		}

		lastErr = err
		attempt++
		zlog.Logger.Printf("failed to deliver request %s: %v, attempt %d/%d",
			req.ID, err, attempt, strategy.Attempts,
		)

		if attempt == strategy.Attempts {
			break
		}

		c.sleep(currentDelay)
		currentDelay = time.Duration(float64(currentDelay) * strategy.Backoff)
		if currentDelay > c.maxWait {
			currentDelay = c.maxWait
		}
	}

	return fmt.Errorf("deliver request %s: %d attempts exhausted: %w", req.ID, attempt, lastErr)
}

// send performs a single delivery attempt.
func (c *Client) send(ctx context.Context, req model.Request) error {
	body, err := json.Marshal(notifyRequest{
		To:      req.To,
		Message: req.Message,
		Type:    string(req.Channel),
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/v1/notify", bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		// Transport-level failure (refused connection, timeout, DNS),
		// always worth retrying.
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}

	return nil
}
