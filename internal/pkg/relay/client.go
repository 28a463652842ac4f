package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sony/gobreaker"
)

// Notifier pushes scan acknowledgments back to the M2M broker so the originating
// device can display the result. The broker is best-effort: a failed ack never fails
// the attendance transaction that produced it.
type Notifier interface {
	NotifyOutcome(ctx context.Context, ack Ack) error
}

// Ack is the payload written into the broker's acknowledgment container.
type Ack struct {
	SerialID string `json:"serial_id"`
	Kind     string `json:"kind"`
	Reason   string `json:"reason,omitempty"`
	SentAt   string `json:"sent_at"`
}

type HTTPNotifier struct {
	client  *http.Client
	baseURL string
	origin  string
	cb      *gobreaker.CircuitBreaker
}

// NewHTTPNotifier builds a notifier for the broker's notification container. The
// circuit breaker keeps a flapping broker from stalling scan processing.
func NewHTTPNotifier(baseURL, origin string) *HTTPNotifier {
	settings := gobreaker.Settings{
		Name:        "m2m-relay",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
	}

	return &HTTPNotifier{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		origin:  origin,
		cb:      gobreaker.NewCircuitBreaker(settings),
	}
}

// NotifyOutcome posts the acknowledgment, retrying transient failures briefly. The
// breaker short-circuits when the broker has been failing.
func (n *HTTPNotifier) NotifyOutcome(ctx context.Context, ack Ack) error {
	payload, err := json.Marshal(ack)
	if err != nil {
		return fmt.Errorf("failed to marshal relay ack: %w", err)
	}

	_, err = n.cb.Execute(func() (interface{}, error) {
		return backoff.Retry(ctx, func() (struct{}, error) {
			return struct{}{}, n.post(ctx, payload)
		}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(3))
	})
	if err != nil {
		slog.Warn("relay ack not delivered", "serial_id", ack.SerialID, "error", err)
		return err
	}
	return nil
}

func (n *HTTPNotifier) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-M2M-Origin", n.origin)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("relay returned non-successful status code: %d", resp.StatusCode)
	}
	return nil
}

// NopNotifier discards acknowledgments. Used when no relay endpoint is configured.
type NopNotifier struct{}

func (NopNotifier) NotifyOutcome(ctx context.Context, ack Ack) error {
	return nil
}
