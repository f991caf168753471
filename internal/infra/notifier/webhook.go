package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"newtab-feed/internal/resilience/retry"
)

// maxErrorBody caps how much of an error response is kept in the error.
const maxErrorBody = 512

// webhook posts JSON payloads to one incoming-webhook URL, paced by a token
// bucket and retried on 5xx, 429 and network timeouts. A 429 waits for the
// server's Retry-After.
type webhook struct {
	name    string
	url     string
	client  *http.Client
	limiter *rate.Limiter
	retry   retry.Config
	logger  *slog.Logger
}

func newWebhook(name, url string, timeout time.Duration, logger *slog.Logger) *webhook {
	if logger == nil {
		logger = slog.Default()
	}
	rc := retry.WebhookConfig()
	rc.Name = name + ".webhook"
	return &webhook{
		name:    name,
		url:     url,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(1), 1),
		retry:   rc,
		logger:  logger,
	}
}

// send waits for a token, then posts payload with retries.
func (w *webhook) send(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", w.name, err)
	}
	requestID := uuid.NewString()

	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s rate limiter: %w", w.name, err)
	}

	err = retry.WithBackoff(ctx, w.retry, func() error {
		return w.post(ctx, body)
	})
	if err != nil {
		w.logger.Error("webhook notification failed",
			slog.String("notifier", w.name),
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return fmt.Errorf("%s notification: %w", w.name, err)
	}
	w.logger.Info("webhook notification sent",
		slog.String("notifier", w.name),
		slog.String("request_id", requestID))
	return nil
}

func (w *webhook) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &retry.HTTPError{
		StatusCode: resp.StatusCode,
		Message:    string(msg),
		RetryAfter: retry.ParseRetryAfter(resp.Header.Get("Retry-After")),
	}
}
