package fetcher

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"newtab-feed/internal/resilience/circuitbreaker"
	"newtab-feed/internal/resilience/retry"
	"newtab-feed/internal/usecase/fetch"

	"golang.org/x/time/rate"
)

// Client performs GET requests for widget providers.
// Thread safety: Client is safe for concurrent use.
type Client struct {
	client   *http.Client
	breakers *circuitbreaker.Registry
	config   ClientConfig

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewClient creates a client. A nil registry gets a fresh one using
// circuitbreaker.UpstreamConfig per host.
func NewClient(config ClientConfig, breakers *circuitbreaker.Registry) *Client {
	if breakers == nil {
		breakers = circuitbreaker.NewRegistry(nil)
	}
	c := &Client{
		breakers: breakers,
		config:   config,
		limiters: make(map[string]*rate.Limiter),
	}

	c.client = &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= c.config.MaxRedirects {
				return fmt.Errorf("%w: %d", errTooManyRedirects, len(via))
			}
			if _, err := validateURL(req.URL.String(), c.config.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}
	return c
}

// Get fetches urlStr and returns the body of a 2xx response.
//
// Errors wrap the fetch taxonomy: fetch.ErrInvalidURL for rejected URLs,
// fetch.ErrCircuitOpen when the host's breaker is open, fetch.ErrTimeout when
// ctx expires, fetch.ErrInvalidResponse for non-2xx statuses and
// fetch.ErrBodyTooLarge for oversized bodies. Everything else is
// fetch.ErrTransport.
//
// Requests to one host are paced by HostRate. A request that cannot get a
// slot before ctx expires fails with fetch.ErrTimeout without being sent.
func (c *Client) Get(ctx context.Context, urlStr string) ([]byte, error) {
	host, err := validateURL(urlStr, c.config.DenyPrivateIPs)
	if err != nil {
		return nil, err
	}

	if err := c.wait(ctx, host); err != nil {
		return nil, fmt.Errorf("%w: %s: waiting for request slot: %v", fetch.ErrTimeout, host, err)
	}

	cb := c.breakers.Get(host)
	result, err := cb.Execute(func() (interface{}, error) {
		return c.doGet(ctx, urlStr)
	})
	if err != nil {
		if errors.Is(err, circuitbreaker.ErrOpenState) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
			slog.Warn("upstream circuit breaker open, request rejected",
				slog.String("host", host),
				slog.String("url", urlStr),
				slog.String("state", cb.State().String()))
			return nil, fmt.Errorf("%s: %w", host, fetch.ErrCircuitOpen)
		}
		return nil, err
	}
	return result.([]byte), nil
}

func (c *Client) doGet(ctx context.Context, urlStr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", fetch.ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json, application/rss+xml, text/html;q=0.9, */*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 上流のエラーボディは読まずに捨てる
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %w", fetch.ErrInvalidResponse,
			&retry.HTTPError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxBodySize+1))
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	if int64(len(body)) > c.config.MaxBodySize {
		return nil, fmt.Errorf("%w: limit %d bytes", fetch.ErrBodyTooLarge, c.config.MaxBodySize)
	}
	return body, nil
}

func classifyTransportError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", fetch.ErrTimeout, err)
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, errTooManyRedirects), errors.Is(err, fetch.ErrInvalidURL):
		return fmt.Errorf("%w: %v", fetch.ErrInvalidResponse, err)
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", fetch.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", fetch.ErrTransport, err)
}

// wait blocks until host may receive another request.
func (c *Client) wait(ctx context.Context, host string) error {
	if c.config.HostRate <= 0 {
		return nil
	}
	c.mu.Lock()
	lim, ok := c.limiters[host]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(c.config.HostRate), c.config.HostBurst)
		c.limiters[host] = lim
	}
	c.mu.Unlock()
	return lim.Wait(ctx)
}

// BreakerStates reports the circuit state per upstream host.
func (c *Client) BreakerStates() map[string]string {
	return c.breakers.States()
}
