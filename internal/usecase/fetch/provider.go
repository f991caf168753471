package fetch

import (
	"context"
	"fmt"
	"time"
)

// DefaultProviderTimeout bounds a provider call whose descriptor does not set one.
const DefaultProviderTimeout = 5 * time.Second

// Provider is one remote source for a value of type T.
// Fetch is called with a context already bounded by Timeout.
type Provider[T any] interface {
	Name() string
	Timeout() time.Duration
	Fetch(ctx context.Context) (T, error)
}

// Getter performs a GET and returns the response body.
// Implementations must honour ctx cancellation and report non-2xx
// statuses as errors.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Descriptor declares an HTTP-backed provider.
// Parse returns ok=false to reject a payload that decoded but lacks the
// fields the caller needs.
type Descriptor[T any] struct {
	Name     string
	Endpoint string
	Timeout  time.Duration
	Parse    func(raw []byte) (T, bool)
}

// HTTPProvider fetches Endpoint through a Getter and parses the body.
type HTTPProvider[T any] struct {
	client Getter
	desc   Descriptor[T]
}

// NewHTTPProvider builds a provider from a descriptor.
func NewHTTPProvider[T any](client Getter, d Descriptor[T]) *HTTPProvider[T] {
	return &HTTPProvider[T]{client: client, desc: d}
}

func (p *HTTPProvider[T]) Name() string { return p.desc.Name }

func (p *HTTPProvider[T]) Timeout() time.Duration { return effectiveTimeout(p.desc.Timeout) }

// Endpoint returns the URL the provider requests.
func (p *HTTPProvider[T]) Endpoint() string { return p.desc.Endpoint }

// Fetch requests the endpoint and runs the parser over the body.
func (p *HTTPProvider[T]) Fetch(ctx context.Context) (T, error) {
	var zero T
	raw, err := p.client.Get(ctx, p.desc.Endpoint)
	if err != nil {
		return zero, err
	}
	v, ok := p.desc.Parse(raw)
	if !ok {
		return zero, fmt.Errorf("%s: parse rejected payload: %w", p.desc.Name, ErrInvalidResponse)
	}
	return v, nil
}

// ProviderFunc adapts a function to Provider. It is used for providers that
// are not a single GET, such as feed readers or scrapers.
type ProviderFunc[T any] struct {
	ProviderName    string
	ProviderTimeout time.Duration
	Func            func(ctx context.Context) (T, error)
}

func (p ProviderFunc[T]) Name() string { return p.ProviderName }

func (p ProviderFunc[T]) Timeout() time.Duration { return effectiveTimeout(p.ProviderTimeout) }

func (p ProviderFunc[T]) Fetch(ctx context.Context) (T, error) { return p.Func(ctx) }

func effectiveTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultProviderTimeout
	}
	return d
}

// ChainTimeout is the worst-case duration of trying every provider in order.
func ChainTimeout[T any](providers []Provider[T]) time.Duration {
	var total time.Duration
	for _, p := range providers {
		total += p.Timeout()
	}
	return total
}
