// Package circuitbreaker stops calls to upstream hosts and the cache database
// while they are failing, using github.com/sony/gobreaker.
package circuitbreaker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// ErrOpenState is returned by Execute while the circuit is open.
var ErrOpenState = gobreaker.ErrOpenState

// ErrTooManyRequests is returned while half-open once MaxRequests probes are in flight.
var ErrTooManyRequests = gobreaker.ErrTooManyRequests

// Config describes one breaker. The circuit trips once at least MinRequests
// calls were seen in the current Interval and the failing share reaches
// FailureThreshold.
type Config struct {
	Name string

	// MaxRequests is how many probes pass while half-open.
	MaxRequests uint32

	// Interval clears the closed-state counts.
	Interval time.Duration

	// Timeout is the open period before probing.
	Timeout time.Duration

	FailureThreshold float64
	MinRequests      uint32

	// IsSuccessful decides which errors count as failures. Nil counts every
	// non-nil error.
	IsSuccessful func(err error) bool
}

// UpstreamConfig returns configuration for a public widget API host.
// Widget providers are cheap to skip because the orchestrator always has a
// next provider or a fallback, so the circuit opens early and probes again
// after half a minute. Requests the caller cancelled say nothing about the
// host and are not counted as failures.
func UpstreamConfig(host string) Config {
	return Config{
		Name:             "upstream:" + host,
		MaxRequests:      2,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      4,
		IsSuccessful:     succeededOrCanceled,
	}
}

func succeededOrCanceled(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

// CircuitBreaker is a named gobreaker breaker that logs state changes.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New builds a breaker from cfg.
func New(cfg Config) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:         cfg.Name,
		MaxRequests:  cfg.MaxRequests,
		Interval:     cfg.Interval,
		Timeout:      cfg.Timeout,
		IsSuccessful: cfg.IsSuccessful,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	return &CircuitBreaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
		name:    cfg.Name,
	}
}

// Execute calls fn unless the circuit is open, in which case it returns
// ErrOpenState without calling it.
func (cb *CircuitBreaker) Execute(fn func() (interface{}, error)) (interface{}, error) {
	return cb.breaker.Execute(fn)
}

func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}

func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// IsOpen reports whether calls are currently rejected.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.breaker.State() == gobreaker.StateOpen
}

// Registry hands out one breaker per key (typically an upstream host),
// creating it on first use.
type Registry struct {
	mu       sync.Mutex
	breakers map[string]*CircuitBreaker
	config   func(key string) Config
}

// NewRegistry creates a registry. A nil config function means UpstreamConfig.
func NewRegistry(config func(key string) Config) *Registry {
	if config == nil {
		config = UpstreamConfig
	}
	return &Registry{
		breakers: make(map[string]*CircuitBreaker),
		config:   config,
	}
}

// Get returns the breaker for key.
func (r *Registry) Get(key string) *CircuitBreaker {
	r.mu.Lock()
	defer r.mu.Unlock()
	cb, ok := r.breakers[key]
	if !ok {
		cb = New(r.config(key))
		r.breakers[key] = cb
	}
	return cb
}

// States reports the state of every breaker created so far.
func (r *Registry) States() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.breakers))
	for key, cb := range r.breakers {
		out[key] = cb.State().String()
	}
	return out
}
