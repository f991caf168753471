// Package widget binds every new-tab data kind to the fetch orchestrator:
// which providers to try, what to serve when they all fail and how long a
// cached value stays fresh.
package widget

import (
	"time"

	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/usecase/fetch"
)

// Sources supplies the ordered provider chains for each kind.
type Sources interface {
	Location(clientIP string) []fetch.Provider[entity.Location]
	Weather(loc entity.Location, today time.Time) []fetch.Provider[entity.Weather]
	Movie() []fetch.Provider[entity.Movie]
	Proverb() []fetch.Provider[entity.Proverb]
	HotTopics() []fetch.Source[entity.HotTopic]
	BingWallpaper() []fetch.Provider[string]
}

// Service resolves widget data through a shared orchestrator.
type Service struct {
	orch      *fetch.Orchestrator
	sources   Sources
	picker    fetch.Picker
	freshness map[fetch.Kind]fetch.Freshness
}

// Option configures a Service.
type Option func(*Service)

// WithPicker sets the random source for fallback picks.
func WithPicker(p fetch.Picker) Option {
	return func(s *Service) { s.picker = p }
}

// WithFreshness overrides the default freshness policy of kind.
func WithFreshness(kind fetch.Kind, f fetch.Freshness) Option {
	return func(s *Service) { s.freshness[kind] = f }
}

// NewService creates a Service.
func NewService(orch *fetch.Orchestrator, sources Sources, opts ...Option) *Service {
	s := &Service{
		orch:      orch,
		sources:   sources,
		picker:    fetch.DefaultPicker,
		freshness: map[fetch.Kind]fetch.Freshness{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// freshnessFor returns the override for kind, or nil to use the default.
func (s *Service) freshnessFor(kind fetch.Kind) fetch.Freshness {
	return s.freshness[kind]
}
