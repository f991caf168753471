// Package config loads the optional sources file that overrides provider
// endpoints and per-kind freshness policies.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"newtab-feed/internal/infra/provider"
	"newtab-feed/internal/usecase/fetch"
	"newtab-feed/internal/usecase/widget"
)

// Freshness keywords accepted besides plain durations.
const (
	FreshnessCalendarDay = "calendar_day"
	FreshnessNever       = "never"
)

// ProviderOverride replaces the endpoint and/or timeout of one provider.
type ProviderOverride struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// SourcesConfig mirrors config/sources.yaml.
type SourcesConfig struct {
	Providers map[string]ProviderOverride `yaml:"providers"`
	Freshness map[string]string           `yaml:"freshness"`
}

// LoadSources reads and validates a sources file. Unknown keys are rejected
// so a typo does not silently keep the default.
func LoadSources(path string) (*SourcesConfig, error) {
	// #nosec G304 -- path comes from SOURCES_FILE set by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}
	return ParseSources(data)
}

// ParseSources decodes and validates sources YAML.
func ParseSources(data []byte) (*SourcesConfig, error) {
	var cfg SourcesConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sources validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks timeouts and freshness values without touching a registry.
func (c *SourcesConfig) Validate() error {
	var errs []error
	for _, name := range sortedKeys(c.Providers) {
		ov := c.Providers[name]
		if ov.URL == "" && ov.Timeout == "" {
			errs = append(errs, fmt.Errorf("provider %q: url or timeout is required", name))
			continue
		}
		if _, err := ov.timeout(); err != nil {
			errs = append(errs, fmt.Errorf("provider %q: %w", name, err))
		}
	}
	for _, kind := range sortedKeys(c.Freshness) {
		if _, err := fetch.ParseKind(kind); err != nil {
			errs = append(errs, fmt.Errorf("freshness: %w", err))
			continue
		}
		if _, err := ParseFreshness(c.Freshness[kind]); err != nil {
			errs = append(errs, fmt.Errorf("freshness %q: %w", kind, err))
		}
	}
	return errors.Join(errs...)
}

// Apply writes the provider overrides into reg. A name the registry does not
// know is an error.
func (c *SourcesConfig) Apply(reg provider.Registry) error {
	for _, name := range sortedKeys(c.Providers) {
		ov := c.Providers[name]
		timeout, err := ov.timeout()
		if err != nil {
			return fmt.Errorf("provider %q: %w", name, err)
		}
		if !reg.Override(name, ov.URL, timeout) {
			return fmt.Errorf("unknown provider %q", name)
		}
	}
	return nil
}

// Options converts the freshness table into widget service options.
func (c *SourcesConfig) Options() ([]widget.Option, error) {
	opts := make([]widget.Option, 0, len(c.Freshness))
	for _, name := range sortedKeys(c.Freshness) {
		kind, err := fetch.ParseKind(name)
		if err != nil {
			return nil, err
		}
		f, err := ParseFreshness(c.Freshness[name])
		if err != nil {
			return nil, fmt.Errorf("freshness %q: %w", name, err)
		}
		opts = append(opts, widget.WithFreshness(kind, f))
	}
	return opts, nil
}

// ParseFreshness accepts "calendar_day", "never" or a positive duration such
// as "30m" (a rolling window).
func ParseFreshness(s string) (fetch.Freshness, error) {
	switch s {
	case FreshnessCalendarDay:
		return fetch.CalendarDay(), nil
	case FreshnessNever:
		return fetch.Never(), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return nil, fmt.Errorf("invalid freshness %q: want a duration, %s or %s", s, FreshnessCalendarDay, FreshnessNever)
	}
	if d <= 0 {
		return nil, fmt.Errorf("invalid freshness %q: window must be positive", s)
	}
	return fetch.Rolling(d), nil
}

func (o ProviderOverride) timeout() (time.Duration, error) {
	if o.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(o.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q", o.Timeout)
	}
	if d <= 0 || d > time.Minute {
		return 0, fmt.Errorf("timeout %s must be within (0, 1m]", d)
	}
	return d, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
