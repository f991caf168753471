package fetcher

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ClientConfig holds the configuration for outbound widget API requests.
//
// Per-provider timeouts are applied by the caller through the request
// context; Timeout here is only the ceiling for any single request.
type ClientConfig struct {
	// Timeout is the maximum duration for a single HTTP request.
	// Default: 15s
	Timeout time.Duration

	// MaxBodySize is the maximum HTTP response body size in bytes.
	// This is enforced during response reading, not based on Content-Length header.
	// Default: 2097152 (2MB)
	MaxBodySize int64

	// MaxRedirects is the maximum number of HTTP redirects to follow.
	// Default: 5
	MaxRedirects int

	// DenyPrivateIPs blocks URLs (and redirect targets) that resolve to
	// loopback, private or link-local addresses.
	// Default: true
	DenyPrivateIPs bool

	// UserAgent is sent with every request. Some hot-list endpoints reject
	// requests without a browser-like agent.
	UserAgent string

	// HostRate caps outbound requests per second to a single upstream host.
	// Zero disables the cap.
	// Default: 5
	HostRate float64

	// HostBurst is the number of requests a host may receive at once.
	// Default: 10
	HostBurst int
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:        15 * time.Second,
		MaxBodySize:    2 * 1024 * 1024, // 2MB
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		UserAgent:      "Mozilla/5.0 (compatible; NewtabFeed/1.0)",
		HostRate:       5,
		HostBurst:      10,
	}
}

// Validate checks if the configuration values are valid and safe.
//
// Validation rules:
//   - Timeout: > 0
//   - MaxBodySize: 1KB-50MB
//   - MaxRedirects: 0-10
//   - HostRate: >= 0, HostBurst >= 1 when HostRate > 0
func (c *ClientConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	minBodySize := int64(1024)             // 1KB
	maxBodySize := int64(50 * 1024 * 1024) // 50MB
	if c.MaxBodySize < minBodySize || c.MaxBodySize > maxBodySize {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBodySize, maxBodySize, c.MaxBodySize)
	}

	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}

	if c.HostRate < 0 {
		return fmt.Errorf("host rate must not be negative, got %v", c.HostRate)
	}
	if c.HostRate > 0 && c.HostBurst < 1 {
		return fmt.Errorf("host burst must be at least 1, got %d", c.HostBurst)
	}

	return nil
}

// LoadConfigFromEnv loads configuration from environment variables.
// If a variable is not set the default value is used; a malformed value is
// an error.
//
// Environment variables:
//   - FETCH_TIMEOUT: duration string, e.g., "15s" (default: 15s)
//   - FETCH_MAX_BODY_SIZE: integer in bytes (default: 2097152)
//   - FETCH_MAX_REDIRECTS: integer (default: 5)
//   - FETCH_DENY_PRIVATE_IPS: "true" or "false" (default: true)
//   - FETCH_USER_AGENT: string
//   - FETCH_HOST_RATE: requests per second per host, 0 disables (default: 5)
//   - FETCH_HOST_BURST: integer (default: 10)
func LoadConfigFromEnv() (ClientConfig, error) {
	cfg := DefaultConfig()

	if val := os.Getenv("FETCH_TIMEOUT"); val != "" {
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return cfg, fmt.Errorf("invalid FETCH_TIMEOUT: %v (expected format: '10s', '1m')", err)
		}
		cfg.Timeout = parsed
	}

	if val := os.Getenv("FETCH_MAX_BODY_SIZE"); val != "" {
		parsed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid FETCH_MAX_BODY_SIZE: %v", err)
		}
		cfg.MaxBodySize = parsed
	}

	if val := os.Getenv("FETCH_MAX_REDIRECTS"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return cfg, fmt.Errorf("invalid FETCH_MAX_REDIRECTS: %v", err)
		}
		cfg.MaxRedirects = parsed
	}

	if val := os.Getenv("FETCH_DENY_PRIVATE_IPS"); val != "" {
		cfg.DenyPrivateIPs = val == "true"
	}

	if val := os.Getenv("FETCH_USER_AGENT"); val != "" {
		cfg.UserAgent = val
	}

	if val := os.Getenv("FETCH_HOST_RATE"); val != "" {
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid FETCH_HOST_RATE: %v", err)
		}
		cfg.HostRate = parsed
	}

	if val := os.Getenv("FETCH_HOST_BURST"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return cfg, fmt.Errorf("invalid FETCH_HOST_BURST: %v", err)
		}
		cfg.HostBurst = parsed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
