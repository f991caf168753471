// Package middleware holds request-scoped HTTP middleware that needs its own
// configuration: cross-origin access for the new-tab page and client IP
// resolution behind proxies.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// OriginValidator decides whether a cross-origin caller may read responses.
type OriginValidator interface {
	IsAllowed(origin string) bool
}

// AllowAll accepts every origin. The API serves public data only.
type AllowAll struct{}

func (AllowAll) IsAllowed(origin string) bool { return origin != "" }

// WhitelistValidator accepts exact origins, case-insensitively.
type WhitelistValidator struct {
	allowed map[string]struct{}
}

// NewWhitelistValidator normalises origins (lowercase, no trailing slash).
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	v := &WhitelistValidator{allowed: make(map[string]struct{}, len(origins))}
	for _, o := range origins {
		if o = normalizeOrigin(o); o != "" {
			v.allowed[o] = struct{}{}
		}
	}
	return v
}

func (v *WhitelistValidator) IsAllowed(origin string) bool {
	_, ok := v.allowed[normalizeOrigin(origin)]
	return ok
}

func normalizeOrigin(o string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(o)), "/")
}

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	Validator      OriginValidator
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int
	Logger *slog.Logger
}

// extensionSchemes are the origins browser new-tab extensions run under.
var extensionSchemes = map[string]bool{
	"http":                 true,
	"https":                true,
	"chrome-extension":     true,
	"moz-extension":        true,
	"safari-web-extension": true,
}

// LoadCORSConfig reads CORS settings from the environment.
//
// Environment variables:
//   - CORS_ALLOWED_ORIGINS: comma-separated origins, or "*" (default "*")
//   - CORS_MAX_AGE: preflight cache seconds (default 86400)
//
// Origins must be bare scheme://host[:port] values; http(s) and browser
// extension schemes are accepted.
func LoadCORSConfig() (CORSConfig, error) {
	cfg := CORSConfig{
		Validator:      AllowAll{},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Data-Origin", "X-Data-Fetched-At"},
		MaxAge:         86400,
	}

	if v := strings.TrimSpace(os.Getenv("CORS_MAX_AGE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return CORSConfig{}, fmt.Errorf("CORS_MAX_AGE must be a non-negative integer: %q", v)
		}
		cfg.MaxAge = n
	}

	raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if raw == "" || raw == "*" {
		return cfg, nil
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		u, err := url.Parse(o)
		if err != nil {
			return CORSConfig{}, fmt.Errorf("invalid origin %q: %w", o, err)
		}
		if !extensionSchemes[u.Scheme] || u.Host == "" {
			return CORSConfig{}, fmt.Errorf("origin must be scheme://host: %q", o)
		}
		if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" {
			return CORSConfig{}, fmt.Errorf("origin must not include path, query or fragment: %q", o)
		}
		origins = append(origins, o)
	}
	if len(origins) == 0 {
		return CORSConfig{}, fmt.Errorf("CORS_ALLOWED_ORIGINS has no valid origin")
	}
	cfg.Validator = NewWhitelistValidator(origins)
	return cfg, nil
}

// CORS answers preflight requests and tags allowed cross-origin responses.
// Requests without an Origin header pass through untouched. Disallowed
// origins are served without CORS headers, so the browser blocks them.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	if config.Validator == nil {
		config.Validator = AllowAll{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.Validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path))
				}
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			if len(config.ExposedHeaders) > 0 {
				h.Set("Access-Control-Expose-Headers", strings.Join(config.ExposedHeaders, ", "))
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				h.Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
