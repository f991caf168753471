// Package config provides fail-open environment loaders. A value that is
// missing yields the default; a value that is present but malformed or
// rejected by its validator also yields the default, together with a
// warning so the caller can log it and count the fallback.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Result is the outcome of loading one environment variable.
type Result[T any] struct {
	Key             string
	Value           T
	Warning         string
	FallbackApplied bool
}

// Load reads key, converts it with parse and checks it with validate
// (which may be nil). It never fails.
func Load[T any](key string, def T, parse func(string) (T, error), validate func(T) error) Result[T] {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return Result[T]{Key: key, Value: def}
	}
	v, err := parse(raw)
	if err == nil && validate != nil {
		err = validate(v)
	}
	if err != nil {
		return Result[T]{
			Key:             key,
			Value:           def,
			Warning:         fmt.Sprintf("invalid %s=%q: %v, falling back to default %v", key, raw, err, def),
			FallbackApplied: true,
		}
	}
	return Result[T]{Key: key, Value: v}
}

// LoadEnvString returns the value of key, or def when unset. No validation.
func LoadEnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// LoadEnvWithFallback loads a string checked by validate.
func LoadEnvWithFallback(key, def string, validate func(string) error) Result[string] {
	return Load(key, def, func(s string) (string, error) { return s, nil }, validate)
}

// LoadEnvDuration loads a time.ParseDuration value.
func LoadEnvDuration(key string, def time.Duration, validate func(time.Duration) error) Result[time.Duration] {
	return Load(key, def, time.ParseDuration, validate)
}

// LoadEnvInt loads a base-10 integer.
func LoadEnvInt(key string, def int, validate func(int) error) Result[int] {
	return Load(key, def, func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid integer format")
		}
		return n, nil
	}, validate)
}

// LoadEnvFloat loads a float64.
func LoadEnvFloat(key string, def float64, validate func(float64) error) Result[float64] {
	return Load(key, def, func(s string) (float64, error) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number format")
		}
		return f, nil
	}, validate)
}

// LoadEnvBool loads a strconv.ParseBool value.
func LoadEnvBool(key string, def bool) Result[bool] {
	return Load(key, def, func(s string) (bool, error) {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false, fmt.Errorf("expected true or false")
		}
		return b, nil
	}, nil)
}
