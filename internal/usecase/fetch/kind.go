package fetch

import (
	"fmt"
	"strings"
	"time"
)

// Kind enumerates the cacheable data kinds. Each kind owns one cache
// key namespace and a default freshness policy.
type Kind string

const (
	KindLocation  Kind = "location"
	KindWeather   Kind = "weather"
	KindMovie     Kind = "movie"
	KindProverb   Kind = "proverb"
	KindHotTopics Kind = "hot_topics"
	KindWallpaper Kind = "wallpaper"
)

// Kinds lists every known kind in a stable order.
var Kinds = []Kind{KindLocation, KindWeather, KindMovie, KindProverb, KindHotTopics, KindWallpaper}

// Default freshness windows.
const (
	MovieWindow     = 3 * time.Hour
	WeatherWindow   = 30 * time.Minute
	LocationWindow  = 6 * time.Hour
	HotTopicsWindow = 15 * time.Minute
)

// Valid reports whether k is one of the enumerated kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// CacheKey returns the storage key for k, optionally narrowed by scope
// parts (e.g. a location or wallpaper source). Empty parts are skipped.
func (k Kind) CacheKey(scope ...string) string {
	var b strings.Builder
	b.WriteString("newtab:")
	b.WriteString(string(k))
	for _, s := range scope {
		if s == "" {
			continue
		}
		b.WriteByte(':')
		b.WriteString(s)
	}
	return b.String()
}

// DefaultFreshness returns the built-in freshness policy for k.
func DefaultFreshness(k Kind) Freshness {
	switch k {
	case KindMovie:
		return Rolling(MovieWindow)
	case KindProverb:
		return CalendarDay()
	case KindWeather:
		return Rolling(WeatherWindow)
	case KindLocation:
		return Rolling(LocationWindow)
	case KindHotTopics:
		return Rolling(HotTopicsWindow)
	case KindWallpaper:
		return CalendarDay()
	default:
		return Never()
	}
}

// ParseKind converts s to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown kind %q", s)
	}
	return k, nil
}
