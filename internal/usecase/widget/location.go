package widget

import (
	"context"
	"fmt"

	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/usecase/fetch"
)

// DefaultLocation is served when no geolocation provider answers.
var DefaultLocation = entity.Location{City: "北京", Lat: 39.9, Lon: 116.4}

// Location resolves the position of clientIP, or of the server's own
// address when clientIP is empty.
func (s *Service) Location(ctx context.Context, clientIP string, force bool) fetch.Result[entity.Location] {
	return fetch.Resolve(ctx, s.orch, fetch.Policy[entity.Location]{
		Kind:      fetch.KindLocation,
		Scope:     []string{clientIP},
		Providers: s.sources.Location(clientIP),
		Fallback:  func(fetch.FallbackInput) entity.Location { return DefaultLocation },
		Freshness: s.freshnessFor(fetch.KindLocation),
	}, force)
}

// coordinateScope rounds to two decimals (about 1 km) so nearby callers
// share one cache entry.
func coordinateScope(loc entity.Location) string {
	return fmt.Sprintf("%.2f,%.2f", loc.Lat, loc.Lon)
}
