package widget

import (
	"context"
	"fmt"

	"newtab-feed/internal/domain/catalog"
	"newtab-feed/internal/usecase/fetch"
)

// WarmKinds are the kinds a background refresh can populate without a caller.
var WarmKinds = []fetch.Kind{
	fetch.KindMovie,
	fetch.KindProverb,
	fetch.KindHotTopics,
	fetch.KindWallpaper,
	fetch.KindLocation,
	fetch.KindWeather,
}

// Refresh resolves kind without caller scope and reports where the value came
// from. Without force, a fresh cache entry is left untouched. Wallpaper
// refreshes the bing entry, the only cached wallpaper source. Weather uses
// the server's own location.
func (s *Service) Refresh(ctx context.Context, kind fetch.Kind, force bool) (fetch.Origin, error) {
	switch kind {
	case fetch.KindMovie:
		return s.Movie(ctx, force).Origin, nil
	case fetch.KindProverb:
		return s.Proverb(ctx, force).Origin, nil
	case fetch.KindHotTopics:
		return s.HotTopics(ctx, force).Origin, nil
	case fetch.KindWallpaper:
		res, err := s.Wallpaper(ctx, catalog.WallpaperBing, "", force)
		return res.Origin, err
	case fetch.KindLocation:
		return s.Location(ctx, "", force).Origin, nil
	case fetch.KindWeather:
		res, _ := s.LocalWeather(ctx, "", force)
		return res.Origin, nil
	default:
		return "", fmt.Errorf("refresh %q: unsupported kind", kind)
	}
}
