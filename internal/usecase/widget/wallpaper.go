package widget

import (
	"context"
	"fmt"

	"newtab-feed/internal/domain/catalog"
	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/usecase/fetch"
)

// Wallpaper resolves a background image from source. An empty source means
// the default. Unknown sources return entity.ErrUnknownWallpaperSource.
//
// bing is cached for the calendar day. unsplash and picsum build a fresh
// randomised URL on every call.
func (s *Service) Wallpaper(ctx context.Context, source, category string, force bool) (fetch.Result[entity.Wallpaper], error) {
	if source == "" {
		source = catalog.DefaultWallpaperSource
	}

	var policy fetch.Policy[string]
	switch source {
	case catalog.WallpaperBing:
		policy = fetch.Policy[string]{
			Providers: s.sources.BingWallpaper(),
			Fallback:  func(fetch.FallbackInput) string { return catalog.PicsumStaticURL },
			Freshness: s.freshnessFor(fetch.KindWallpaper),
		}
	case catalog.WallpaperUnsplash:
		policy = fetch.Policy[string]{
			Providers: []fetch.Provider[string]{s.localURL(source, func() string {
				return catalog.UnsplashURL(category, s.orch.Clock().Now())
			})},
			Fallback:  func(in fetch.FallbackInput) string { return catalog.PicsumURL(in.Now) },
			Freshness: fetch.Never(),
		}
	case catalog.WallpaperPicsum:
		policy = fetch.Policy[string]{
			Providers: []fetch.Provider[string]{s.localURL(source, func() string {
				return catalog.PicsumURL(s.orch.Clock().Now())
			})},
			Fallback:  func(in fetch.FallbackInput) string { return catalog.PicsumURL(in.Now) },
			Freshness: fetch.Never(),
		}
	default:
		return fetch.Result[entity.Wallpaper]{}, fmt.Errorf("wallpaper %q: %w", source, entity.ErrUnknownWallpaperSource)
	}
	policy.Kind = fetch.KindWallpaper
	policy.Scope = []string{source}

	res := fetch.Resolve(ctx, s.orch, policy, force)
	return fetch.Result[entity.Wallpaper]{
		Value:     entity.Wallpaper{Source: source, URL: res.Value},
		Origin:    res.Origin,
		Provider:  res.Provider,
		FetchedAt: res.FetchedAt,
	}, nil
}

// localURL wraps a URL builder that needs no network call.
func (s *Service) localURL(name string, build func() string) fetch.Provider[string] {
	return fetch.ProviderFunc[string]{
		ProviderName: name,
		Func: func(context.Context) (string, error) {
			return build(), nil
		},
	}
}
