package widget

import (
	"context"

	"newtab-feed/internal/domain/catalog"
	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/usecase/fetch"
)

// Movie resolves the movie recommendation. The fallback is a random pick
// from the curated list.
func (s *Service) Movie(ctx context.Context, force bool) fetch.Result[entity.Movie] {
	return fetch.Resolve(ctx, s.orch, fetch.Policy[entity.Movie]{
		Kind:      fetch.KindMovie,
		Providers: s.sources.Movie(),
		Fallback: func(fetch.FallbackInput) entity.Movie {
			m, _ := fetch.PickRandom(catalog.Movies(), s.picker)
			return m
		},
		Freshness: s.freshnessFor(fetch.KindMovie),
	}, force)
}

// Proverb resolves the proverb of the day. The fallback follows the date
// key so every caller sees the same line, unless the caller forced a
// refresh, in which case a random line is picked.
func (s *Service) Proverb(ctx context.Context, force bool) fetch.Result[entity.Proverb] {
	return fetch.Resolve(ctx, s.orch, fetch.Policy[entity.Proverb]{
		Kind:      fetch.KindProverb,
		Providers: s.sources.Proverb(),
		Fallback: func(in fetch.FallbackInput) entity.Proverb {
			if in.Force {
				p, _ := fetch.PickRandom(catalog.Proverbs(), s.picker)
				return p
			}
			p, _ := fetch.PickByDate(catalog.Proverbs(), in.DateKey)
			return p
		},
		Freshness: s.freshnessFor(fetch.KindProverb),
	}, force)
}
