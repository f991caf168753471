package widget

import (
	"context"

	"newtab-feed/internal/domain/catalog"
	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/usecase/fetch"
)

const hotTopicsProvider = "hot-topics-aggregate"

// hotTopicSources attaches the curated backups and the per-source limit.
func (s *Service) hotTopicSources() []fetch.Source[entity.HotTopic] {
	sources := s.sources.HotTopics()
	for i := range sources {
		name := sources[i].Name
		sources[i].Backup = func() []entity.HotTopic { return catalog.BackupHotTopics(name) }
		sources[i].Limit = entity.HotTopicLimit
	}
	return sources
}

// HotTopics resolves every hot-topic source in parallel and caches the
// combined map as one entry. A failing source is filled from its backup
// list without affecting the others.
func (s *Service) HotTopics(ctx context.Context, force bool) fetch.Result[entity.HotTopics] {
	sources := s.hotTopicSources()
	res := fetch.Resolve(ctx, s.orch, fetch.Policy[map[string][]entity.HotTopic]{
		Kind:      fetch.KindHotTopics,
		Providers: []fetch.Provider[map[string][]entity.HotTopic]{fetch.AggregateProvider(s.orch, fetch.KindHotTopics, hotTopicsProvider, sources)},
		Fallback: func(fetch.FallbackInput) map[string][]entity.HotTopic {
			return fetch.Backups(sources)
		},
		Freshness: s.freshnessFor(fetch.KindHotTopics),
	}, force)

	topics := make(entity.HotTopics, len(res.Value))
	for name, items := range res.Value {
		topics[name] = entity.Rank(items, entity.HotTopicLimit)
	}
	return fetch.Result[entity.HotTopics]{
		Value:     topics,
		Origin:    res.Origin,
		Provider:  res.Provider,
		FetchedAt: res.FetchedAt,
	}
}
