package widget_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"newtab-feed/internal/domain/catalog"
	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/infra/adapter/persistence/memory"
	"newtab-feed/internal/usecase/fetch"
	"newtab-feed/internal/usecase/widget"
)

/* ───────── モック実装 ───────── */

var errUpstream = errors.New("upstream down")

// fakeSources は固定値または失敗を返すSources実装
type fakeSources struct {
	fail bool
	// failSources lists hot-topic sources whose chain fails.
	failSources map[string]bool
	// forecast replaces the weather provider's empty forecast.
	forecast []entity.Forecast

	calls      atomic.Int32
	locationIP atomic.Value
	weatherLoc atomic.Value
}

func result[T any](s *fakeSources, name string, v T) []fetch.Provider[T] {
	return []fetch.Provider[T]{fetch.ProviderFunc[T]{
		ProviderName:    name,
		ProviderTimeout: time.Second,
		Func: func(context.Context) (T, error) {
			s.calls.Add(1)
			if s.fail {
				var zero T
				return zero, errUpstream
			}
			return v, nil
		},
	}}
}

func (s *fakeSources) Location(ip string) []fetch.Provider[entity.Location] {
	s.locationIP.Store(ip)
	return result(s, "geo", entity.Location{City: "Shanghai", Lat: 31.2304, Lon: 121.4737})
}

func (s *fakeSources) Weather(loc entity.Location, _ time.Time) []fetch.Provider[entity.Weather] {
	s.weatherLoc.Store(loc)
	forecast := s.forecast
	if forecast == nil {
		forecast = []entity.Forecast{}
	}
	return result(s, "meteo", entity.Weather{Temp: 21, Condition: "晴", Icon: "fa-sun", Forecast: forecast})
}

func (s *fakeSources) Movie() []fetch.Provider[entity.Movie] {
	return result(s, "movies", entity.Movie{Title: "Remote Film", Year: "2001"})
}

func (s *fakeSources) Proverb() []fetch.Provider[entity.Proverb] {
	return result(s, "proverbs", entity.Proverb{Text: "remote line", Category: "每日分享"})
}

func (s *fakeSources) HotTopics() []fetch.Source[entity.HotTopic] {
	names := []string{catalog.SourceZhihu, catalog.SourceWeibo, catalog.SourceToutiao, catalog.SourceHackerNews}
	out := make([]fetch.Source[entity.HotTopic], 0, len(names))
	for _, name := range names {
		items := make([]entity.HotTopic, 7)
		for i := range items {
			items[i] = entity.HotTopic{Title: name + " live", URL: "https://example.com/" + name}
		}
		failing := s.fail || s.failSources[name]
		out = append(out, fetch.Source[entity.HotTopic]{
			Name: name,
			Providers: []fetch.Provider[[]entity.HotTopic]{fetch.ProviderFunc[[]entity.HotTopic]{
				ProviderName:    name + "-api",
				ProviderTimeout: time.Second,
				Func: func(context.Context) ([]entity.HotTopic, error) {
					s.calls.Add(1)
					if failing {
						return nil, errUpstream
					}
					return items, nil
				},
			}},
		})
	}
	return out
}

func (s *fakeSources) BingWallpaper() []fetch.Provider[string] {
	return result(s, "bing", "https://www.bing.com/daily.jpg")
}

// fakeClock は手動で進められる時計
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	svc     *widget.Service
	sources *fakeSources
	repo    *memory.CacheRepo
	clock   *fakeClock
}

func newFixture(sources *fakeSources, opts ...widget.Option) *fixture {
	fc := &fakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	repo := memory.NewCacheRepo()
	orch := fetch.NewOrchestrator(repo, fetch.NewClock(time.UTC, fc.Now), nil)
	opts = append([]widget.Option{widget.WithPicker(fetch.PickerFunc(func(int) int { return 0 }))}, opts...)
	return &fixture{
		svc:     widget.NewService(orch, sources, opts...),
		sources: sources,
		repo:    repo,
		clock:   fc,
	}
}
