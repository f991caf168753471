package provider

import (
	"context"
	"time"

	"newtab-feed/internal/domain/catalog"
	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/infra/scraper"
	"newtab-feed/internal/usecase/fetch"
)

// Set builds provider chains from a Registry. Chains are ordered by
// preference; the orchestrator stops at the first success.
type Set struct {
	client   fetch.Getter
	registry Registry
	picker   fetch.Picker
	now      func() time.Time
}

// Option configures a Set.
type Option func(*Set)

// WithPicker sets the random source used by parsers that pick an item.
func WithPicker(p fetch.Picker) Option {
	return func(s *Set) { s.picker = p }
}

// WithNow sets the time source used for generated URLs.
func WithNow(now func() time.Time) Option {
	return func(s *Set) { s.now = now }
}

// NewSet creates a Set. A nil registry means Defaults().
func NewSet(client fetch.Getter, registry Registry, opts ...Option) *Set {
	if registry == nil {
		registry = Defaults()
	}
	s := &Set{client: client, registry: registry, picker: fetch.DefaultPicker, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns ipapi.co then ip-api.com. A non-empty clientIP looks up
// that address instead of the caller's.
func (s *Set) Location(clientIP string) []fetch.Provider[entity.Location] {
	a := s.registry.Get(NameIPAPI)
	b := s.registry.Get(NameIPAPICom)
	return []fetch.Provider[entity.Location]{
		fetch.NewHTTPProvider(s.client, fetch.Descriptor[entity.Location]{
			Name: a.Name, Endpoint: ipapiURL(a.URL, clientIP), Timeout: a.Timeout, Parse: ParseIPAPI,
		}),
		fetch.NewHTTPProvider(s.client, fetch.Descriptor[entity.Location]{
			Name: b.Name, Endpoint: ipapiComURL(b.URL, clientIP), Timeout: b.Timeout, Parse: ParseIPAPICom,
		}),
	}
}

// Weather returns the open-meteo forecast for loc with day labels relative to today.
func (s *Set) Weather(loc entity.Location, today time.Time) []fetch.Provider[entity.Weather] {
	ep := s.registry.Get(NameOpenMeteo)
	return []fetch.Provider[entity.Weather]{
		fetch.NewHTTPProvider(s.client, fetch.Descriptor[entity.Weather]{
			Name:     ep.Name,
			Endpoint: OpenMeteoURL(ep.URL, loc.Lat, loc.Lon),
			Timeout:  ep.Timeout,
			Parse:    ParseOpenMeteo(today),
		}),
	}
}

// Movie returns the sampleapis movie list.
func (s *Set) Movie() []fetch.Provider[entity.Movie] {
	ep := s.registry.Get(NameSampleMovies)
	return []fetch.Provider[entity.Movie]{
		fetch.NewHTTPProvider(s.client, fetch.Descriptor[entity.Movie]{
			Name: ep.Name, Endpoint: ep.URL, Timeout: ep.Timeout, Parse: ParseSampleMovies(s.picker, s.now),
		}),
	}
}

// Proverb returns hitokoto.
func (s *Set) Proverb() []fetch.Provider[entity.Proverb] {
	ep := s.registry.Get(NameHitokoto)
	return []fetch.Provider[entity.Proverb]{
		fetch.NewHTTPProvider(s.client, fetch.Descriptor[entity.Proverb]{
			Name: ep.Name, Endpoint: ep.URL, Timeout: ep.Timeout, Parse: ParseHitokoto,
		}),
	}
}

// HotTopics returns one provider chain per hot-topic source. Backups and
// limits are left to the caller.
func (s *Set) HotTopics() []fetch.Source[entity.HotTopic] {
	weibo := s.registry.Get(NameWeiboHTML)
	hn := s.registry.Get(NameHackerNews)
	weiboScraper := scraper.NewHotListScraper(s.client, scraper.WeiboHotList, entity.HotTopicLimit)
	feed := scraper.NewFeedReader(s.client, entity.HotTopicLimit)

	return []fetch.Source[entity.HotTopic]{
		{Name: catalog.SourceZhihu, Providers: []fetch.Provider[[]entity.HotTopic]{s.vvhan(NameVvhanZhihu)}},
		{Name: catalog.SourceWeibo, Providers: []fetch.Provider[[]entity.HotTopic]{
			s.vvhan(NameVvhanWeibo),
			fetch.ProviderFunc[[]entity.HotTopic]{
				ProviderName:    weibo.Name,
				ProviderTimeout: weibo.Timeout,
				Func: func(ctx context.Context) ([]entity.HotTopic, error) {
					return weiboScraper.Fetch(ctx, weibo.URL)
				},
			},
		}},
		{Name: catalog.SourceToutiao, Providers: []fetch.Provider[[]entity.HotTopic]{s.vvhan(NameVvhanToutiao)}},
		{Name: catalog.SourceHackerNews, Providers: []fetch.Provider[[]entity.HotTopic]{
			fetch.ProviderFunc[[]entity.HotTopic]{
				ProviderName:    hn.Name,
				ProviderTimeout: hn.Timeout,
				Func: func(ctx context.Context) ([]entity.HotTopic, error) {
					return feed.Fetch(ctx, hn.URL)
				},
			},
		}},
	}
}

func (s *Set) vvhan(name string) fetch.Provider[[]entity.HotTopic] {
	ep := s.registry.Get(name)
	return fetch.NewHTTPProvider(s.client, fetch.Descriptor[[]entity.HotTopic]{
		Name: ep.Name, Endpoint: ep.URL, Timeout: ep.Timeout, Parse: ParseVvhan,
	})
}

// BingWallpaper returns the Bing daily image mirror.
func (s *Set) BingWallpaper() []fetch.Provider[string] {
	ep := s.registry.Get(NameBing)
	return []fetch.Provider[string]{
		fetch.NewHTTPProvider(s.client, fetch.Descriptor[string]{
			Name: ep.Name, Endpoint: ep.URL, Timeout: ep.Timeout, Parse: ParseBing,
		}),
	}
}
