package widget

import (
	"context"
	"time"

	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/usecase/fetch"
)

// PlaceholderWeather is served when the forecast provider is unavailable.
// Its days are calendar days in today's zone.
func PlaceholderWeather(today time.Time) entity.Weather {
	_, offset := today.Zone()
	w := entity.Weather{
		Condition: entity.UnknownCondition,
		Icon:      "fa-cloud",
		Forecast:  make([]entity.Forecast, 0, entity.ForecastDays),
		UTCOffset: offset,
	}
	for i := range entity.ForecastDays {
		day := today.AddDate(0, 0, i)
		w.Forecast = append(w.Forecast, entity.Forecast{
			Date: entity.ForecastLabel(day, today),
			Day:  day.Format(entity.DayLayout),
			Icon: "fa-cloud",
		})
	}
	return w
}

// Weather resolves the forecast for loc. The result carries loc's city and
// day labels relative to the current time, including when served from cache.
func (s *Service) Weather(ctx context.Context, loc entity.Location, force bool) fetch.Result[entity.Weather] {
	today := s.orch.Clock().Now()
	res := fetch.Resolve(ctx, s.orch, fetch.Policy[entity.Weather]{
		Kind:      fetch.KindWeather,
		Scope:     []string{coordinateScope(loc)},
		Providers: s.sources.Weather(loc, today),
		Fallback: func(in fetch.FallbackInput) entity.Weather {
			return PlaceholderWeather(in.Now)
		},
		Freshness: s.freshnessFor(fetch.KindWeather),
	}, force)
	res.Value = res.Value.Relabel(s.orch.Clock().Now())
	res.Value.City = loc.City
	return res
}

// LocalWeather locates clientIP and returns the forecast there. force
// applies to the forecast only; the location uses its cache.
func (s *Service) LocalWeather(ctx context.Context, clientIP string, force bool) (fetch.Result[entity.Weather], entity.Location) {
	loc := s.Location(ctx, clientIP, false).Value
	return s.Weather(ctx, loc, force), loc
}
