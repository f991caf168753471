package provider

import (
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"time"

	"newtab-feed/internal/domain/entity"
)

type openMeteoResponse struct {
	UTCOffset int `json:"utc_offset_seconds"`
	Current   *struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Daily *struct {
		Time        []string  `json:"time"`
		MaxTemp     []float64 `json:"temperature_2m_max"`
		MinTemp     []float64 `json:"temperature_2m_min"`
		WeatherCode []int     `json:"weather_code"`
	} `json:"daily"`
}

// OpenMeteoURL builds the forecast query for a coordinate.
func OpenMeteoURL(base string, lat, lon float64) string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m")
	q.Set("daily", "temperature_2m_max,temperature_2m_min,weather_code")
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(entity.ForecastDays))
	return base + "?" + q.Encode()
}

// ParseOpenMeteo returns a parser that labels forecast days relative to now
// in the location's own offset (the query asks for timezone=auto, so daily
// dates are local to the coordinate). A response without current
// conditions is rejected; a missing daily block yields an empty forecast.
func ParseOpenMeteo(now time.Time) func(raw []byte) (entity.Weather, bool) {
	return func(raw []byte) (entity.Weather, bool) {
		var d openMeteoResponse
		if err := json.Unmarshal(raw, &d); err != nil || d.Current == nil {
			return entity.Weather{}, false
		}

		w := entity.Weather{
			Temp:      round(d.Current.Temperature),
			Humidity:  round(d.Current.Humidity),
			WindSpeed: round(d.Current.WindSpeed),
			Condition: entity.WeatherCondition(d.Current.WeatherCode),
			Icon:      entity.WeatherIcon(d.Current.WeatherCode),
			Forecast:  []entity.Forecast{},
			UTCOffset: d.UTCOffset,
		}
		if d.Daily == nil {
			return w, true
		}

		for i, day := range d.Daily.Time {
			if i >= entity.ForecastDays {
				break
			}
			if i >= len(d.Daily.MaxTemp) || i >= len(d.Daily.MinTemp) || i >= len(d.Daily.WeatherCode) {
				break
			}
			w.Forecast = append(w.Forecast, entity.Forecast{
				Date:    day,
				Day:     day,
				MaxTemp: round(d.Daily.MaxTemp[i]),
				MinTemp: round(d.Daily.MinTemp[i]),
				Icon:    entity.WeatherIcon(d.Daily.WeatherCode[i]),
			})
		}
		return w.Relabel(now), true
	}
}

// round matches JavaScript Math.round (half rounds toward +Inf).
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
