package entity

import "time"

// ForecastDays is the number of daily entries returned with a Weather.
const ForecastDays = 3

// Weather is the current conditions plus a short daily forecast.
type Weather struct {
	City      string     `json:"city,omitempty"`
	Temp      int        `json:"temp"`
	Humidity  int        `json:"humidity"`
	WindSpeed int        `json:"wind_speed"`
	Condition string     `json:"condition"`
	Icon      string     `json:"icon"`
	Forecast  []Forecast `json:"forecast"`

	// UTCOffset is the forecast location's offset from UTC in seconds.
	// Forecast days are calendar days in that offset.
	UTCOffset int `json:"utc_offset_seconds"`
}

// Forecast is a single day of the weather forecast.
type Forecast struct {
	// Date is the display label (今天, 明天, 周X).
	Date    string `json:"date"`
	Day     string `json:"day,omitempty"` // YYYY-MM-DD
	MaxTemp int    `json:"max_temp"`
	MinTemp int    `json:"min_temp"`
	Icon    string `json:"icon"`
}

// DayLayout is the layout of Forecast.Day.
const DayLayout = "2006-01-02"

// Relabel returns a copy of w whose forecast labels are relative to now as
// seen at the forecast location. Entries without a Day keep their label.
func (w Weather) Relabel(now time.Time) Weather {
	zone := time.FixedZone("", w.UTCOffset)
	today := now.In(zone)
	forecast := make([]Forecast, len(w.Forecast))
	for i, f := range w.Forecast {
		if day, err := time.ParseInLocation(DayLayout, f.Day, zone); err == nil {
			f.Date = ForecastLabel(day, today)
		}
		forecast[i] = f
	}
	w.Forecast = forecast
	return w
}

// weatherConditions maps WMO weather codes to display labels.
var weatherConditions = map[int]string{
	0:  "晴",
	1:  "晴",
	2:  "多云",
	3:  "阴",
	45: "雾",
	51: "小雨",
	61: "雨",
	71: "雪",
	80: "阵雨",
	95: "雷暴",
}

// UnknownCondition is the label used for codes without a mapping.
const UnknownCondition = "未知"

// WeatherCondition returns the display label for a WMO weather code.
func WeatherCondition(code int) string {
	if label, ok := weatherConditions[code]; ok {
		return label
	}
	return UnknownCondition
}

// WeatherIcon returns the Font Awesome icon identifier for a WMO weather code.
func WeatherIcon(code int) string {
	switch {
	case code <= 1:
		return "fa-sun"
	case code == 2:
		return "fa-cloud-sun"
	case code == 3:
		return "fa-cloud"
	case code >= 45 && code <= 48:
		return "fa-smog"
	case code >= 51 && code <= 67:
		return "fa-cloud-rain"
	case code >= 71 && code <= 77:
		return "fa-snowflake"
	case code >= 80 && code <= 82:
		return "fa-cloud-showers-heavy"
	case code >= 95:
		return "fa-bolt"
	default:
		return "fa-cloud"
	}
}

var weekdayLabels = [...]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// ForecastLabel returns 今天 / 明天 / 周X for day relative to today.
// Both dates are compared as calendar days; the time of day is ignored.
func ForecastLabel(day, today time.Time) string {
	dy, dm, dd := day.Date()
	ty, tm, td := today.Date()
	if dy == ty && dm == tm && dd == td {
		return "今天"
	}
	tomorrow := time.Date(ty, tm, td+1, 0, 0, 0, 0, today.Location())
	if dy == tomorrow.Year() && dm == tomorrow.Month() && dd == tomorrow.Day() {
		return "明天"
	}
	return weekdayLabels[day.Weekday()]
}
