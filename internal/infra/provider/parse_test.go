package provider

import (
	"testing"
	"time"

	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/usecase/fetch"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name   string
		parse  func([]byte) (entity.Location, bool)
		raw    string
		want   entity.Location
		wantOK bool
	}{
		{
			name:   "ipapi ok",
			parse:  ParseIPAPI,
			raw:    `{"city":"Shanghai","latitude":31.22,"longitude":121.46}`,
			want:   entity.Location{City: "Shanghai", Lat: 31.22, Lon: 121.46},
			wantOK: true,
		},
		{
			name:   "ipapi missing city",
			parse:  ParseIPAPI,
			raw:    `{"latitude":31.22,"longitude":121.46}`,
			want:   entity.Location{City: "未知", Lat: 31.22, Lon: 121.46},
			wantOK: true,
		},
		{
			name:   "ipapi rate limited",
			parse:  ParseIPAPI,
			raw:    `{"error":true,"reason":"RateLimited"}`,
			wantOK: false,
		},
		{
			name:   "ip-api ok",
			parse:  ParseIPAPICom,
			raw:    `{"status":"success","city":"Hangzhou","lat":30.29,"lon":"120.16"}`,
			want:   entity.Location{City: "Hangzhou", Lat: 30.29, Lon: 120.16},
			wantOK: true,
		},
		{
			name:   "ip-api missing lon",
			parse:  ParseIPAPICom,
			raw:    `{"city":"Hangzhou","lat":30.29}`,
			wantOK: false,
		},
		{
			name:   "not json",
			parse:  ParseIPAPICom,
			raw:    `<html>`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.parse([]byte(tt.raw))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIPScopedURLs(t *testing.T) {
	assert.Equal(t, "https://ipapi.co/json/", ipapiURL("https://ipapi.co/json/", ""))
	assert.Equal(t, "https://ipapi.co/8.8.8.8/json/", ipapiURL("https://ipapi.co/json/", "8.8.8.8"))
	assert.Equal(t, "http://ip-api.com/json/8.8.8.8", ipapiComURL("http://ip-api.com/json/", "8.8.8.8"))
	assert.Equal(t, "http://ip-api.com/json/", ipapiComURL("http://ip-api.com/json/", ""))
}

func TestParseOpenMeteo(t *testing.T) {
	today := time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC) // Monday
	raw := `{
		"current": {"temperature_2m": 12.5, "relative_humidity_2m": 80, "weather_code": 2, "wind_speed_10m": 3.4},
		"daily": {
			"time": ["2024-01-01", "2024-01-02", "2024-01-03"],
			"temperature_2m_max": [14.2, 10.6, 9.5],
			"temperature_2m_min": [5.5, 2.4, -1.6],
			"weather_code": [2, 61, 71]
		}
	}`

	got, ok := ParseOpenMeteo(today)([]byte(raw))
	if !ok {
		t.Fatal("ParseOpenMeteo() rejected a valid payload")
	}

	want := entity.Weather{
		Temp:      13,
		Humidity:  80,
		WindSpeed: 3,
		Condition: "多云",
		Icon:      "fa-cloud-sun",
		Forecast: []entity.Forecast{
			{Date: "今天", Day: "2024-01-01", MaxTemp: 14, MinTemp: 6, Icon: "fa-cloud-sun"},
			{Date: "明天", Day: "2024-01-02", MaxTemp: 11, MinTemp: 2, Icon: "fa-cloud-rain"},
			{Date: "周三", Day: "2024-01-03", MaxTemp: 10, MinTemp: -2, Icon: "fa-snowflake"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseOpenMeteo() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOpenMeteo_LocationTimezone(t *testing.T) {
	// UTCでは1月1日23時、北京(UTC+8)ではすでに1月2日
	now := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	raw := `{
		"utc_offset_seconds": 28800,
		"current": {"temperature_2m": 1, "weather_code": 0},
		"daily": {
			"time": ["2024-01-02", "2024-01-03", "2024-01-04"],
			"temperature_2m_max": [3, 4, 5],
			"temperature_2m_min": [-3, -2, -1],
			"weather_code": [0, 0, 0]
		}
	}`

	got, ok := ParseOpenMeteo(now)([]byte(raw))
	require.True(t, ok)

	assert.Equal(t, 28800, got.UTCOffset)
	labels := make([]string, 0, len(got.Forecast))
	for _, f := range got.Forecast {
		labels = append(labels, f.Date)
	}
	assert.Equal(t, []string{"今天", "明天", "周四"}, labels)
}

func TestParseOpenMeteo_Edges(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	parse := ParseOpenMeteo(today)

	_, ok := parse([]byte(`{"daily":{}}`))
	assert.False(t, ok, "missing current must be rejected")

	w, ok := parse([]byte(`{"current":{"temperature_2m":1,"weather_code":99}}`))
	assert.True(t, ok)
	assert.Empty(t, w.Forecast)
	assert.NotNil(t, w.Forecast)
	assert.Equal(t, "未知", w.Condition)
	assert.Equal(t, "fa-bolt", w.Icon)

	w, ok = parse([]byte(`{"current":{},"daily":{"time":["2024-01-01","2024-01-02"],"temperature_2m_max":[1],"temperature_2m_min":[0],"weather_code":[0]}}`))
	assert.True(t, ok)
	assert.Len(t, w.Forecast, 1, "ragged daily arrays stop at the shortest")
}

func TestOpenMeteoURL(t *testing.T) {
	got := OpenMeteoURL("https://api.open-meteo.com/v1/forecast", 39.9, 116.4)
	assert.Contains(t, got, "latitude=39.9")
	assert.Contains(t, got, "longitude=116.4")
	assert.Contains(t, got, "forecast_days=3")
	assert.Contains(t, got, "timezone=auto")
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3, round(2.5))
	assert.Equal(t, -2, round(-2.5))
	assert.Equal(t, -3, round(-2.6))
	assert.Equal(t, 0, round(0.49))
}

func TestParseSampleMovies(t *testing.T) {
	now := func() time.Time { return time.UnixMilli(42) }
	last := fetch.PickerFunc(func(n int) int { return n - 1 })

	t.Run("full record", func(t *testing.T) {
		raw := `[{"title":"Heat","year":1995,"imdbID":"tt0113277","genres":["Crime","Drama"],"poster":"https://img/heat.jpg","description":"A cop and a thief."}]`
		got, ok := ParseSampleMovies(last, now)([]byte(raw))
		assert.True(t, ok)
		assert.Equal(t, entity.Movie{
			Title:         "Heat",
			OriginalTitle: "Heat",
			Year:          "1995",
			Rating:        8.5,
			Genre:         "Crime / Drama",
			Director:      "导演",
			Poster:        "https://img/heat.jpg",
			Quote:         "A cop and a thief.",
			FullPlot:      "A cop and a thief.",
		}, got)
	})

	t.Run("sparse record gets defaults", func(t *testing.T) {
		got, ok := ParseSampleMovies(last, now)([]byte(`[{"poster":"/relative.jpg"}]`))
		assert.True(t, ok)
		assert.Equal(t, "电影标题", got.Title)
		assert.Equal(t, "2024", got.Year)
		assert.Equal(t, "剧情", got.Genre)
		assert.Equal(t, 9.0, got.Rating)
		assert.Equal(t, "https://picsum.photos/seed/movie-42/300/450.jpg", got.Poster)
		assert.Equal(t, "好电影总能治愈生活。", got.Quote)
	})

	t.Run("picks among first ten", func(t *testing.T) {
		raw := `[`
		for i := 0; i < 15; i++ {
			if i > 0 {
				raw += ","
			}
			raw += `{"title":"m` + string(rune('a'+i)) + `","imdbId":"x"}`
		}
		raw += `]`
		got, ok := ParseSampleMovies(last, now)([]byte(raw))
		assert.True(t, ok)
		assert.Equal(t, "mj", got.Title)
	})

	t.Run("empty list rejected", func(t *testing.T) {
		_, ok := ParseSampleMovies(last, now)([]byte(`[]`))
		assert.False(t, ok)
	})
}

func TestParseHitokoto(t *testing.T) {
	got, ok := ParseHitokoto([]byte(`{"hitokoto":"  人生如逆旅，我亦是行人。 ","from":"临江仙","from_who":"苏轼"}`))
	assert.True(t, ok)
	assert.Equal(t, entity.Proverb{Text: "人生如逆旅，我亦是行人。", Author: "苏轼", Source: "临江仙", Category: "每日分享"}, got)

	got, ok = ParseHitokoto([]byte(`{"hitokoto":"x","from":"y","from_who":null}`))
	assert.True(t, ok)
	assert.Empty(t, got.Author)

	_, ok = ParseHitokoto([]byte(`{"hitokoto":"   "}`))
	assert.False(t, ok)
}

func TestParseVvhan(t *testing.T) {
	raw := `{"success":true,"data":[
		{"title":"a","url":"https://a","hot":"100万"},
		{"title":"b","url":"https://b","hot":2048},
		{"title":"c","url":"https://c"},
		{"title":"d","url":"https://d"},
		{"title":"e","url":"https://e"},
		{"title":"f","url":"https://f"}
	]}`
	got, ok := ParseVvhan([]byte(raw))
	assert.True(t, ok)
	assert.Len(t, got, entity.HotTopicLimit)
	assert.Equal(t, entity.HotTopic{Title: "b", URL: "https://b", Hot: "2048", Index: 2}, got[1])
	assert.Equal(t, "100万", got[0].Hot)

	_, ok = ParseVvhan([]byte(`{"success":false,"data":[{"title":"a"}]}`))
	assert.False(t, ok)
	_, ok = ParseVvhan([]byte(`{"success":true,"data":[]}`))
	assert.False(t, ok)
}

func TestParseBing(t *testing.T) {
	u, ok := ParseBing([]byte(`{"url":"https://www.bing.com/th?id=OHR.x.jpg"}`))
	assert.True(t, ok)
	assert.Equal(t, "https://www.bing.com/th?id=OHR.x.jpg", u)

	_, ok = ParseBing([]byte(`{"url":""}`))
	assert.False(t, ok)
}
