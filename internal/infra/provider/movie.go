package provider

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/usecase/fetch"
)

const (
	movieCandidates    = 10
	defaultMovieTitle  = "电影标题"
	defaultMovieYear   = "2024"
	defaultMovieGenre  = "剧情"
	defaultMovieQuote  = "好电影总能治愈生活。"
	defaultDirector    = "导演"
	knownMovieRating   = 8.5
	moviePosterPattern = "https://picsum.photos/seed/movie-%d/300/450.jpg"
)

type sampleMovie struct {
	Title       string          `json:"title"`
	Year        json.RawMessage `json:"year"`
	IMDbID      string          `json:"imdbID"`
	IMDbIDAlt   string          `json:"imdbId"`
	Genres      []string        `json:"genres"`
	Poster      string          `json:"poster"`
	PosterURL   string          `json:"posterURL"`
	Description string          `json:"description"`
}

// ParseSampleMovies returns a parser that picks one of the first ten films.
// Missing fields are filled with display defaults. Films without an IMDb id
// get a random rating between 7.0 and 9.0.
func ParseSampleMovies(p fetch.Picker, now func() time.Time) func(raw []byte) (entity.Movie, bool) {
	if p == nil {
		p = fetch.DefaultPicker
	}
	if now == nil {
		now = time.Now
	}
	return func(raw []byte) (entity.Movie, bool) {
		var list []sampleMovie
		if err := json.Unmarshal(raw, &list); err != nil || len(list) == 0 {
			return entity.Movie{}, false
		}
		n := min(movieCandidates, len(list))
		m := list[p.IntN(n)]

		title := orDefault(m.Title, defaultMovieTitle)
		rating := knownMovieRating
		if m.IMDbID == "" && m.IMDbIDAlt == "" {
			rating = 7 + float64(p.IntN(21))/10
		}
		genre := defaultMovieGenre
		if len(m.Genres) > 0 {
			genre = strings.Join(m.Genres, " / ")
		}
		poster := orDefault(m.Poster, m.PosterURL)
		if !strings.HasPrefix(poster, "http") {
			poster = fmt.Sprintf(moviePosterPattern, now().UnixMilli())
		}
		quote := orDefault(m.Description, defaultMovieQuote)

		return entity.Movie{
			Title:         title,
			OriginalTitle: title,
			Year:          movieYear(m.Year),
			Rating:        rating,
			Genre:         genre,
			Director:      defaultDirector,
			Poster:        poster,
			Quote:         quote,
			FullPlot:      quote,
		}, true
	}
}

// movieYear accepts the year as a number or a string.
func movieYear(raw json.RawMessage) string {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" || s == "0" {
		return defaultMovieYear
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
