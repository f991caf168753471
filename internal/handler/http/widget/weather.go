package widget

import (
	"log/slog"
	"net/http"
	"strconv"

	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/handler/http/respond"
	"newtab-feed/internal/observability/logging"
	widgetUC "newtab-feed/internal/usecase/widget"
)

type WeatherHandler struct {
	Svc    *widgetUC.Service
	Logger *slog.Logger
}

// ServeHTTP 天気予報取得
// @Summary      天気予報取得
// @Description  lat/lon を指定した地点、または未指定ならクライアントの現在地の天気と3日間の予報を返します。
// @Tags         widgets
// @Produce      json
// @Param        lat    query  number  false  "緯度 (-90〜90)。lon と同時に指定"
// @Param        lon    query  number  false  "経度 (-180〜180)。lat と同時に指定"
// @Param        city   query  string  false  "表示用の都市名"
// @Param        force  query  bool    false  "キャッシュを無視して再取得"
// @Success      200 {object} entity.Weather "天気" headers(X-Data-Origin=string,X-Data-Fetched-At=string)
// @Failure      400 {string} string "Invalid query parameters"
// @Router       /api/weather [get]
func (h WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	force, err := boolParam(r, "force")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	loc, explicit, err := coordinates(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if explicit {
		res := h.Svc.Weather(ctx, loc, force)
		writeResult(w, res.Origin, res.Provider, res.FetchedAt, res.Value)
		return
	}

	res, located := h.Svc.LocalWeather(ctx, clientIP(r), force)
	if h.Logger != nil {
		logging.WithRequest(ctx, h.Logger).Debug("weather for located client",
			slog.String("city", located.City),
			slog.String("origin", string(res.Origin)))
	}
	writeResult(w, res.Origin, res.Provider, res.FetchedAt, res.Value)
}

// coordinates parses lat/lon/city. Both coordinates absent means the caller
// wants its own location; exactly one present is an error.
func coordinates(r *http.Request) (entity.Location, bool, error) {
	q := r.URL.Query()
	rawLat, rawLon := q.Get("lat"), q.Get("lon")
	if rawLat == "" && rawLon == "" {
		return entity.Location{}, false, nil
	}
	if rawLat == "" || rawLon == "" {
		return entity.Location{}, false, &entity.ValidationError{Field: "lat/lon", Message: "must be given together"}
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return entity.Location{}, false, &entity.ValidationError{Field: "lat", Message: "must be a number"}
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return entity.Location{}, false, &entity.ValidationError{Field: "lon", Message: "must be a number"}
	}
	if err := entity.ValidateCoordinates(lat, lon); err != nil {
		return entity.Location{}, false, err
	}
	return entity.Location{City: q.Get("city"), Lat: lat, Lon: lon}, true, nil
}
