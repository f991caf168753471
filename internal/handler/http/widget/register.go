// Package widget serves the new-tab data kinds over HTTP. Every data
// endpoint answers 200 with a usable value even when all upstreams are
// down; X-Data-Origin tells the client whether it came from cache, a live
// provider or fallback data.
package widget

import (
	"log/slog"
	"net/http"

	widgetUC "newtab-feed/internal/usecase/widget"
)

// Register mounts the widget endpoints on mux.
func Register(mux *http.ServeMux, svc *widgetUC.Service, logger *slog.Logger) {
	mux.Handle("GET /api/location", LocationHandler{Svc: svc})
	mux.Handle("GET /api/weather", WeatherHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /api/movie", MovieHandler{Svc: svc})
	mux.Handle("GET /api/proverb", ProverbHandler{Svc: svc})
	mux.Handle("GET /api/hot-topics", HotTopicsHandler{Svc: svc})
	mux.Handle("GET /api/wallpaper", WallpaperHandler{Svc: svc})
	mux.Handle("GET /api/games", GamesHandler{Svc: svc})
	mux.Handle("GET /api/gradients", GradientsHandler{Svc: svc})
}
