package http

import (
	"net/http"
	"strconv"
	"time"

	"newtab-feed/internal/handler/http/pathutil"
	"newtab-feed/internal/handler/http/respond"
	"newtab-feed/internal/handler/http/responsewriter"
	"newtab-feed/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// httpRequestsInFlight tracks the requests currently being served.
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// dataOriginTotal counts widget responses by route and origin
	// (cache, provider, fallback).
	dataOriginTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_data_origin_total",
			Help: "Widget responses by route and data origin",
		},
		[]string{"path", "origin"},
	)
)

// MetricsMiddleware records request count, duration and sizes per normalised
// route, plus the data origin header set by widget handlers.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()
		metrics.ActiveConnections.Inc()
		defer metrics.ActiveConnections.Dec()

		path := pathutil.NormalizePath(r.URL.Path)
		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)

		metrics.RecordHTTPRequest(r.Method, path, strconv.Itoa(rw.StatusCode()),
			time.Since(start), int(r.ContentLength), rw.BytesWritten())
		if origin := rw.Header().Get(respond.HeaderDataOrigin); origin != "" {
			dataOriginTotal.WithLabelValues(path, origin).Inc()
		}
	})
}

// MetricsHandler returns the Prometheus scrape handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
