package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// breakerSource reports per-host circuit breaker states.
type breakerSource interface {
	BreakerStates() map[string]string
}

// UpstreamHealthResponse lists the breaker state of every upstream host the
// worker has contacted.
type UpstreamHealthResponse struct {
	Healthy   bool             `json:"healthy"`
	Upstreams []UpstreamStatus `json:"upstreams"`
}

// UpstreamStatus is one host's breaker state.
type UpstreamStatus struct {
	Host  string `json:"host"`
	State string `json:"state"`
}

// startMetricsServer serves /metrics and /health/upstreams on port until
// ctx is cancelled.
func startMetricsServer(ctx context.Context, logger *slog.Logger, port int, breakers breakerSource) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /health/upstreams", upstreamHealthHandler(breakers))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("metrics server starting", slog.Int("port", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", slog.Any("error", err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", slog.Any("error", err))
			return
		}
		logger.Info("metrics server stopped")
	}()

	return server
}

// upstreamHealthHandler answers 200 while no breaker is open and 503
// otherwise. An open breaker only means a provider is being skipped; the
// worker keeps warming from the remaining providers and fallbacks.
func upstreamHealthHandler(breakers breakerSource) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		states := breakers.BreakerStates()
		hosts := make([]string, 0, len(states))
		for host := range states {
			hosts = append(hosts, host)
		}
		sort.Strings(hosts)

		resp := UpstreamHealthResponse{Healthy: true, Upstreams: make([]UpstreamStatus, 0, len(hosts))}
		for _, host := range hosts {
			resp.Upstreams = append(resp.Upstreams, UpstreamStatus{Host: host, State: states[host]})
			if states[host] == "open" {
				resp.Healthy = false
			}
		}

		code := http.StatusOK
		if !resp.Healthy {
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
