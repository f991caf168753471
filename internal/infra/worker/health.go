package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const healthShutdownTimeout = 5 * time.Second

// HealthServer serves the worker probes.
//
//	GET /health        200 while the process is up
//	GET /health/ready  200 once scheduling started, 503 otherwise; the body
//	                   describes the last warm run
type HealthServer struct {
	addr   string
	logger *slog.Logger

	mu      sync.RWMutex
	ready   bool
	lastRun *runReport
}

type runReport struct {
	Status   string   `json:"status"`
	At       string   `json:"at"`
	Duration string   `json:"duration"`
	Degraded []string `json:"degraded,omitempty"`
}

type probeResponse struct {
	Status  string     `json:"status"`
	LastRun *runReport `json:"last_run,omitempty"`
}

// NewHealthServer creates a server that starts out not ready.
func NewHealthServer(addr string, logger *slog.Logger) *HealthServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthServer{addr: addr, logger: logger}
}

// Handler returns the probe routes.
func (h *HealthServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		h.write(w, http.StatusOK, probeResponse{Status: "ok"})
	})
	mux.HandleFunc("GET /health/ready", h.readiness)
	return mux
}

// Start serves until ctx is cancelled and then returns http.ErrServerClosed
// after draining. A listen failure is returned as is.
func (h *HealthServer) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         h.addr,
		Handler:      h.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  time.Minute,
	}

	served := make(chan error, 1)
	go func() {
		h.logger.Info("health server listening", slog.String("addr", h.addr))
		served <- srv.ListenAndServe()
	}()

	select {
	case err := <-served:
		if !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error("health server failed", slog.Any("error", err))
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), healthShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		h.logger.Error("health server shutdown failed", slog.Any("error", err))
		return err
	}
	return http.ErrServerClosed
}

// SetReady flips the readiness probe.
func (h *HealthServer) SetReady(ready bool) {
	h.mu.Lock()
	h.ready = ready
	h.mu.Unlock()
	h.logger.Info("worker readiness changed", slog.Bool("ready", ready))
}

// RecordRun stores the outcome of a warm run for the readiness body.
func (h *HealthServer) RecordRun(stats Stats, at time.Time) {
	report := &runReport{
		Status:   stats.Status(),
		At:       at.UTC().Format(time.RFC3339),
		Duration: stats.Duration.Round(time.Millisecond).String(),
		Degraded: stats.Degraded,
	}
	h.mu.Lock()
	h.lastRun = report
	h.mu.Unlock()
}

func (h *HealthServer) readiness(w http.ResponseWriter, _ *http.Request) {
	h.mu.RLock()
	ready, last := h.ready, h.lastRun
	h.mu.RUnlock()

	if !ready {
		h.write(w, http.StatusServiceUnavailable, probeResponse{Status: "not ready", LastRun: last})
		return
	}
	h.write(w, http.StatusOK, probeResponse{Status: "ok", LastRun: last})
}

func (h *HealthServer) write(w http.ResponseWriter, code int, body probeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode probe response", slog.Any("error", err))
	}
}
