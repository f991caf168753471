package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newtab-feed/internal/infra/adapter/persistence/memory"
	"newtab-feed/internal/infra/adapter/persistence/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ───── モック実装 ───── */

type stubStore struct{ err error }

func (s stubStore) Ping(context.Context) error { return s.err }

type stubBreakers map[string]string

func (s stubBreakers) BreakerStates() map[string]string { return s }

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

/* ───── HealthHandler ───── */

func TestHealthHandler_Postgres(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(sqlmock.Sqlmock)
		expectedStatus int
		expectHealthy  bool
	}{
		{
			name:           "healthy database",
			setupMock:      func(mock sqlmock.Sqlmock) { mock.ExpectPing() },
			expectedStatus: http.StatusOK,
			expectHealthy:  true,
		},
		{
			name: "database connection error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing().WillReturnError(sql.ErrConnDone)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			db.SetMaxOpenConns(10)
			tt.setupMock(mock)

			handler := &HealthHandler{Store: postgres.NewCacheRepo(db), DB: db, Version: "test-version"}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			resp := decodeHealth(t, rec)
			if tt.expectHealthy {
				assert.Equal(t, "healthy", resp.Status)
				assert.Contains(t, resp.Checks["cache_store"].Details, "utilization_percent")
			} else {
				assert.Equal(t, "unhealthy", resp.Status)
			}
			assert.Equal(t, "test-version", resp.Version)
			assert.NotEmpty(t, resp.Timestamp)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHealthHandler_MemoryStore(t *testing.T) {
	handler := &HealthHandler{Store: memory.NewCacheRepo(), Version: "v1"}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "healthy", resp.Checks["cache_store"].Status)
	assert.Nil(t, resp.Checks["cache_store"].Details)
	assert.NotContains(t, resp.Checks, "upstreams")
}

func TestHealthHandler_NoStoreConfigured(t *testing.T) {
	handler := &HealthHandler{Version: "test-version"}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "not configured", resp.Checks["cache_store"].Message)
}

func TestHealthHandler_MaxOpenConnectionsZero(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(0)
	mock.ExpectPing()

	handler := &HealthHandler{Store: stubStore{}, DB: db}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	// degraded は稼働中とみなす
	assert.Equal(t, http.StatusOK, rec.Code)
	check := decodeHealth(t, rec).Checks["cache_store"]
	assert.Equal(t, "degraded", check.Status)
	assert.Equal(t, float64(0), check.Details["max_open_connections"])
	assert.NotContains(t, check.Details, "utilization_percent")
}

func TestHealthHandler_OpenBreakersDegrade(t *testing.T) {
	handler := &HealthHandler{
		Store:   stubStore{},
		Breaker: stubBreakers{"api.vvhan.com": "open", "api.open-meteo.com": "closed"},
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "healthy", resp.Status)
	upstreams := resp.Checks["upstreams"]
	assert.Equal(t, "degraded", upstreams.Status)
	assert.Equal(t, "open", upstreams.Details["api.vvhan.com"])
}

func TestHealthHandler_ClosedBreakers(t *testing.T) {
	handler := &HealthHandler{Store: stubStore{}, Breaker: stubBreakers{"bing.com": "closed"}}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, "healthy", decodeHealth(t, rec).Checks["upstreams"].Status)
}

func TestHealthHandler_CacheControl(t *testing.T) {
	handler := &HealthHandler{Store: stubStore{}}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

/* ───── ReadyHandler / LiveHandler ───── */

func TestReadyHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		store          *ReadyHandler
		expectedStatus int
		expectedBody   string
	}{
		{"ready", &ReadyHandler{Store: stubStore{}}, http.StatusOK, "ready"},
		{"store error", &ReadyHandler{Store: stubStore{err: errors.New("conn refused")}}, http.StatusServiceUnavailable, "cache store not ready: conn refused\n"},
		{"not configured", &ReadyHandler{}, http.StatusServiceUnavailable, "cache store not configured\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.store.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestReadyHandler_Timeout(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	// 2秒のタイムアウトより遅い ping
	mock.ExpectPing().WillDelayFor(3 * time.Second)

	handler := &ReadyHandler{Store: postgres.NewCacheRepo(db)}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLiveHandler_ServeHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	(&LiveHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}
