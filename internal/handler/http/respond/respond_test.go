package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newtab-feed/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{"map", http.StatusOK, map[string]string{"message": "success"}, `{"message":"success"}`},
		{"struct", http.StatusOK, entity.Location{City: "北京", Lat: 39.9, Lon: 116.4}, `{"city":"北京","lat":39.9,"lon":116.4}`},
		{"nil", http.StatusNoContent, nil, ""},
		{"error status", http.StatusBadRequest, map[string]string{"error": "bad request"}, `{"error":"bad request"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()

	// チャネルは JSON にできない
	JSON(w, http.StatusOK, make(chan int))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProvenance(t *testing.T) {
	w := httptest.NewRecorder()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("CST", 8*3600))

	Provenance(w, "cache", "open-meteo", at)

	assert.Equal(t, "cache", w.Header().Get(HeaderDataOrigin))
	assert.Equal(t, "open-meteo", w.Header().Get(HeaderDataProvider))
	assert.Equal(t, "2024-01-01T19:04:05Z", w.Header().Get(HeaderDataFetchedAt))
}

func TestProvenance_OmitsEmpty(t *testing.T) {
	w := httptest.NewRecorder()

	Provenance(w, "fallback", "", time.Time{})

	assert.Equal(t, "fallback", w.Header().Get(HeaderDataOrigin))
	assert.Empty(t, w.Header().Get(HeaderDataProvider))
	assert.Empty(t, w.Header().Get(HeaderDataFetchedAt))
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		err     error
		wantMsg string
	}{
		{
			name:    "validation error passes through",
			code:    http.StatusBadRequest,
			err:     entity.ValidateCoordinates(91, 0),
			wantMsg: "validation error on field 'lat': must be between -90 and 90, got 91",
		},
		{
			name:    "wrapped unknown wallpaper source",
			code:    http.StatusBadRequest,
			err:     fmt.Errorf("wallpaper %q: %w", "flickr", entity.ErrUnknownWallpaperSource),
			wantMsg: `wallpaper "flickr": unknown wallpaper source`,
		},
		{
			name:    "internal detail hidden",
			code:    http.StatusBadGateway,
			err:     errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			wantMsg: "internal server error",
		},
		{
			name:    "5xx always hidden",
			code:    http.StatusInternalServerError,
			err:     errors.New("invalid memory address"),
			wantMsg: "internal server error",
		},
		{
			name:    "unrecognised 4xx hidden",
			code:    http.StatusBadRequest,
			err:     errors.New("pq: relation does not exist"),
			wantMsg: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			SafeError(w, tt.code, tt.err)

			assert.Equal(t, tt.code, w.Code)
			var body map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestSafeError_Nil(t *testing.T) {
	w := httptest.NewRecorder()
	SafeError(w, http.StatusBadRequest, nil)

	assert.Zero(t, w.Body.Len())
}

func TestSafeError_AppError(t *testing.T) {
	w := httptest.NewRecorder()
	err := fmt.Errorf("handler: %w",
		NewAppError(http.StatusServiceUnavailable, "try again later", errors.New("postgres://u:p@h/db down")))

	SafeError(w, http.StatusInternalServerError, err)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"try again later"}`, w.Body.String())
}

func TestAppError(t *testing.T) {
	cause := errors.New("cause")

	assert.Equal(t, "cause", NewAppError(400, "msg", cause).Error())
	assert.Equal(t, "msg", NewAppError(400, "msg", nil).Error())
	assert.ErrorIs(t, NewAppError(400, "msg", cause), cause)
}
