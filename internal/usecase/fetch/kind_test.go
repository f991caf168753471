package fetch_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	fetchUC "newtab-feed/internal/usecase/fetch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_CacheKey(t *testing.T) {
	assert.Equal(t, "newtab:movie", fetchUC.KindMovie.CacheKey())
	assert.Equal(t, "newtab:weather:39.90,116.40", fetchUC.KindWeather.CacheKey("39.90,116.40"))
	assert.Equal(t, "newtab:wallpaper:bing", fetchUC.KindWallpaper.CacheKey("", "bing"))
}

func TestParseKind(t *testing.T) {
	for _, k := range fetchUC.Kinds {
		got, err := fetchUC.ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := fetchUC.ParseKind("games")
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: fetchUC.ClassSuccess},
		{name: "timeout", err: fmt.Errorf("x: %w", fetchUC.ErrTimeout), want: fetchUC.ClassTimeout},
		{name: "deadline", err: context.DeadlineExceeded, want: fetchUC.ClassTimeout},
		{name: "canceled", err: context.Canceled, want: fetchUC.ClassCanceled},
		{name: "circuit", err: fetchUC.ErrCircuitOpen, want: fetchUC.ClassCircuitOpen},
		{name: "status", err: fmt.Errorf("status 500: %w", fetchUC.ErrInvalidResponse), want: fetchUC.ClassInvalidResponse},
		{name: "too large", err: fetchUC.ErrBodyTooLarge, want: fetchUC.ClassInvalidResponse},
		{name: "unknown", err: errors.New("connection reset"), want: fetchUC.ClassTransport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fetchUC.Classify(tt.err))
		})
	}
}
