package http

import (
	"net/http"

	"newtab-feed/internal/handler/http/respond"
)

const (
	maxPathLength  = 2048
	maxQueryLength = 2048
)

// InputValidation rejects oversized URIs and caps request bodies. The API
// only serves GET requests, so any body is limited to 1KB.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > maxPathLength || len(r.URL.RawQuery) > maxQueryLength {
				respond.JSON(w, http.StatusRequestURITooLong, map[string]string{"error": "URI too long"})
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, 1<<10)
			next.ServeHTTP(w, r)
		})
	}
}
