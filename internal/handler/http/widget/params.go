package widget

import (
	"net/http"
	"strconv"
	"time"

	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/handler/http/middleware"
	"newtab-feed/internal/handler/http/respond"
	"newtab-feed/internal/usecase/fetch"
)

// boolParam reads an optional boolean query parameter. Absent means false.
func boolParam(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &entity.ValidationError{Field: name, Message: "must be a boolean"}
	}
	return v, nil
}

// clientIP is the caller's public address, or "" for local and private
// callers so that providers geolocate the server instead.
func clientIP(r *http.Request) string {
	return middleware.PublicIP(middleware.ClientIPFromContext(r.Context()))
}

// writeResult sends body with the provenance of a resolved value.
func writeResult(w http.ResponseWriter, origin fetch.Origin, provider string, fetchedAt time.Time, body any) {
	w.Header().Set("Cache-Control", "no-cache")
	respond.Provenance(w, string(origin), provider, fetchedAt)
	respond.JSON(w, http.StatusOK, body)
}
