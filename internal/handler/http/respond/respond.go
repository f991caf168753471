// Package respond writes JSON responses and keeps internal error detail out
// of them.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"newtab-feed/internal/domain/entity"
)

// Provenance headers attached to every widget response.
const (
	HeaderDataOrigin    = "X-Data-Origin"
	HeaderDataProvider  = "X-Data-Provider"
	HeaderDataFetchedAt = "X-Data-Fetched-At"
)

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// ヘッダー送信済みのためログのみ
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Provenance sets the data origin headers. An empty provider or a zero
// fetchedAt leaves the matching header unset.
func Provenance(w http.ResponseWriter, origin, provider string, fetchedAt time.Time) {
	h := w.Header()
	h.Set(HeaderDataOrigin, origin)
	if provider != "" {
		h.Set(HeaderDataProvider, provider)
	}
	if !fetchedAt.IsZero() {
		h.Set(HeaderDataFetchedAt, fetchedAt.UTC().Format(time.RFC3339))
	}
}

// safePhrases mark messages that describe the caller's own input.
var safePhrases = []string{
	"required",
	"invalid",
	"unknown",
	"must be",
	"too long",
}

// SafeError writes err as a JSON error body. Validation errors and messages
// about the caller's input pass through; anything else, and every 5xx, is
// logged with secrets masked and replaced by a generic message. An *AppError
// always answers with its own code and user message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			slog.Default().Error("application error",
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.String("error", SanitizeError(appErr.Err)))
		}
		JSON(w, appErr.Code, map[string]string{"error": appErr.UserMsg})
		return
	}

	if code < 500 && isSafe(err) {
		JSON(w, code, map[string]string{"error": err.Error()})
		return
	}

	slog.Default().Error("internal server error",
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}

func isSafe(err error) bool {
	if errors.Is(err, entity.ErrValidationFailed) || errors.Is(err, entity.ErrInvalidInput) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, p := range safePhrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// AppError carries a user-facing message alongside the internal cause.
type AppError struct {
	UserMsg string
	Err     error
	Code    int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates an AppError.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}
