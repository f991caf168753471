package entity

import (
	"errors"
	"fmt"
)

// Errors the HTTP layer maps to 400.
var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrValidationFailed       = errors.New("validation failed")
	ErrUnknownWallpaperSource = errors.New("unknown wallpaper source")
)

// ValidationError names the request field that was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
