// Package notifier posts cache-warming health changes to chat webhooks.
// Slack and Discord incoming webhooks are supported; several targets can be
// combined with Multi.
package notifier

import (
	"context"
	"errors"
	"time"
)

// Levels of an Alert.
const (
	LevelDegraded  = "degraded"
	LevelRecovered = "recovered"
)

// Alert describes one change in warm health.
type Alert struct {
	Level string
	// Status is the warm run status: success, partial or failure.
	Status string
	// Degraded lists the kinds that failed or were served from fallback
	// data, sorted.
	Degraded []string
	Kinds    int
	Duration time.Duration
	At       time.Time
}

// Notifier delivers alerts.
type Notifier interface {
	Notify(ctx context.Context, alert Alert) error
}

// NoOp discards every alert.
type NoOp struct{}

func (NoOp) Notify(context.Context, Alert) error { return nil }

// Multi sends each alert to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, alert Alert) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
