package fetch

import (
	"fmt"
	"time"
)

// Freshness decides whether a cached entry can be served without a refetch.
type Freshness interface {
	Fresh(e Entry, now time.Time, clock Clock) bool
	String() string
}

type rolling struct{ window time.Duration }

// Rolling treats an entry as fresh while now - fetchedAt < window.
func Rolling(window time.Duration) Freshness {
	return rolling{window: window}
}

func (r rolling) Fresh(e Entry, now time.Time, _ Clock) bool {
	return now.Sub(e.FetchedTime()) < r.window
}

func (r rolling) String() string {
	return fmt.Sprintf("rolling(%s)", r.window)
}

type calendarDay struct{}

// CalendarDay treats an entry as fresh only while its stored date key equals
// today's date key. Elapsed time is irrelevant: an entry written at 23:59 is
// stale at 00:00.
func CalendarDay() Freshness {
	return calendarDay{}
}

func (calendarDay) Fresh(e Entry, now time.Time, clock Clock) bool {
	return e.DateKey != "" && e.DateKey == clock.DateKey(now)
}

func (calendarDay) String() string {
	return "calendar_day"
}

type never struct{}

// Never disables cache hits; every invocation refetches.
func Never() Freshness {
	return never{}
}

func (never) Fresh(Entry, time.Time, Clock) bool { return false }

func (never) String() string { return "never" }
