package fetch

import "time"

// DateKeyLayout is the calendar date key format (YYYY-MM-DD).
const DateKeyLayout = "2006-01-02"

// Clock supplies the current time and calendar date keys.
// Date keys are computed in a single fixed location so that every process
// agrees on what "today" is regardless of the host's local zone.
type Clock interface {
	Now() time.Time
	DateKey(t time.Time) string
	Location() *time.Location
}

// ZoneClock is a Clock pinned to a fixed *time.Location.
type ZoneClock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock returns a clock computing date keys in loc.
// A nil loc means UTC. A nil now means time.Now.
func NewClock(loc *time.Location, now func() time.Time) *ZoneClock {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &ZoneClock{loc: loc, now: now}
}

// Now returns the current time in the clock's location.
func (c *ZoneClock) Now() time.Time {
	return c.now().In(c.loc)
}

// DateKey returns t's calendar date in the clock's location.
func (c *ZoneClock) DateKey(t time.Time) string {
	return t.In(c.loc).Format(DateKeyLayout)
}

// Location returns the fixed location.
func (c *ZoneClock) Location() *time.Location {
	return c.loc
}
