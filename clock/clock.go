// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package clock

import (
	"sync"
	"time"
)

// Date layouts used everywhere a calendar date crosses a boundary.
const (
	ISODate     = "2006-01-02"
	DisplayDate = "Monday, January 02, 2006"
)

// Clock supplies "now". Handlers take it as a dependency so tests can pin time.
type Clock interface {
	Now() time.Time
}

type zoneClock struct {
	loc *time.Location
}

func (c *zoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

var (
	easternOnce sync.Once
	eastern     *zoneClock
)

// Eastern returns the app-wide clock pinned to US Eastern time. Every call
// site that needs "today" goes through the same zone so date boundaries never
// disagree across the app.
func Eastern() Clock {
	easternOnce.Do(func() {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			// No tz database on the host; EST without DST beats a server-local zone
			loc = time.FixedZone("EST", -5*60*60)
		}
		eastern = &zoneClock{loc: loc}
	})
	return eastern
}

// Today returns the current civil date for the clock, truncated to midnight
// in the clock's zone.
func Today(c Clock) time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
