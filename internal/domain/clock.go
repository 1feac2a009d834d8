package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// Clock is a wall-clock time of day with minute precision, stored as minutes since midnight.
// 24:00 (1440) is valid only as the end of a window.
type Clock int16

const MinutesPerDay Clock = 24 * 60

var errInvalidClock = errors.New("invalid clock time")

func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock parses "HH:MM" in 24h notation. "24:00" is accepted as end of day.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, errInvalidClock
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, errInvalidClock
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, errInvalidClock
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, errInvalidClock
	}
	return NewClock(h, m), nil
}

// ClockOf returns the time of day of t in t's own location.
func ClockOf(t time.Time) Clock {
	return NewClock(t.Hour(), t.Minute())
}

func (c Clock) Hour() int {
	return int(c) / 60
}

func (c Clock) Minute() int {
	return int(c) % 60
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On returns the instant at which this clock time occurs on the civil date in loc.
// A wall time skipped by a DST shift comes back normalized the way time.Date does it.
func (c Clock) On(date time.Time, loc *time.Location) time.Time {
	t, _ := c.Resolve(date, loc)
	return t
}

// Resolve is On that also reports whether the wall time exists on that date in loc.
// A wall time repeated when clocks fall back resolves to its first occurrence.
func (c Clock) Resolve(date time.Time, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.Date()
	t := firstOccurrence(time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, loc))
	ty, tm, td := t.Date()
	return t, ty == y && tm == m && td == d && ClockOf(t) == c
}

// firstOccurrence moves t back to the earlier instant with the same wall time, if a
// backward offset change just before t produced one.
func firstOccurrence(t time.Time) time.Time {
	_, off := t.Zone()
	_, before := t.Add(-3 * time.Hour).Zone()
	if before <= off {
		return t
	}
	earlier := t.Add(-time.Duration(before-off) * time.Second)
	if SameDate(earlier, t) && ClockOf(earlier) == ClockOf(t) {
		return earlier
	}
	return t
}

// CivilDate strips t to the calendar date it falls on in its own location,
// expressed as midnight UTC.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
