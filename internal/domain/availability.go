package domain

import (
	"time"

	"github.com/google/uuid"
)

// Slot is a derived, never persisted, candidate start time on a date.
type Slot struct {
	Date      time.Time
	Time      Clock
	Available bool
}

// DayAvailability is the resolved view of one calendar date. Closed days carry no slots.
type DayAvailability struct {
	Date   time.Time
	Closed bool
	Slots  []Slot
}

// Bookable returns the available start times in order.
func (d DayAvailability) Bookable() []Clock {
	out := make([]Clock, 0, len(d.Slots))
	for _, s := range d.Slots {
		if s.Available {
			out = append(out, s.Time)
		}
	}
	return out
}

func (d DayAvailability) IsBookable(c Clock) bool {
	for _, s := range d.Slots {
		if s.Time == c {
			return s.Available
		}
	}
	return false
}

type ResolveInput struct {
	// Date is a civil date (see CivilDate).
	Date     time.Time
	Location *time.Location

	Windows    []RecurringWindow
	ClosedDays []ClosedDay
	Blocked    []BlockedSlot
	// Appointments may include cancelled rows and other dates; only active ones overlapping
	// a candidate count as conflicts.
	Appointments []Appointment

	// Duration of the booking being placed. Zero means one granularity step.
	Duration time.Duration
	// ExcludeAppointmentID drops one appointment from the conflict set (reschedule).
	ExcludeAppointmentID uuid.UUID
	// NotBefore marks slots starting earlier than it as unavailable. Zero disables the check.
	NotBefore time.Time
}

// ResolveDay computes which grid slots are bookable on one date. It is pure: the result
// depends only on the input and is never memoized.
func ResolveDay(in ResolveInput) DayAvailability {
	date := CivilDate(in.Date)
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	out := DayAvailability{Date: date}

	weekday := int16(date.Weekday())
	for _, c := range in.ClosedDays {
		if c.DayOfWeek == weekday {
			out.Closed = true
			return out
		}
	}

	dayWindows := make([]RecurringWindow, 0, 1)
	for _, w := range in.Windows {
		if w.DayOfWeek == weekday {
			dayWindows = append(dayWindows, w)
		}
	}
	if len(dayWindows) == 0 {
		out.Closed = true
		return out
	}

	blockedHours := make(map[int]struct{}, len(in.Blocked))
	for _, b := range in.Blocked {
		if SameDate(b.Date, date) {
			blockedHours[int(b.Hour)] = struct{}{}
		}
	}

	duration := in.Duration
	if duration <= 0 {
		duration = SlotGranularity * time.Minute
	}

	busy := make([]Appointment, 0, len(in.Appointments))
	for _, a := range in.Appointments {
		if !a.IsActive() {
			continue
		}
		if in.ExcludeAppointmentID != uuid.Nil && a.ID == in.ExcludeAppointmentID {
			continue
		}
		busy = append(busy, a)
	}

	seen := make(map[Clock]struct{})
	for _, t := range GenerateSlotGrid(in.Windows, SlotGranularity) {
		if _, dup := seen[t]; dup || !windowsContain(dayWindows, t) {
			continue
		}
		seen[t] = struct{}{}

		start, exists := t.Resolve(date, loc)
		if !exists {
			continue
		}
		end := start.Add(duration)

		available := true
		if _, blocked := blockedHours[t.Hour()]; blocked {
			available = false
		} else if !in.NotBefore.IsZero() && start.Before(in.NotBefore) {
			available = false
		} else {
			for _, a := range busy {
				if Overlaps(start, end, a.StartTime, a.EndTime) {
					available = false
					break
				}
			}
		}

		out.Slots = append(out.Slots, Slot{Date: date, Time: t, Available: available})
	}

	return out
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2) intersect.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

func windowsContain(windows []RecurringWindow, c Clock) bool {
	for _, w := range windows {
		if w.Contains(c) {
			return true
		}
	}
	return false
}
