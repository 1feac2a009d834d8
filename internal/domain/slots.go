package domain

const (
	// SlotGranularity is the spacing of candidate start times, in minutes.
	SlotGranularity = 30

	DefaultOpening Clock = 8 * 60
	DefaultClosing Clock = 23 * 60
)

// GenerateSlotGrid returns the provider-wide candidate start times, from the earliest
// window opening to the latest window closing across all weekdays. The grid is aligned to
// whole hours: within the opening hour, offsets before the opening minute are skipped, and
// emission stops at the first offset in the closing hour that is >= the closing minute.
// With no windows it spans DefaultOpening..DefaultClosing (last slot 22:30).
//
// The grid is not day specific; per-weekday filtering happens in ResolveDay.
func GenerateSlotGrid(windows []RecurringWindow, granularity int) []Clock {
	if granularity <= 0 || 60%granularity != 0 {
		granularity = SlotGranularity
	}

	opening, closing := DefaultOpening, DefaultClosing
	if len(windows) > 0 {
		opening, closing = windows[0].StartMinute, windows[0].EndMinute
		for _, w := range windows[1:] {
			if w.StartMinute < opening {
				opening = w.StartMinute
			}
			if w.EndMinute > closing {
				closing = w.EndMinute
			}
		}
	}

	out := make([]Clock, 0, (int(closing-opening)/granularity)+1)
	for h := opening.Hour(); h <= closing.Hour(); h++ {
		for m := 0; m < 60; m += granularity {
			if h == opening.Hour() && m < opening.Minute() {
				continue
			}
			if h == closing.Hour() && m >= closing.Minute() {
				return out
			}
			out = append(out, NewClock(h, m))
		}
	}
	return out
}
