package earnings

import "time"

// window is an inclusive [start, end] reporting period.
type window struct {
	start time.Time
	end   time.Time
}

func (w window) contains(t time.Time) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

// matches applies the period rule to a classified live-task outcome. The
// qualifying event counts when in-window; a late-completion penalty also
// counts when its resolved deadline is in-window, so a late task surfaces
// both in the period it was due and the period it was finished. Outcomes of
// None, or with no usable timestamp, are dropped silently.
func (w window) matches(o outcome) bool {
	if o.Kind == outcomeNone || o.EventAt.IsZero() {
		return false
	}
	if w.contains(o.EventAt) {
		return true
	}
	return o.DeadlineAt != nil && w.contains(*o.DeadlineAt)
}
