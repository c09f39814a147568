package interval

import "time"

// Interval is a pair of instants interpreted as [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// New returns the interval [start, end).
func New(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Duration returns End - Start. It is negative for inverted intervals.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// IsEmpty reports whether the interval contains no instant.
func (i Interval) IsEmpty() bool {
	return !i.End.After(i.Start)
}

// Contains reports whether t lies within [Start, End).
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Clamp clips the interval to bounds. If the two do not intersect the result
// is an empty interval anchored at the nearest bound.
func (i Interval) Clamp(bounds Interval) Interval {
	out := i
	if out.Start.Before(bounds.Start) {
		out.Start = bounds.Start
	}
	if out.End.After(bounds.End) {
		out.End = bounds.End
	}
	if out.End.Before(out.Start) {
		out.End = out.Start
	}
	return out
}

// Overlaps reports whether a and b share any instant. With inclusive set,
// touching endpoints (a.End == b.Start) count as overlapping; otherwise both
// intervals are treated as half-open and back-to-back intervals are disjoint.
func Overlaps(a, b Interval, inclusive bool) bool {
	if inclusive {
		return !a.Start.After(b.End) && !b.Start.After(a.End)
	}
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// OverlapsAny reports whether i overlaps any interval in set.
func OverlapsAny(i Interval, set []Interval, inclusive bool) bool {
	for _, other := range set {
		if Overlaps(i, other, inclusive) {
			return true
		}
	}
	return false
}
