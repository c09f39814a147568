package availability

import (
	"time"

	"github.com/agendaly/booking-backend/internal/pkg/interval"
)

// SlotParams are the inputs of one slot computation. Everything is passed by
// value: the generator is a pure function and its output is recomputed on
// every request, never cached, because blackouts and bookings change between
// calls.
type SlotParams struct {
	Windows  []interval.Interval
	Duration time.Duration
	Step     time.Duration // zero means Duration (back-to-back slots)
	TimeOff  []interval.Interval
	Busy     []interval.Interval
}

// ComputeSlots walks each window from its start in Step increments and emits
// every cursor whose candidate interval [cursor, cursor+Duration) fits inside
// the window and overlaps no time-off and no busy interval.
//
// All intervals are half-open: a candidate may end exactly where a busy or
// time-off interval starts (and vice versa), so back-to-back bookings are
// possible. A candidate may also end exactly at the window end.
//
// Windows are processed independently and in the given order; a slot near the
// end of one window never spills into the next even if they are adjacent.
func ComputeSlots(p SlotParams) []time.Time {
	if p.Duration <= 0 {
		return nil
	}
	step := p.Step
	if step <= 0 {
		step = p.Duration
	}

	var slots []time.Time
	for _, w := range p.Windows {
		for cursor := w.Start; !cursor.Add(p.Duration).After(w.End); cursor = cursor.Add(step) {
			candidate := interval.New(cursor, cursor.Add(p.Duration))
			if interval.OverlapsAny(candidate, p.TimeOff, false) {
				continue
			}
			if interval.OverlapsAny(candidate, p.Busy, false) {
				continue
			}
			slots = append(slots, cursor)
		}
	}
	return slots
}
