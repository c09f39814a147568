package availability

import (
	"testing"
	"time"

	"github.com/agendaly/booking-backend/internal/pkg/interval"
	"github.com/stretchr/testify/require"
)

func hm(h, m int) time.Time {
	return time.Date(2026, 2, 9, h, m, 0, 0, time.UTC) // a Monday
}

func TestComputeSlots(t *testing.T) {
	tests := []struct {
		name    string
		params  SlotParams
		want    []time.Time
	}{
		{
			name: "empty day",
			params: SlotParams{
				Duration: 30 * time.Minute,
			},
			want: nil,
		},
		{
			name: "window fits slots back to back, last slot ends exactly at window end",
			params: SlotParams{
				Windows:  []interval.Interval{interval.New(hm(9, 0), hm(10, 30))},
				Duration: 30 * time.Minute,
			},
			want: []time.Time{hm(9, 0), hm(9, 30), hm(10, 0)},
		},
		{
			name: "busy appointment removes the overlapping slot only",
			params: SlotParams{
				Windows:  []interval.Interval{interval.New(hm(9, 0), hm(10, 30))},
				Duration: 30 * time.Minute,
				Busy:     []interval.Interval{interval.New(hm(9, 30), hm(10, 0))},
			},
			want: []time.Time{hm(9, 0), hm(10, 0)},
		},
		{
			name: "time off removes overlapping candidates",
			params: SlotParams{
				Windows:  []interval.Interval{interval.New(hm(9, 0), hm(12, 0))},
				Duration: time.Hour,
				TimeOff:  []interval.Interval{interval.New(hm(10, 0), hm(10, 30))},
			},
			want: []time.Time{hm(9, 0), hm(11, 0)},
		},
		{
			name: "duration longer than window yields nothing",
			params: SlotParams{
				Windows:  []interval.Interval{interval.New(hm(9, 0), hm(9, 45))},
				Duration: time.Hour,
			},
			want: nil,
		},
		{
			name: "finer step emits overlapping candidates",
			params: SlotParams{
				Windows:  []interval.Interval{interval.New(hm(9, 0), hm(10, 0))},
				Duration: 30 * time.Minute,
				Step:     15 * time.Minute,
			},
			want: []time.Time{hm(9, 0), hm(9, 15), hm(9, 30)},
		},
		{
			name: "adjacent windows never merge",
			params: SlotParams{
				Windows: []interval.Interval{
					interval.New(hm(9, 0), hm(9, 45)),
					interval.New(hm(9, 45), hm(10, 30)),
				},
				Duration: 30 * time.Minute,
			},
			// 09:15+30 would fit across the seam but must not be emitted.
			want: []time.Time{hm(9, 0), hm(9, 45)},
		},
		{
			name: "multiple disjoint windows, independent walks",
			params: SlotParams{
				Windows: []interval.Interval{
					interval.New(hm(9, 0), hm(10, 0)),
					interval.New(hm(14, 0), hm(15, 0)),
				},
				Duration: time.Hour,
			},
			want: []time.Time{hm(9, 0), hm(14, 0)},
		},
		{
			name: "busy interval touching a candidate end does not conflict",
			params: SlotParams{
				Windows:  []interval.Interval{interval.New(hm(9, 0), hm(10, 0))},
				Duration: 30 * time.Minute,
				Busy:     []interval.Interval{interval.New(hm(9, 30), hm(10, 0))},
			},
			want: []time.Time{hm(9, 0)},
		},
		{
			name: "busy covering the whole window removes everything",
			params: SlotParams{
				Windows:  []interval.Interval{interval.New(hm(9, 0), hm(12, 0))},
				Duration: time.Hour,
				Busy:     []interval.Interval{interval.New(hm(8, 0), hm(13, 0))},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSlots(tt.params)
			require.Equal(t, tt.want, got)
		})
	}
}

// Every emitted slot must fit inside some window and overlap nothing.
func TestComputeSlotsSoundness(t *testing.T) {
	params := SlotParams{
		Windows: []interval.Interval{
			interval.New(hm(9, 0), hm(12, 0)),
			interval.New(hm(14, 0), hm(18, 0)),
		},
		Duration: 45 * time.Minute,
		Step:     15 * time.Minute,
		TimeOff: []interval.Interval{
			interval.New(hm(10, 0), hm(10, 30)),
			interval.New(hm(16, 0), hm(17, 0)),
		},
		Busy: []interval.Interval{
			interval.New(hm(9, 30), hm(10, 0)),
			interval.New(hm(14, 30), hm(15, 15)),
		},
	}

	slots := ComputeSlots(params)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		cand := interval.New(s, s.Add(params.Duration))

		inWindow := false
		for _, w := range params.Windows {
			if !cand.Start.Before(w.Start) && !cand.End.After(w.End) {
				inWindow = true
				break
			}
		}
		require.True(t, inWindow, "slot %s must lie inside a window", s)
		require.False(t, interval.OverlapsAny(cand, params.TimeOff, false), "slot %s overlaps time off", s)
		require.False(t, interval.OverlapsAny(cand, params.Busy, false), "slot %s overlaps a booking", s)
	}

	// No duplicates, ascending order.
	for i := 1; i < len(slots); i++ {
		require.True(t, slots[i-1].Before(slots[i]), "slots must be strictly ascending")
	}
}

func TestComputeSlotsIdempotent(t *testing.T) {
	params := SlotParams{
		Windows:  []interval.Interval{interval.New(hm(9, 0), hm(12, 0))},
		Duration: 30 * time.Minute,
		Busy:     []interval.Interval{interval.New(hm(10, 0), hm(10, 30))},
	}

	first := ComputeSlots(params)
	second := ComputeSlots(params)
	require.Equal(t, first, second)
}
