package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name          string
		a, b          Interval
		wantHalfOpen  bool
		wantInclusive bool
	}{
		{
			name:          "disjoint",
			a:             New(at(9, 0), at(10, 0)),
			b:             New(at(11, 0), at(12, 0)),
			wantHalfOpen:  false,
			wantInclusive: false,
		},
		{
			name:          "partial overlap",
			a:             New(at(9, 0), at(10, 0)),
			b:             New(at(9, 30), at(10, 30)),
			wantHalfOpen:  true,
			wantInclusive: true,
		},
		{
			name:          "contained",
			a:             New(at(9, 0), at(12, 0)),
			b:             New(at(10, 0), at(11, 0)),
			wantHalfOpen:  true,
			wantInclusive: true,
		},
		{
			name:          "touching endpoints",
			a:             New(at(9, 0), at(10, 0)),
			b:             New(at(10, 0), at(11, 0)),
			wantHalfOpen:  false,
			wantInclusive: true,
		},
		{
			name:          "identical",
			a:             New(at(9, 0), at(10, 0)),
			b:             New(at(9, 0), at(10, 0)),
			wantHalfOpen:  true,
			wantInclusive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantHalfOpen, Overlaps(tt.a, tt.b, false))
			require.Equal(t, tt.wantHalfOpen, Overlaps(tt.b, tt.a, false), "half-open overlap must be symmetric")
			require.Equal(t, tt.wantInclusive, Overlaps(tt.a, tt.b, true))
			require.Equal(t, tt.wantInclusive, Overlaps(tt.b, tt.a, true), "inclusive overlap must be symmetric")
		})
	}
}

func TestClamp(t *testing.T) {
	bounds := New(at(9, 0), at(18, 0))

	clipped := New(at(8, 0), at(10, 0)).Clamp(bounds)
	require.Equal(t, New(at(9, 0), at(10, 0)), clipped)

	inside := New(at(10, 0), at(11, 0)).Clamp(bounds)
	require.Equal(t, New(at(10, 0), at(11, 0)), inside)

	disjoint := New(at(19, 0), at(20, 0)).Clamp(bounds)
	require.True(t, disjoint.IsEmpty())
}

func TestContainsAndDuration(t *testing.T) {
	i := New(at(9, 0), at(10, 0))

	require.True(t, i.Contains(at(9, 0)), "start is inside a half-open interval")
	require.True(t, i.Contains(at(9, 59)))
	require.False(t, i.Contains(at(10, 0)), "end is outside a half-open interval")

	require.Equal(t, time.Hour, i.Duration())
	require.False(t, i.IsEmpty())
	require.True(t, New(at(9, 0), at(9, 0)).IsEmpty())
}
