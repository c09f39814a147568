package availability

import (
	"testing"
	"time"

	"github.com/agendaly/booking-backend/internal/pkg/interval"
	"github.com/stretchr/testify/require"
)

func TestParseHM(t *testing.T) {
	tests := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{"09:00", 9, 0, false},
		{"23:59", 23, 59, false},
		{"00:00", 0, 0, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"9:00", 0, 0, true},
		{"09-00", 0, 0, true},
		{"ab:cd", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		h, m, err := ParseHM(tt.in)
		if tt.wantErr {
			require.Error(t, err, "ParseHM(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseHM(%q)", tt.in)
		require.Equal(t, tt.hour, h)
		require.Equal(t, tt.minute, m)
	}
}

func TestISOWeekday(t *testing.T) {
	// 2026-02-09 is a Monday, 2026-02-15 a Sunday.
	for i := 0; i < 7; i++ {
		day := time.Date(2026, 2, 9+i, 0, 0, 0, 0, time.UTC)
		require.Equal(t, i+1, ISOWeekday(day))
	}
}

func TestDayWindows(t *testing.T) {
	rules := []WeeklyRule{
		{DayOfWeek: 1, StartTime: "14:00", EndTime: "18:00"},
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 2, StartTime: "10:00", EndTime: "16:00"},
	}

	monday := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	windows := DayWindows(monday, rules)

	require.Len(t, windows, 2, "only Monday rules apply")
	require.Equal(t, interval.New(
		time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
	), windows[0], "windows must come out sorted by start")
	require.Equal(t, interval.New(
		time.Date(2026, 2, 9, 14, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 9, 18, 0, 0, 0, time.UTC),
	), windows[1])

	wednesday := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)
	require.Empty(t, DayWindows(wednesday, rules))
}

// Windows are anchored in the date's own location, so a tenant west of UTC
// books against their local weekday, not the UTC one.
func TestDayWindowsTimezone(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	rules := []WeeklyRule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
	}

	monday := time.Date(2026, 2, 9, 0, 0, 0, 0, saoPaulo)
	windows := DayWindows(monday, rules)
	require.Len(t, windows, 1)

	require.Equal(t, time.Date(2026, 2, 9, 9, 0, 0, 0, saoPaulo), windows[0].Start)
	// 09:00 in São Paulo (UTC-3) is 12:00 UTC.
	require.Equal(t, time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC).Unix(), windows[0].Start.Unix())
}
