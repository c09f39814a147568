package availability

import (
	"sort"
	"time"

	"github.com/agendaly/booking-backend/internal/pkg/interval"
)

// ParseHM parses a wall-clock "HH:MM" string. Input is already shape-checked
// at the HTTP boundary; this re-validates digits and range so the package
// stays safe for any caller.
func ParseHM(hm string) (hour, minute int, err error) {
	if len(hm) != 5 || hm[2] != ':' {
		return 0, 0, ErrInvalidClockTime
	}
	for _, i := range []int{0, 1, 3, 4} {
		if hm[i] < '0' || hm[i] > '9' {
			return 0, 0, ErrInvalidClockTime
		}
	}
	hour = int(hm[0]-'0')*10 + int(hm[1]-'0')
	minute = int(hm[3]-'0')*10 + int(hm[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, 0, ErrInvalidClockTime
	}
	return hour, minute, nil
}

// ISOWeekday returns the day of week of t with Monday=1 .. Sunday=7,
// evaluated in t's own location.
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday())+6)%7 + 1
}

// DayWindow anchors a rule's wall-clock times onto the calendar day of date,
// in date's location.
func DayWindow(date time.Time, rule WeeklyRule) (interval.Interval, error) {
	sh, sm, err := ParseHM(rule.StartTime)
	if err != nil {
		return interval.Interval{}, err
	}
	eh, em, err := ParseHM(rule.EndTime)
	if err != nil {
		return interval.Interval{}, err
	}

	y, m, d := date.Date()
	loc := date.Location()
	return interval.New(
		time.Date(y, m, d, sh, sm, 0, 0, loc),
		time.Date(y, m, d, eh, em, 0, 0, loc),
	), nil
}

// DayWindows maps every rule matching date's weekday onto concrete windows,
// sorted by start instant so concatenated slot sequences come out in global
// time order. Rules with malformed times are skipped; they cannot be created
// through the API.
func DayWindows(date time.Time, rules []WeeklyRule) []interval.Interval {
	dow := ISOWeekday(date)

	var windows []interval.Interval
	for _, rule := range rules {
		if rule.DayOfWeek != dow {
			continue
		}
		w, err := DayWindow(date, rule)
		if err != nil {
			continue
		}
		windows = append(windows, w)
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Start.Before(windows[j].Start)
	})
	return windows
}
