package clock

import (
	"fmt"
	"time"
)

// Layout is the wall-clock format used for schedule hours, breaks, blocks and
// booking times.
const Layout = "15:04"

// DateLayout is the calendar-day format accepted at the API boundary.
const DateLayout = "2006-01-02"

// Parse converts "HH:MM" (24h) into minutes after midnight.
func Parse(hm string) (int, error) {
	t, err := time.Parse(Layout, hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Format renders minutes after midnight as "HH:MM".
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// At anchors a "HH:MM" string on the calendar day of date, in date's location.
func At(date time.Time, hm string) (time.Time, error) {
	m, err := Parse(hm)
	if err != nil {
		return time.Time{}, err
	}
	return AtMinutes(date, m), nil
}

// AtMinutes builds the wall-clock time m minutes after midnight on date's
// calendar day. It does not add elapsed time, so DST transitions earlier in the
// day leave the clock reading intact.
func AtMinutes(date time.Time, m int) time.Time {
	y, mo, d := date.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, date.Location())
}

// StartOfDay strips the time-of-day, keeping the location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day once b is
// expressed in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Before reports whether the "HH:MM" value a is strictly earlier than b.
// Malformed input never compares as earlier.
func Before(a, b string) bool {
	am, err := Parse(a)
	if err != nil {
		return false
	}
	bm, err := Parse(b)
	if err != nil {
		return false
	}
	return am < bm
}
