package schedule

import "time"

// DateOnly truncates t to its calendar day. All date arithmetic in this
// package operates on calendar days in UTC; time zones are out of scope.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day, ignoring
// time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWorkingDay reports whether t is a working day: not a weekend and not
// calendar-equal to any configured holiday.
func IsWorkingDay(t time.Time, holidays []time.Time) bool {
	if IsWeekend(t) {
		return false
	}
	for _, h := range holidays {
		if SameDay(t, h) {
			return false
		}
	}
	return true
}

// WeekStart returns the Monday-aligned start of the week containing t.
func WeekStart(t time.Time) time.Time {
	d := DateOnly(t)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return d.AddDate(0, 0, -offset)
}

// daysBetween returns the whole calendar days from a to b (b - a).
func daysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
