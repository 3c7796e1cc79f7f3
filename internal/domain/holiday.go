package domain

import "time"

// Holiday is a configured non-working calendar day. Matching is by calendar
// day only; the time of day is ignored.
type Holiday struct {
	Day  time.Time
	Name string
}

// DefaultHolidays is the seed holiday calendar (US federal-style, 2025).
func DefaultHolidays() []Holiday {
	return []Holiday{
		{Day: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Name: "New Year's Day"},
		{Day: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), Name: "Martin Luther King Jr. Day"},
		{Day: time.Date(2025, 2, 17, 0, 0, 0, 0, time.UTC), Name: "Presidents' Day"},
		{Day: time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC), Name: "Memorial Day"},
		{Day: time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), Name: "Independence Day"},
		{Day: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), Name: "Labor Day"},
		{Day: time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC), Name: "Veterans Day"},
		{Day: time.Date(2025, 11, 27, 0, 0, 0, 0, time.UTC), Name: "Thanksgiving"},
		{Day: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), Name: "Christmas"},
	}
}

// Days extracts the bare dates from a holiday list for the calendar functions.
func Days(holidays []Holiday) []time.Time {
	days := make([]time.Time, len(holidays))
	for i, h := range holidays {
		days[i] = h.Day
	}
	return days
}
