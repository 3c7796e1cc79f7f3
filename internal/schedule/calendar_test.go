package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWorkingDay_Weekdays(t *testing.T) {
	// Mon 2025-03-10 through Fri 2025-03-14
	for d := 10; d <= 14; d++ {
		assert.True(t, IsWorkingDay(date(2025, 3, d), nil), "2025-03-%02d should be a working day", d)
	}
}

func TestIsWorkingDay_Weekend(t *testing.T) {
	assert.False(t, IsWorkingDay(date(2025, 3, 15), nil)) // Saturday
	assert.False(t, IsWorkingDay(date(2025, 3, 16), nil)) // Sunday
}

func TestIsWorkingDay_Holiday(t *testing.T) {
	holidays := []time.Time{date(2025, 1, 1)}
	assert.False(t, IsWorkingDay(date(2025, 1, 1), holidays))
	assert.True(t, IsWorkingDay(date(2025, 1, 2), holidays))
}

func TestIsWorkingDay_HolidayMatchIgnoresTimeOfDay(t *testing.T) {
	holidays := []time.Time{time.Date(2025, 1, 1, 14, 30, 0, 0, time.UTC)}
	noon := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.False(t, IsWorkingDay(noon, holidays), "holiday matching is by calendar day, not timestamp")
}

func TestWeekStart_MondayAligned(t *testing.T) {
	monday := date(2025, 3, 10)
	assert.Equal(t, monday, WeekStart(monday))
	assert.Equal(t, monday, WeekStart(date(2025, 3, 12))) // Wednesday
	assert.Equal(t, monday, WeekStart(date(2025, 3, 16))) // Sunday belongs to the preceding Monday
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, daysBetween(date(2025, 3, 10), date(2025, 3, 10)))
	assert.Equal(t, 3, daysBetween(date(2025, 3, 10), date(2025, 3, 13)))
	assert.Equal(t, -1, daysBetween(date(2025, 3, 10), date(2025, 3, 9)))
}
