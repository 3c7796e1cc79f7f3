package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tbecker/resplan/internal/domain"
)

func TestDueDate_NoDependencies(t *testing.T) {
	// M = 16h = 2 working days from Monday.
	due := DueDate(date(2025, 3, 10), domain.SizeM, nil, nil, nil)
	assert.Equal(t, date(2025, 3, 12), due)
}

func TestDueDate_SkipsWeekend(t *testing.T) {
	// S = 8h = 1 working day from Friday lands on Monday.
	due := DueDate(date(2025, 3, 14), domain.SizeS, nil, nil, nil)
	assert.Equal(t, date(2025, 3, 17), due)
}

func TestDueDate_SkipsHolidayAndWeekend(t *testing.T) {
	// M from Mon 2024-12-30: Tue 12-31 counts, Wed 1-1 is a holiday,
	// Thu 1-2 counts.
	holidays := []time.Time{date(2025, 1, 1)}
	due := DueDate(date(2024, 12, 30), domain.SizeM, holidays, nil, nil)
	assert.Equal(t, date(2025, 1, 2), due)
}

func TestDueDate_DependencySeedsLaterStart(t *testing.T) {
	depDue := date(2025, 3, 18)
	all := []*domain.Task{
		{ID: "a", StartDate: date(2025, 3, 10), DueDate: &depDue, Size: domain.SizeL},
	}
	// Nominal start Mon 3-10 is overridden by the dependency's due date
	// Tue 3-18; S adds one working day.
	due := DueDate(date(2025, 3, 10), domain.SizeS, nil, all, []string{"a"})
	assert.Equal(t, date(2025, 3, 19), due)
}

func TestDueDate_DependencyWithoutDueDateUsesStart(t *testing.T) {
	all := []*domain.Task{
		{ID: "a", StartDate: date(2025, 3, 20), Size: domain.SizeM},
	}
	due := DueDate(date(2025, 3, 10), domain.SizeS, nil, all, []string{"a"})
	assert.Equal(t, date(2025, 3, 21), due)
}

func TestDueDate_EarlierDependencyDoesNotOverride(t *testing.T) {
	depDue := date(2025, 3, 5)
	all := []*domain.Task{
		{ID: "a", StartDate: date(2025, 3, 3), DueDate: &depDue, Size: domain.SizeS},
	}
	due := DueDate(date(2025, 3, 10), domain.SizeS, nil, all, []string{"a"})
	assert.Equal(t, date(2025, 3, 11), due)
}

func TestDueDate_UnknownDependencyIgnored(t *testing.T) {
	due := DueDate(date(2025, 3, 10), domain.SizeS, nil, nil, []string{"ghost"})
	assert.Equal(t, date(2025, 3, 11), due)
}

func TestDueDate_LatestOfSeveralDependenciesWins(t *testing.T) {
	dueA := date(2025, 3, 12)
	dueB := date(2025, 3, 25)
	all := []*domain.Task{
		{ID: "a", StartDate: date(2025, 3, 10), DueDate: &dueA, Size: domain.SizeS},
		{ID: "b", StartDate: date(2025, 3, 10), DueDate: &dueB, Size: domain.SizeXL},
	}
	due := DueDate(date(2025, 3, 10), domain.SizeS, nil, all, []string{"a", "b"})
	assert.Equal(t, date(2025, 3, 26), due)
}

func TestDueDate_ZeroEffortReturnsEffectiveStart(t *testing.T) {
	// An unrecognized size has zero hours and consumes no working days.
	due := DueDate(date(2025, 3, 10), domain.SizeUnspecified, nil, nil, nil)
	assert.Equal(t, date(2025, 3, 10), due)
}

func TestDueDate_XLConsumesFourWorkingDays(t *testing.T) {
	// XL = 32h = 4 working days from Monday.
	due := DueDate(date(2025, 3, 10), domain.SizeXL, nil, nil, nil)
	assert.Equal(t, date(2025, 3, 14), due)
}
