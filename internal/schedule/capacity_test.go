package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tbecker/resplan/internal/domain"
)

func TestTaskCapacity_EmptyBacklog(t *testing.T) {
	capacity := TaskCapacity(nil)

	// 160h of reference capacity over the 4-week window.
	assert.Equal(t, 40, capacity[domain.SizeXS])
	assert.Equal(t, 20, capacity[domain.SizeS])
	assert.Equal(t, 10, capacity[domain.SizeM])
	assert.Equal(t, 6, capacity[domain.SizeL])
	assert.Equal(t, 5, capacity[domain.SizeXL])
}

func TestTaskCapacity_SubtractsExistingTasks(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "a", Size: domain.SizeXL}, // 32h
	}
	capacity := TaskCapacity(tasks)

	assert.Equal(t, 32, capacity[domain.SizeXS]) // 128/4
	assert.Equal(t, 4, capacity[domain.SizeXL])  // 128/32
}

func TestTaskCapacity_OverallocatedClampsToZero(t *testing.T) {
	var tasks []*domain.Task
	for i := 0; i < 6; i++ {
		tasks = append(tasks, &domain.Task{Size: domain.SizeXL})
	}
	capacity := TaskCapacity(tasks)

	for _, size := range domain.Sizes {
		assert.Zero(t, capacity[size], "size %s", size)
	}
}
