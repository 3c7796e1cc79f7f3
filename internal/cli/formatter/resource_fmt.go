package formatter

import (
	"fmt"

	"github.com/tbecker/resplan/internal/domain"
)

// ResourceTable renders the resource list with assigned-task counts.
func ResourceTable(resources []*domain.Resource, taskCounts map[string]int) string {
	if len(resources) == 0 {
		return Dim("No resources yet. Add one with: resplan resource add")
	}

	headers := []string{"ID", "NAME", "CAPACITY", "TASKS"}
	rows := make([][]string, 0, len(resources))
	for _, r := range resources {
		rows = append(rows, []string{
			Dim(ShortID(r.ID)),
			r.Name,
			fmt.Sprintf("%gh/week", r.Capacity),
			fmt.Sprintf("%d", taskCounts[r.ID]),
		})
	}
	return RenderTable(headers, rows)
}
