package formatter

import (
	"fmt"
	"strings"

	"github.com/tbecker/resplan/internal/domain"
)

// SizeBadge renders a task size with a per-size color.
func SizeBadge(size domain.Size) string {
	switch size {
	case domain.SizeXS:
		return StyleGreen.Render("XS")
	case domain.SizeS:
		return StyleGreen.Render("S")
	case domain.SizeM:
		return StyleBlue.Render("M")
	case domain.SizeL:
		return StyleYellow.Render("L")
	case domain.SizeXL:
		return StyleRed.Render("XL")
	default:
		return StyleDim.Render(string(size))
	}
}

// TaskTable renders the task list with sizing and schedule columns.
func TaskTable(tasks []*domain.Task, resourceNames map[string]string) string {
	if len(tasks) == 0 {
		return Dim("No tasks yet. Add one with: resplan task add")
	}

	headers := []string{"ID", "NAME", "OWNER", "SIZE", "START", "DUE", "HOURS", "COST", "RESOURCE"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		resource := Dim("—")
		if t.ResourceID != nil {
			if name, ok := resourceNames[*t.ResourceID]; ok {
				resource = name
			} else {
				resource = Dim(ShortID(*t.ResourceID))
			}
		}
		rows = append(rows, []string{
			Dim(ShortID(t.ID)),
			t.Name,
			t.Owner,
			SizeBadge(t.Size),
			ShortDate(t.StartDate),
			OptionalDate(t.DueDate),
			HoursLabel(t.Hours),
			Money(t.Cost),
			resource,
		})
	}
	return RenderTable(headers, rows)
}

// TaskDetail renders a single task as a boxed field list.
func TaskDetail(t *domain.Task, resourceName string, dependencyNames []string) string {
	var b strings.Builder

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-9s", label)), value)
	}

	field("ID", t.ID)
	field("Owner", t.Owner)
	field("Size", fmt.Sprintf("%s (%s, %s)", SizeBadge(t.Size), HoursLabel(t.Hours), Money(t.Cost)))
	field("Start", ShortDate(t.StartDate))
	field("Due", OptionalDate(t.DueDate))
	if resourceName != "" {
		field("Resource", resourceName)
	} else {
		field("Resource", Dim("unassigned"))
	}
	if len(dependencyNames) > 0 {
		field("After", strings.Join(dependencyNames, ", "))
	}

	return RenderBox(t.Name, strings.TrimRight(b.String(), "\n"))
}
