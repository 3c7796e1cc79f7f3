package snapshot

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tbecker/resplan/internal/domain"
)

// Plan holds converted snapshot contents ready for persistence.
type Plan struct {
	Resources []*domain.Resource
	Tasks     []*domain.Task
	Holidays  []domain.Holiday
	SizeCosts map[domain.Size]float64
}

// Convert transforms a validated snapshot into domain objects.
// Call Validate first; Convert assumes the snapshot is valid.
func Convert(snap *Snapshot) (*Plan, error) {
	now := time.Now().UTC()
	plan := &Plan{SizeCosts: make(map[domain.Size]float64, len(snap.SizeCosts))}

	resourceIDs := make(map[string]string, len(snap.Resources))
	for _, r := range snap.Resources {
		id := uuid.New().String()
		resourceIDs[r.Ref] = id

		capacity := 40.0
		if r.Capacity != nil {
			capacity = *r.Capacity
		}
		plan.Resources = append(plan.Resources, &domain.Resource{
			ID:        id,
			Name:      r.Name,
			Capacity:  capacity,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	taskIDs := make(map[string]string, len(snap.Tasks))
	for _, t := range snap.Tasks {
		taskIDs[t.Ref] = uuid.New().String()
	}

	for _, t := range snap.Tasks {
		startDate, err := time.Parse("2006-01-02", t.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parsing start_date for %q: %w", t.Ref, err)
		}

		var dueDate *time.Time
		if t.DueDate != nil {
			d, err := time.Parse("2006-01-02", *t.DueDate)
			if err != nil {
				return nil, fmt.Errorf("parsing due_date for %q: %w", t.Ref, err)
			}
			dueDate = &d
		}

		size := domain.Size(t.Size)
		if t.Size == "" {
			size = domain.SizeM
		}
		owner := t.Owner
		if owner == "" {
			owner = "Unassigned"
		}
		hours := size.Hours()
		if t.Hours != nil {
			hours = *t.Hours
		}
		cost := size.DefaultCost()
		if t.Cost != nil {
			cost = *t.Cost
		}

		// Unknown dependency refs are dropped rather than rejected so a
		// hand-trimmed snapshot still round-trips.
		var deps []string
		for _, dep := range t.Dependencies {
			if id, ok := taskIDs[dep]; ok {
				deps = append(deps, id)
			}
		}

		var resourceID *string
		if t.ResourceRef != nil {
			if id, ok := resourceIDs[*t.ResourceRef]; ok {
				resourceID = &id
			}
		}

		plan.Tasks = append(plan.Tasks, &domain.Task{
			ID:           taskIDs[t.Ref],
			Name:         t.Name,
			Owner:        owner,
			Size:         size,
			StartDate:    startDate,
			DueDate:      dueDate,
			Hours:        hours,
			Cost:         cost,
			Dependencies: deps,
			ResourceID:   resourceID,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	for _, h := range snap.Holidays {
		day, err := time.Parse("2006-01-02", h.Day)
		if err != nil {
			return nil, fmt.Errorf("parsing holiday day %q: %w", h.Day, err)
		}
		plan.Holidays = append(plan.Holidays, domain.Holiday{Day: day, Name: h.Name})
	}

	for size, cost := range snap.SizeCosts {
		plan.SizeCosts[domain.Size(size)] = cost
	}

	return plan, nil
}

// Build creates a snapshot from live domain objects. Record refs are the
// stored IDs, which keeps exported dependencies resolvable on re-import.
func Build(tasks []*domain.Task, resources []*domain.Resource, holidays []domain.Holiday, costs map[domain.Size]float64, now time.Time) *Snapshot {
	snap := &Snapshot{
		Version:    CurrentVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		SizeCosts:  make(map[string]float64, len(costs)),
	}

	for _, r := range resources {
		capacity := r.Capacity
		snap.Resources = append(snap.Resources, ResourceRecord{
			Ref:      r.ID,
			Name:     r.Name,
			Capacity: &capacity,
		})
	}

	for _, t := range tasks {
		hours := t.Hours
		cost := t.Cost
		rec := TaskRecord{
			Ref:          t.ID,
			Name:         t.Name,
			Owner:        t.Owner,
			Size:         string(t.Size),
			StartDate:    t.StartDate.Format("2006-01-02"),
			Hours:        &hours,
			Cost:         &cost,
			Dependencies: t.Dependencies,
			ResourceRef:  t.ResourceID,
		}
		if t.DueDate != nil {
			due := t.DueDate.Format("2006-01-02")
			rec.DueDate = &due
		}
		snap.Tasks = append(snap.Tasks, rec)
	}

	for _, h := range holidays {
		snap.Holidays = append(snap.Holidays, HolidayRecord{
			Day:  h.Day.Format("2006-01-02"),
			Name: h.Name,
		})
	}

	for size, cost := range costs {
		snap.SizeCosts[string(size)] = cost
	}

	return snap
}
