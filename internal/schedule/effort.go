package schedule

import "github.com/tbecker/resplan/internal/domain"

const (
	// HoursPerDay is the fixed working-day length assumed by the ETA walk.
	HoursPerDay = 8

	// ReferenceWeeklyHours is the reference capacity of one resource for one
	// week, used by the forecast headcount and task-capacity estimates.
	ReferenceWeeklyHours = 40
)

// EffortModel maps size categories to hours and cost. Hours are fixed per
// size; costs default to the canonical table but carry user overrides.
type EffortModel struct {
	costs map[domain.Size]float64
}

// NewEffortModel builds a model from per-size cost overrides. Sizes missing
// from costs fall back to their canonical default cost.
func NewEffortModel(costs map[domain.Size]float64) EffortModel {
	m := EffortModel{costs: make(map[domain.Size]float64, len(costs))}
	for size, cost := range costs {
		m.costs[size] = cost
	}
	return m
}

// DefaultEffortModel returns a model with no cost overrides.
func DefaultEffortModel() EffortModel {
	return EffortModel{}
}

// Hours returns the canonical effort in hours for size; 0 for unknown sizes.
func (m EffortModel) Hours(size domain.Size) int {
	return size.Hours()
}

// Cost returns the configured cost for size, falling back to the canonical
// default; 0 for unknown sizes.
func (m EffortModel) Cost(size domain.Size) float64 {
	if cost, ok := m.costs[size]; ok {
		return cost
	}
	return size.DefaultCost()
}
