package repository

import (
	"context"
	"fmt"

	"github.com/tbecker/resplan/internal/db"
	"github.com/tbecker/resplan/internal/domain"
)

// SQLiteCostConfigRepo implements CostConfigRepo against the size_costs
// table. Rows are seeded by the migrations, so Costs always returns a
// value for every known size.
type SQLiteCostConfigRepo struct {
	db db.DBTX
}

// NewSQLiteCostConfigRepo creates a new SQLiteCostConfigRepo.
func NewSQLiteCostConfigRepo(dbtx db.DBTX) *SQLiteCostConfigRepo {
	return &SQLiteCostConfigRepo{db: dbtx}
}

func (r *SQLiteCostConfigRepo) Costs(ctx context.Context) (map[domain.Size]float64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT size, cost FROM size_costs`)
	if err != nil {
		return nil, fmt.Errorf("loading size costs: %w", err)
	}
	defer rows.Close()

	costs := make(map[domain.Size]float64)
	for rows.Next() {
		var sizeStr string
		var cost float64
		if err := rows.Scan(&sizeStr, &cost); err != nil {
			return nil, fmt.Errorf("scanning size cost: %w", err)
		}
		costs[domain.Size(sizeStr)] = cost
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating size costs: %w", err)
	}
	return costs, nil
}

func (r *SQLiteCostConfigRepo) SetCost(ctx context.Context, size domain.Size, cost float64) error {
	query := `INSERT INTO size_costs (size, cost) VALUES (?, ?)
		ON CONFLICT(size) DO UPDATE SET cost = excluded.cost`
	if _, err := r.db.ExecContext(ctx, query, string(size), cost); err != nil {
		return fmt.Errorf("setting size cost: %w", err)
	}
	return nil
}
