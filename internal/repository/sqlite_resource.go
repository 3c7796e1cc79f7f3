package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tbecker/resplan/internal/db"
	"github.com/tbecker/resplan/internal/domain"
)

// SQLiteResourceRepo implements ResourceRepo using a SQLite database.
type SQLiteResourceRepo struct {
	db db.DBTX
}

// NewSQLiteResourceRepo creates a new SQLiteResourceRepo.
func NewSQLiteResourceRepo(dbtx db.DBTX) *SQLiteResourceRepo {
	return &SQLiteResourceRepo{db: dbtx}
}

func (r *SQLiteResourceRepo) Create(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (id, name, capacity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		res.ID,
		res.Name,
		res.Capacity,
		res.CreatedAt.Format(time.RFC3339),
		res.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting resource: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	query := `SELECT id, name, capacity, created_at, updated_at FROM resources WHERE id = ?`
	return scanResource(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteResourceRepo) List(ctx context.Context) ([]*domain.Resource, error) {
	query := `SELECT id, name, capacity, created_at, updated_at FROM resources ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	defer rows.Close()

	var resources []*domain.Resource
	for rows.Next() {
		var res domain.Resource
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&res.ID, &res.Name, &res.Capacity, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning resource row: %w", err)
		}
		if err := populateResourceTimes(&res, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		resources = append(resources, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resources: %w", err)
	}
	return resources, nil
}

func (r *SQLiteResourceRepo) Update(ctx context.Context, res *domain.Resource) error {
	query := `UPDATE resources SET name = ?, capacity = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		res.Name,
		res.Capacity,
		res.UpdatedAt.Format(time.RFC3339),
		res.ID,
	)
	if err != nil {
		return fmt.Errorf("updating resource: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM resources WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting resource: %w", err)
	}
	return nil
}

func scanResource(row *sql.Row) (*domain.Resource, error) {
	var res domain.Resource
	var createdAtStr, updatedAtStr string
	err := row.Scan(&res.ID, &res.Name, &res.Capacity, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("resource: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning resource: %w", err)
	}
	if err := populateResourceTimes(&res, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &res, nil
}

func populateResourceTimes(res *domain.Resource, createdAtStr, updatedAtStr string) error {
	var err error
	res.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	res.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
