package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tbecker/resplan/internal/db"
	"github.com/tbecker/resplan/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, name, owner, size, start_date, due_date,
		hours, cost, resource_id, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database. Dependency
// edges live in the task_dependencies table and are read and written
// alongside the task rows.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, name, owner, size, start_date, due_date,
		hours, cost, resource_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Owner,
		string(t.Size),
		t.StartDate.Format(dateLayout),
		nullableTimeToString(t.DueDate, dateLayout),
		t.Hours,
		t.Cost,
		nullableStr(t.ResourceID),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return r.writeDependencies(ctx, t.ID, t.Dependencies)
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	task, err := r.scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	deps, err := r.loadDependencies(ctx, id)
	if err != nil {
		return nil, err
	}
	task.Dependencies = deps
	return task, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY start_date, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks, err := r.scanTasks(rows)
	if err != nil {
		return nil, err
	}
	return tasks, r.attachDependencies(ctx, tasks)
}

func (r *SQLiteTaskRepo) ListDependents(ctx context.Context, id string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE id IN (SELECT task_id FROM task_dependencies WHERE depends_on_id = ?)
		ORDER BY start_date, created_at`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("listing dependents: %w", err)
	}
	defer rows.Close()

	tasks, err := r.scanTasks(rows)
	if err != nil {
		return nil, err
	}
	return tasks, r.attachDependencies(ctx, tasks)
}

func (r *SQLiteTaskRepo) ListByResource(ctx context.Context, resourceID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE resource_id = ? ORDER BY start_date, created_at`
	rows, err := r.db.QueryContext(ctx, query, resourceID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by resource: %w", err)
	}
	defer rows.Close()

	tasks, err := r.scanTasks(rows)
	if err != nil {
		return nil, err
	}
	return tasks, r.attachDependencies(ctx, tasks)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET name = ?, owner = ?, size = ?, start_date = ?,
		due_date = ?, hours = ?, cost = ?, resource_id = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.Owner,
		string(t.Size),
		t.StartDate.Format(dateLayout),
		nullableTimeToString(t.DueDate, dateLayout),
		t.Hours,
		t.Cost,
		nullableStr(t.ResourceID),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_dependencies WHERE task_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clearing task dependencies: %w", err)
	}
	return r.writeDependencies(ctx, t.ID, t.Dependencies)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	// Edges pointing at the task do not cascade; clear them first.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_dependencies WHERE depends_on_id = ?`, id); err != nil {
		return fmt.Errorf("clearing inbound dependencies: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) writeDependencies(ctx context.Context, taskID string, deps []string) error {
	for i, dep := range deps {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO task_dependencies (task_id, depends_on_id, position) VALUES (?, ?, ?)`,
			taskID, dep, i,
		)
		if err != nil {
			return fmt.Errorf("inserting task dependency: %w", err)
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) loadDependencies(ctx context.Context, taskID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT depends_on_id FROM task_dependencies WHERE task_id = ? ORDER BY position`, taskID)
	if err != nil {
		return nil, fmt.Errorf("loading task dependencies: %w", err)
	}
	defer rows.Close()

	var deps []string
	for rows.Next() {
		var dep string
		if err := rows.Scan(&dep); err != nil {
			return nil, fmt.Errorf("scanning task dependency: %w", err)
		}
		deps = append(deps, dep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task dependencies: %w", err)
	}
	return deps, nil
}

// attachDependencies loads all dependency edges once and attaches them to the
// given tasks in insertion order.
func (r *SQLiteTaskRepo) attachDependencies(ctx context.Context, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, depends_on_id FROM task_dependencies ORDER BY task_id, position`)
	if err != nil {
		return fmt.Errorf("loading task dependencies: %w", err)
	}
	defer rows.Close()

	byTask := make(map[string][]string)
	for rows.Next() {
		var taskID, dep string
		if err := rows.Scan(&taskID, &dep); err != nil {
			return fmt.Errorf("scanning task dependency: %w", err)
		}
		byTask[taskID] = append(byTask[taskID], dep)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating task dependencies: %w", err)
	}

	for _, t := range tasks {
		t.Dependencies = byTask[t.ID]
	}
	return nil
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var sizeStr, startStr, createdAtStr, updatedAtStr string
	var dueStr, resourceStr sql.NullString

	err := row.Scan(
		&t.ID, &t.Name, &t.Owner, &sizeStr, &startStr, &dueStr,
		&t.Hours, &t.Cost, &resourceStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return populateTask(&t, sizeStr, startStr, createdAtStr, updatedAtStr, dueStr, resourceStr)
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var sizeStr, startStr, createdAtStr, updatedAtStr string
		var dueStr, resourceStr sql.NullString

		err := rows.Scan(
			&t.ID, &t.Name, &t.Owner, &sizeStr, &startStr, &dueStr,
			&t.Hours, &t.Cost, &resourceStr, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		task, err := populateTask(&t, sizeStr, startStr, createdAtStr, updatedAtStr, dueStr, resourceStr)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func populateTask(
	t *domain.Task,
	sizeStr, startStr, createdAtStr, updatedAtStr string,
	dueStr, resourceStr sql.NullString,
) (*domain.Task, error) {
	t.Size = domain.Size(sizeStr)
	t.DueDate = parseNullableTime(dueStr, dateLayout)
	t.ResourceID = strPtrFromNull(resourceStr)

	var err error
	t.StartDate, err = time.Parse(dateLayout, startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, nil
}
