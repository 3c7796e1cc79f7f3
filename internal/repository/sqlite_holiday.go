package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tbecker/resplan/internal/db"
	"github.com/tbecker/resplan/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo against the holidays table.
type SQLiteHolidayRepo struct {
	db db.DBTX
}

// NewSQLiteHolidayRepo creates a new SQLiteHolidayRepo.
func NewSQLiteHolidayRepo(dbtx db.DBTX) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{db: dbtx}
}

func (r *SQLiteHolidayRepo) List(ctx context.Context) ([]domain.Holiday, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT day, name FROM holidays ORDER BY day`)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()

	var holidays []domain.Holiday
	for rows.Next() {
		var dayStr, name string
		if err := rows.Scan(&dayStr, &name); err != nil {
			return nil, fmt.Errorf("scanning holiday: %w", err)
		}
		day, err := time.Parse(dateLayout, dayStr)
		if err != nil {
			return nil, fmt.Errorf("parsing holiday day: %w", err)
		}
		holidays = append(holidays, domain.Holiday{Day: day, Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return holidays, nil
}

func (r *SQLiteHolidayRepo) Add(ctx context.Context, h domain.Holiday) error {
	query := `INSERT INTO holidays (day, name) VALUES (?, ?)
		ON CONFLICT(day) DO UPDATE SET name = excluded.name`
	if _, err := r.db.ExecContext(ctx, query, h.Day.Format(dateLayout), h.Name); err != nil {
		return fmt.Errorf("adding holiday: %w", err)
	}
	return nil
}

func (r *SQLiteHolidayRepo) Remove(ctx context.Context, day time.Time) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE day = ?`, day.Format(dateLayout)); err != nil {
		return fmt.Errorf("removing holiday: %w", err)
	}
	return nil
}
