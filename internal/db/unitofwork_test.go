package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countHolidays(t *testing.T, dbtx DBTX) int {
	t.Helper()
	var n int
	err := dbtx.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM holidays`).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	before := countHolidays(t, database)

	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO holidays (day, name) VALUES ('2025-12-24', 'Christmas Eve')`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, before+1, countHolidays(t, database))
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	before := countHolidays(t, database)
	boom := errors.New("boom")

	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO holidays (day, name) VALUES ('2025-12-24', 'Christmas Eve')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, before, countHolidays(t, database))
}

func TestWithinTx_RollsBackOnPanic(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	before := countHolidays(t, database)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
			if _, err := tx.ExecContext(ctx, `INSERT INTO holidays (day, name) VALUES ('2025-12-24', 'Christmas Eve')`); err != nil {
				return err
			}
			panic("boom")
		})
	})
	assert.Equal(t, before, countHolidays(t, database))
}
