package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbecker/resplan/internal/repository"
	"github.com/tbecker/resplan/internal/testutil"
)

func TestResourceRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteResourceRepo(database)
	ctx := t.Context()

	res := testutil.NewTestResource("Avery", testutil.WithCapacity(20))
	require.NoError(t, repo.Create(ctx, res))

	got, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Avery", got.Name)
	assert.Equal(t, 20.0, got.Capacity)
}

func TestResourceRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteResourceRepo(database)

	_, err := repo.GetByID(t.Context(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestResourceRepo_List_SortedByName(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteResourceRepo(database)
	ctx := t.Context()

	require.NoError(t, repo.Create(ctx, testutil.NewTestResource("Zoe")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestResource("Avery")))

	resources, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, "Avery", resources[0].Name)
	assert.Equal(t, "Zoe", resources[1].Name)
}

func TestResourceRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteResourceRepo(database)
	ctx := t.Context()

	res := testutil.NewTestResource("Avery")
	require.NoError(t, repo.Create(ctx, res))

	res.Name = "Avery B"
	res.Capacity = 0.8
	res.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, res))

	got, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Avery B", got.Name)
	assert.Equal(t, 0.8, got.Capacity)
}

func TestResourceRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteResourceRepo(database)
	ctx := t.Context()

	res := testutil.NewTestResource("Avery")
	require.NoError(t, repo.Create(ctx, res))
	require.NoError(t, repo.Delete(ctx, res.ID))

	_, err := repo.GetByID(ctx, res.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
