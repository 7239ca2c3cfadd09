package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brandbong/Vedham/internal/cart"
	"github.com/Brandbong/Vedham/internal/domain"
)

func setupTestRepo(t *testing.T) *cart.SQLiteRepository {
	// Use in-memory database for tests
	repo, err := cart.NewSQLiteRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	require.NoError(t, repo.RunMigrations("./migrations"))
	return repo
}

func TestLoad_EmptyDatabase(t *testing.T) {
	repo := setupTestRepo(t)

	entries, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSave_ThenLoadPreservesOrder(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	saved := []domain.CartEntry{
		{ProductID: "health-malt", Quantity: 2},
		{ProductID: "moringa-powder", Quantity: 1},
		{ProductID: "moringa-dosa-mix", Quantity: 4},
	}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSave_ReplacesWholeCart(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []domain.CartEntry{
		{ProductID: "health-malt", Quantity: 2},
		{ProductID: "moringa-powder", Quantity: 1},
	}))
	require.NoError(t, repo.Save(ctx, []domain.CartEntry{
		{ProductID: "ragi-malt", Quantity: 3},
	}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "ragi-malt", loaded[0].ProductID)
}

func TestSave_EmptyCartClearsTable(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []domain.CartEntry{{ProductID: "health-malt", Quantity: 2}}))
	require.NoError(t, repo.Save(ctx, nil))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
