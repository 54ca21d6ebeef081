package nameindex_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/nameindex"
)

func TestMemoryAddAndExists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	idx := nameindex.NewMemory()

	taken, err := idx.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, taken)

	require.NoError(t, idx.Add(ctx, "alice"))

	taken, err = idx.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestMemoryAddIsAtomic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	idx := nameindex.NewMemory()
	require.NoError(t, idx.Add(ctx, "alice"))
	assert.ErrorIs(t, idx.Add(ctx, "alice"), nameindex.ErrNameTaken)
}

func TestMemoryNormalizesNames(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	idx := nameindex.NewMemory("Alice")

	taken, err := idx.Exists(ctx, "  alice ")
	require.NoError(t, err)
	assert.True(t, taken, "uniqueness ignores case and surrounding whitespace")

	assert.ErrorIs(t, idx.Add(ctx, "ALICE"), nameindex.ErrNameTaken)
}

func TestMemoryRemove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	idx := nameindex.NewMemory("alice")
	require.NoError(t, idx.Remove(ctx, "alice"))
	require.NoError(t, idx.Remove(ctx, "never-added"))

	taken, err := idx.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestMemoryHonorsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	idx := nameindex.NewMemory()
	_, err := idx.Exists(ctx, "alice")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, idx.Add(ctx, "alice"), context.Canceled)
}
