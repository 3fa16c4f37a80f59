package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
	assert.NoError(t, store.Close())
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.t2048/results.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".t2048", "results.db"))
	assert.NoError(t, err)
}

func TestSaveAndBestResults(t *testing.T) {
	store := openTestStore(t)

	// Given: sessions across two variants
	for _, r := range []Result{
		{Variant: "classic", MaxTile: 256, Moves: 180, Seed: 1},
		{Variant: "classic", MaxTile: 1024, Moves: 600, Seed: 2},
		{Variant: "classic", MaxTile: 1024, Moves: 550, Seed: 3, Outcome: OutcomeQuit},
		{Variant: "strict", MaxTile: 2048, Moves: 900, Seed: 4},
	} {
		id, err := store.SaveResult(r)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	// When: the best classic sessions are read
	best, err := store.BestResults("classic", 10)
	require.NoError(t, err)

	// Then: they are ordered by tile, then by fewer moves
	require.Len(t, best, 3)
	assert.Equal(t, int64(3), best[0].Seed)
	assert.Equal(t, OutcomeQuit, best[0].Outcome)
	assert.Equal(t, int64(2), best[1].Seed)
	assert.Equal(t, OutcomeGameOver, best[1].Outcome)
	assert.Equal(t, 256, best[2].MaxTile)
	assert.False(t, best[0].CreatedAt.IsZero())
}

func TestBestResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		_, err := store.SaveResult(Result{Variant: "classic", MaxTile: 2 << i, Moves: i})
		require.NoError(t, err)
	}

	best, err := store.BestResults("classic", 5)
	require.NoError(t, err)
	require.Len(t, best, 5)
	assert.Equal(t, 2<<14, best[0].MaxTile)

	// Non-positive limits fall back to the default.
	best, err = store.BestResults("classic", 0)
	require.NoError(t, err)
	assert.Len(t, best, 10)
}

func TestRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i, variant := range []string{"classic", "strict", "classic"} {
		_, err := store.SaveResult(Result{Variant: variant, MaxTile: 64, Moves: i})
		require.NoError(t, err)
	}

	all, err := store.RecentResults("", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 2, all[0].Moves, "newest first")

	classic, err := store.RecentResults("classic", 10)
	require.NoError(t, err)
	require.Len(t, classic, 2)
	assert.Equal(t, 2, classic[0].Moves)
	assert.Equal(t, 0, classic[1].Moves)
}

func TestBestTileAndClear(t *testing.T) {
	store := openTestStore(t)

	tile, err := store.BestTile("classic")
	require.NoError(t, err)
	assert.Equal(t, 0, tile)

	_, err = store.SaveResult(Result{Variant: "classic", MaxTile: 512, Moves: 300})
	require.NoError(t, err)
	_, err = store.SaveResult(Result{Variant: "strict", MaxTile: 128, Moves: 90})
	require.NoError(t, err)

	tile, err = store.BestTile("classic")
	require.NoError(t, err)
	assert.Equal(t, 512, tile)

	require.NoError(t, store.ClearResults("classic"))

	tile, err = store.BestTile("classic")
	require.NoError(t, err)
	assert.Equal(t, 0, tile)

	// Other variants are untouched.
	tile, err = store.BestTile("strict")
	require.NoError(t, err)
	assert.Equal(t, 128, tile)
}

func TestVariantStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.VariantStats("classic")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Games)
	assert.True(t, empty.LastPlayed.IsZero())

	for _, r := range []Result{
		{Variant: "classic", MaxTile: 128, Moves: 100},
		{Variant: "classic", MaxTile: 512, Moves: 300},
	} {
		_, err := store.SaveResult(r)
		require.NoError(t, err)
	}

	stats, err := store.VariantStats("classic")
	require.NoError(t, err)
	assert.Equal(t, "classic", stats.Variant)
	assert.Equal(t, 2, stats.Games)
	assert.Equal(t, 512, stats.BestTile)
	assert.Equal(t, 300, stats.MostMoves)
	assert.InDelta(t, 200.0, stats.AvgMoves, 0.001)
	assert.False(t, stats.LastPlayed.IsZero())
}
