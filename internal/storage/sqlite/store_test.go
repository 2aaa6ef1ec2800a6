package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graretg02/Superbowl-app2/internal/model"
)

func openTempStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "squares.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestSetAndGet(t *testing.T) {
	store, _ := openTempStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "squares_current_view", "settings"))

	value, err := store.Get(ctx, "squares_current_view")
	require.NoError(t, err)
	assert.Equal(t, "settings", value)
}

func TestSetOverwrites(t *testing.T) {
	store, _ := openTempStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "squares_active_player", "a"))
	require.NoError(t, store.Set(ctx, "squares_active_player", "b"))

	value, err := store.Get(ctx, "squares_active_player")
	require.NoError(t, err)
	assert.Equal(t, "b", value)
}

func TestGetNotFound(t *testing.T) {
	store, _ := openTempStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrKeyNotFound)
}

func TestDelete(t *testing.T) {
	store, _ := openTempStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "squares_active_player", "a"))
	require.NoError(t, store.Delete(ctx, "squares_active_player"))
	require.NoError(t, store.Delete(ctx, "squares_active_player"))

	_, err := store.Get(ctx, "squares_active_player")
	assert.ErrorIs(t, err, model.ErrKeyNotFound)
}

func TestValuesSurviveReopen(t *testing.T) {
	store, path := openTempStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "superbowl_squares_state_v3", `{"team1":"KC Chiefs"}`))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	value, err := reopened.Get(ctx, "superbowl_squares_state_v3")
	require.NoError(t, err)
	assert.Equal(t, `{"team1":"KC Chiefs"}`, value)
}

func TestCancelledContext(t *testing.T) {
	store, _ := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Set(ctx, "k", "v"), context.Canceled)
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
