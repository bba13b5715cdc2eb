package shortcuts

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAndLookup(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "shortcuts.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("btw", "by the way"))

	expansion, ok := store.Lookup("btw")
	require.True(t, ok)
	require.Equal(t, "by the way", expansion)
}

func TestRemove(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "shortcuts.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("omw", "on my way"))
	require.NoError(t, store.Remove("omw"))

	_, ok := store.Lookup("omw")
	require.False(t, ok)
}

func TestPrefixSearch(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "shortcuts.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("ko", "không"))
	require.NoError(t, store.Set("kok", "không không"))

	matches := store.PrefixSearch("ko")
	require.ElementsMatch(t, []string{"ko", "kok"}, matches)
}
