package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milsabores/internal/domain"
	"milsabores/internal/store"
	"milsabores/internal/store/sqlite"
)

func prefsBackends(t *testing.T) map[string]domain.Preferences {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return map[string]domain.Preferences{
		"file":   store.NewPrefsFileStore(t.TempDir()),
		"memory": store.NewMemoryPrefs(),
		"sqlite": db,
	}
}

func TestPreferences_Contract(t *testing.T) {
	for name, prefs := range prefsBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := prefs.Get(ctx, "space", "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, prefs.Set(ctx, "space", "k", "old"))
			require.NoError(t, prefs.Set(ctx, "space", "k", "new"))
			v, ok, err := prefs.Get(ctx, "space", "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "new", v)

			// spaces are independent
			_, ok, err = prefs.Get(ctx, "other", "k")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, prefs.Delete(ctx, "space", "k"))
			_, ok, err = prefs.Get(ctx, "space", "k")
			require.NoError(t, err)
			assert.False(t, ok)

			// deleting again is fine
			require.NoError(t, prefs.Delete(ctx, "space", "k"))
		})
	}
}

func TestPrefsFileStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, store.NewPrefsFileStore(dir).Set(ctx, "session", "current_user", "ana@x.com"))

	v, ok, err := store.NewPrefsFileStore(dir).Get(ctx, "session", "current_user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ana@x.com", v)
	assert.FileExists(t, filepath.Join(dir, "prefs", "session.json"))
}

func TestPrefsFileStore_RejectsUnsafeSpace(t *testing.T) {
	ctx := context.Background()
	prefs := store.NewPrefsFileStore(t.TempDir())

	for _, space := range []string{"", "..", "../etc", `a\b`} {
		require.Error(t, prefs.Set(ctx, space, "k", "v"), "space %q", space)
	}
}

func TestPrefsFileStore_CorruptSpaceIsReported(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs", "session.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	_, _, err := store.NewPrefsFileStore(dir).Get(ctx, "session", "current_user")
	require.Error(t, err)
}

func TestPrefsFileStore_CorruptSpaceIsNotOverwritten(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs", "perfil_photos.json")
	corrupt := `{"photo_a@x.com":"file:///a.jpg", broken`
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(corrupt), 0o600))

	prefs := store.NewPrefsFileStore(dir)
	require.Error(t, prefs.Set(ctx, "perfil_photos", "photo_b@x.com", "file:///b.jpg"))
	require.Error(t, prefs.Delete(ctx, "perfil_photos", "photo_a@x.com"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, corrupt, string(raw))
}

func TestMemoryPrefs_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prefs := store.NewMemoryPrefs()
	require.ErrorIs(t, prefs.Set(ctx, "s", "k", "v"), context.Canceled)
	_, _, err := prefs.Get(ctx, "s", "k")
	require.ErrorIs(t, err, context.Canceled)
}
