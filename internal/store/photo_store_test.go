package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milsabores/internal/domain"
	"milsabores/internal/store"
)

func TestPhotoStore_PerUser(t *testing.T) {
	ctx := context.Background()
	prefs := store.NewMemoryPrefs()
	s := store.NewPhotoPrefStore(prefs)

	_, ok, err := s.LoadPhoto(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SavePhoto(ctx, "ana@x.com", "file:///photos/a.jpg"))
	require.NoError(t, s.SavePhoto(ctx, "juan@mail.com", "file:///photos/j.jpg"))
	require.NoError(t, s.SavePhoto(ctx, "ana@x.com", "file:///photos/a2.jpg"))

	got, ok, err := s.LoadPhoto(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.PhotoLocator("file:///photos/a2.jpg"), got)

	raw, ok, err := prefs.Get(ctx, "perfil_photos", "photo_juan@mail.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "file:///photos/j.jpg", raw)
}
