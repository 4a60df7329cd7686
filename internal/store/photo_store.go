package store

import (
	"context"
	"fmt"

	"milsabores/internal/domain"
)

const (
	photoSpace     = "perfil_photos"
	photoKeyPrefix = "photo_"
)

// PhotoPrefStore persists one profile photo locator per user.
type PhotoPrefStore struct {
	prefs domain.Preferences
}

// NewPhotoPrefStore returns a PhotoPrefStore backed by prefs.
func NewPhotoPrefStore(prefs domain.Preferences) *PhotoPrefStore {
	return &PhotoPrefStore{prefs: prefs}
}

// SavePhoto records locator as username's current photo.
func (s *PhotoPrefStore) SavePhoto(
	ctx context.Context,
	username domain.Username,
	locator domain.PhotoLocator,
) error {
	if err := s.prefs.Set(ctx, photoSpace, photoKey(username), locator.String()); err != nil {
		return fmt.Errorf("save photo for %s: %w", username, err)
	}
	return nil
}

// LoadPhoto returns username's photo locator, if one was saved.
func (s *PhotoPrefStore) LoadPhoto(
	ctx context.Context,
	username domain.Username,
) (domain.PhotoLocator, bool, error) {
	v, ok, err := s.prefs.Get(ctx, photoSpace, photoKey(username))
	if err != nil {
		return "", false, fmt.Errorf("load photo for %s: %w", username, err)
	}
	return domain.PhotoLocator(v), ok, nil
}

func photoKey(username domain.Username) string {
	return photoKeyPrefix + username.String()
}

// Compile-time assertion that PhotoPrefStore implements domain.PhotoStore.
var _ domain.PhotoStore = (*PhotoPrefStore)(nil)
