package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"milsabores/internal/domain"
)

const prefsDir = "prefs"

// PrefsFileStore persists preferences as one JSON object per space under
// <dir>/prefs/<space>.json.
type PrefsFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPrefsFileStore returns a PrefsFileStore rooted at dir.
func NewPrefsFileStore(dir string) *PrefsFileStore {
	return &PrefsFileStore{dir: filepath.Join(dir, prefsDir)}
}

// Get returns the value stored under key in space.
func (s *PrefsFileStore) Get(ctx context.Context, space, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	path, err := s.path(space)
	if err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	values := map[string]string{}
	if err := readJSON(path, &values); err != nil {
		return "", false, fmt.Errorf("read preferences %q: %w", space, err)
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key in space, overwriting any previous value.
func (s *PrefsFileStore) Set(ctx context.Context, space, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(space)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	values := map[string]string{}
	if err := readJSON(path, &values); err != nil {
		return fmt.Errorf("read preferences %q: %w", space, err)
	}
	values[key] = value
	return writeJSON(path, values, 0o600)
}

// Delete removes key from space.
func (s *PrefsFileStore) Delete(ctx context.Context, space, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(space)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	values := map[string]string{}
	if err := readJSON(path, &values); err != nil {
		return fmt.Errorf("read preferences %q: %w", space, err)
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return writeJSON(path, values, 0o600)
}

func (s *PrefsFileStore) path(space string) (string, error) {
	name, err := spaceFile(space)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// MemoryPrefs keeps preferences in process memory. Values are lost on exit.
type MemoryPrefs struct {
	mu     sync.RWMutex
	spaces map[string]map[string]string
}

// NewMemoryPrefs returns an empty MemoryPrefs.
func NewMemoryPrefs() *MemoryPrefs {
	return &MemoryPrefs{spaces: map[string]map[string]string{}}
}

func (m *MemoryPrefs) Get(ctx context.Context, space, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.spaces[space][key]
	return v, ok, nil
}

func (m *MemoryPrefs) Set(ctx context.Context, space, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	values, ok := m.spaces[space]
	if !ok {
		values = map[string]string{}
		m.spaces[space] = values
	}
	values[key] = value
	return nil
}

func (m *MemoryPrefs) Delete(ctx context.Context, space, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.spaces[space], key)
	return nil
}

// Compile-time assertions that both stores implement domain.Preferences.
var (
	_ domain.Preferences = (*PrefsFileStore)(nil)
	_ domain.Preferences = (*MemoryPrefs)(nil)
)
