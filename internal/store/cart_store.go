package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"milsabores/internal/domain"
)

const cartsFilename = "carts.json"

// CartFileStore persists per-user cart lines to disk.
type CartFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewCartFileStore returns a CartFileStore rooted at dir.
func NewCartFileStore(dir string) *CartFileStore {
	return &CartFileStore{dir: dir}
}

// SaveCart replaces username's cart. An empty cart removes the entry.
func (s *CartFileStore) SaveCart(
	ctx context.Context,
	username domain.Username,
	lines []domain.CartLine,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, cartsFilename)
	carts := map[domain.Username][]domain.CartLine{}
	if err := readJSON(path, &carts); err != nil {
		return fmt.Errorf("read carts: %w", err)
	}
	if len(lines) == 0 {
		delete(carts, username)
	} else {
		carts[username] = lines
	}
	if err := writeJSON(path, carts, 0o600); err != nil {
		return fmt.Errorf("write carts: %w", err)
	}
	return nil
}

// LoadCart returns username's cart lines; a user without a cart gets nil.
func (s *CartFileStore) LoadCart(
	ctx context.Context,
	username domain.Username,
) ([]domain.CartLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, cartsFilename)
	carts := map[domain.Username][]domain.CartLine{}
	if err := readJSON(path, &carts); err != nil {
		return nil, fmt.Errorf("read carts: %w", err)
	}
	return carts[username], nil
}

// Compile-time assertion that CartFileStore implements domain.CartStore.
var _ domain.CartStore = (*CartFileStore)(nil)
