package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"

	"milsabores/internal/domain"
)

// CatalogFileStore serves products decoded from a read-only JSON file,
// typically the bundled asset. The file is read once, on first use.
type CatalogFileStore struct {
	fsys fs.FS
	name string

	mu       sync.Mutex
	products []domain.Product
	loaded   bool
}

// NewCatalogFileStore returns a catalog reading name from fsys.
func NewCatalogFileStore(fsys fs.FS, name string) *CatalogFileStore {
	return &CatalogFileStore{fsys: fsys, name: name}
}

// Products returns the whole catalog in file order.
func (s *CatalogFileStore) Products(ctx context.Context) ([]domain.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]domain.Product(nil), products...), nil
}

// Product looks up a single product by id.
func (s *CatalogFileStore) Product(
	ctx context.Context,
	id domain.ProductID,
) (domain.Product, bool, error) {
	products, err := s.load(ctx)
	if err != nil {
		return domain.Product{}, false, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return domain.Product{}, false, nil
}

func (s *CatalogFileStore) load(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.products, nil
	}
	b, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	s.products = products
	s.loaded = true
	return s.products, nil
}

// Compile-time assertion that CatalogFileStore implements domain.CatalogStore.
var _ domain.CatalogStore = (*CatalogFileStore)(nil)
