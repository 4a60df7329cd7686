package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"milsabores/assets"
	"milsabores/internal/domain"
	"milsabores/internal/logging"
	"milsabores/internal/services/auth"
	"milsabores/internal/services/cart"
	"milsabores/internal/services/profile"
	"milsabores/internal/store"
	"milsabores/internal/store/sqlite"
)

const (
	prefsDBFile = "prefs.db"
	photosDir   = "photos"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Config   Config
	Log      logging.Logger
	Users    domain.UserStore
	Sessions domain.SessionStore
	Catalog  domain.CatalogStore
	Auth     domain.AuthService
	Profile  domain.ProfileService
	Cart     domain.CartService

	closers []func() error
}

// NewWire constructs the dependency graph from cfg and prepares the users file.
func NewWire(ctx context.Context, cfg Config, log logging.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home: %w", err)
	}
	w := &Wire{Config: cfg, Log: log}

	prefs, err := w.openPrefs(ctx)
	if err != nil {
		return nil, err
	}

	// File-based stores
	userOpts := []store.UserStoreOption{store.WithSeed(assets.FS, assets.UsersSeed)}
	if cfg.UsersFile != "" {
		userOpts = append(userOpts, store.WithUsersPath(cfg.UsersFile))
	}
	users := store.NewUserFileStore(cfg.Home, log, userOpts...)
	if err := users.Initialize(ctx); err != nil {
		// Reads fall back to an empty collection, so the app stays usable.
		log.Warn(ctx, "users file not initialised", "error", err)
	}
	sessions := store.NewSessionPrefStore(prefs)
	photos := store.NewPhotoPrefStore(prefs)
	catalog := store.NewCatalogFileStore(assets.FS, assets.Products)
	carts := store.NewCartFileStore(cfg.Home)

	// High-level services
	w.Users = users
	w.Sessions = sessions
	w.Catalog = catalog
	w.Auth = auth.New(users, sessions, log)
	w.Profile = profile.New(photos, filepath.Join(cfg.Home, photosDir), log)
	w.Cart = cart.New(catalog, carts, sessions, log)
	return w, nil
}

func (w *Wire) openPrefs(ctx context.Context) (domain.Preferences, error) {
	switch w.Config.PrefsBackend {
	case PrefsSQLite:
		p, err := sqlite.Open(ctx, filepath.Join(w.Config.Home, prefsDBFile))
		if err != nil {
			return nil, err
		}
		w.closers = append(w.closers, p.Close)
		return p, nil
	case PrefsMemory:
		return store.NewMemoryPrefs(), nil
	default:
		return store.NewPrefsFileStore(w.Config.Home), nil
	}
}

// Close releases resources held by the stores.
func (w *Wire) Close() error {
	var first error
	for _, c := range w.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	w.closers = nil
	return first
}
