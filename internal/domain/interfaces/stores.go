package interfaces

import (
	"context"

	domaintypes "milsabores/internal/domain/types"
)

// UserStore owns the collection of registered users.
type UserStore interface {
	Initialize(ctx context.Context) error
	Create(ctx context.Context, user domaintypes.NewUser) (domaintypes.User, error)
	FindByEmail(ctx context.Context, email string) (domaintypes.User, bool)
	FindByCredentials(
		ctx context.Context,
		email string,
		password string,
	) (domaintypes.User, bool)
	List(ctx context.Context) []domaintypes.User
}

// Preferences is a persistent key-value store of strings split into named spaces.
// Get reports ok=false for a missing key; Delete of a missing key is not an error.
type Preferences interface {
	Get(ctx context.Context, space, key string) (value string, ok bool, err error)
	Set(ctx context.Context, space, key, value string) error
	Delete(ctx context.Context, space, key string) error
}

// SessionStore persists which user is logged in.
type SessionStore interface {
	SaveCurrentUser(ctx context.Context, email string) error
	CurrentUser(ctx context.Context) (string, bool, error)
	ClearCurrentUser(ctx context.Context) error
	Watch(ctx context.Context) <-chan domaintypes.Session
}

// PhotoStore persists one photo locator per user.
type PhotoStore interface {
	SavePhoto(
		ctx context.Context,
		username domaintypes.Username,
		locator domaintypes.PhotoLocator,
	) error
	LoadPhoto(
		ctx context.Context,
		username domaintypes.Username,
	) (domaintypes.PhotoLocator, bool, error)
}

// CatalogStore serves the read-only product catalog.
type CatalogStore interface {
	Products(ctx context.Context) ([]domaintypes.Product, error)
	Product(ctx context.Context, id domaintypes.ProductID) (domaintypes.Product, bool, error)
}

// CartStore persists cart lines per user.
type CartStore interface {
	SaveCart(ctx context.Context, username domaintypes.Username, lines []domaintypes.CartLine) error
	LoadCart(ctx context.Context, username domaintypes.Username) ([]domaintypes.CartLine, error)
}
