package interfaces

import (
	"context"
	"io"

	domaintypes "milsabores/internal/domain/types"
)

// AuthService registers users, logs them in and out, and reports the session.
type AuthService interface {
	Register(ctx context.Context, user domaintypes.NewUser) (domaintypes.User, error)
	Login(ctx context.Context, email, password string) (domaintypes.User, error)
	Logout(ctx context.Context) error
	CurrentSessionEmail(ctx context.Context) (string, bool, error)
	CurrentUser(ctx context.Context) (domaintypes.User, bool, error)
	FindUserByEmail(ctx context.Context, email string) (domaintypes.User, bool)
}

// PhotoSource yields image bytes from a camera or gallery.
// It returns domain.ErrPhotoCancelled when the user backs out.
type PhotoSource interface {
	Open(ctx context.Context) (r io.ReadCloser, ext string, err error)
}

// ProfileService manages the profile photo of a user.
type ProfileService interface {
	SavePhotoForUser(
		ctx context.Context,
		username domaintypes.Username,
		locator domaintypes.PhotoLocator,
	) error
	LoadPhotoForUser(
		ctx context.Context,
		username domaintypes.Username,
	) (domaintypes.PhotoLocator, bool, error)
	ImportPhoto(
		ctx context.Context,
		username domaintypes.Username,
		src PhotoSource,
	) (domaintypes.PhotoResult, error)
}

// CartService edits the shopping cart of the logged-in user.
type CartService interface {
	Add(ctx context.Context, id domaintypes.ProductID) (domaintypes.CartState, error)
	Remove(ctx context.Context, id domaintypes.ProductID) (domaintypes.CartState, error)
	Clear(ctx context.Context) error
	State(ctx context.Context) (domaintypes.CartState, error)
	Watch(ctx context.Context) <-chan domaintypes.CartState
}
