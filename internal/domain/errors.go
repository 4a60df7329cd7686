package domain

import "errors"

var (
	// ErrEmailTaken is returned by registration when the email already exists
	// under a case-insensitive comparison.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotLoggedIn is returned by operations that need a session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrProductNotFound is returned for ids missing from the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrPhotoCancelled is returned by a PhotoSource when the user backs out.
	ErrPhotoCancelled = errors.New("photo cancelled")
)
