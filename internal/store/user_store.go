package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"milsabores/internal/domain"
	"milsabores/internal/logging"
)

const (
	usersDir  = "database"
	usersFile = "Usuarios.json"
)

// UserFileStore persists registered users as one JSON array on disk.
//
// Reads are fail-soft: a missing, unreadable or malformed file is treated as
// an empty collection and the cause is logged. A write after such a read
// replaces the bad file.
type UserFileStore struct {
	path     string
	seed     fs.FS
	seedName string
	log      logging.Logger
	mu       sync.Mutex
}

// UserStoreOption configures a UserFileStore.
type UserStoreOption func(*UserFileStore)

// WithSeed makes Initialize copy name from fsys when the users file is absent.
func WithSeed(fsys fs.FS, name string) UserStoreOption {
	return func(s *UserFileStore) {
		s.seed = fsys
		s.seedName = name
	}
}

// WithUsersPath overrides the default <dir>/database/Usuarios.json location.
func WithUsersPath(path string) UserStoreOption {
	return func(s *UserFileStore) { s.path = path }
}

// NewUserFileStore returns a UserFileStore rooted at dir.
func NewUserFileStore(dir string, log logging.Logger, opts ...UserStoreOption) *UserFileStore {
	s := &UserFileStore{
		path: filepath.Join(dir, usersDir, usersFile),
		log:  log.With("component", "user_store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the location of the users file.
func (s *UserFileStore) Path() string { return s.path }

// Initialize creates the users file if it does not exist, copying the seed
// verbatim when one is configured and readable, otherwise writing an empty
// array. It is a no-op once the file exists.
func (s *UserFileStore) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat users file: %w", err)
	}

	if s.seed != nil {
		b, err := fs.ReadFile(s.seed, s.seedName)
		if err == nil {
			if err = writeFile(s.path, b, 0o600); err == nil {
				s.log.Info(ctx, "users file seeded", "path", s.path, "seed", s.seedName)
				return nil
			}
		}
		s.log.Warn(ctx, "users seed unavailable, starting empty", "seed", s.seedName, "error", err)
	}

	if err := writeFile(s.path, []byte("[]"), 0o600); err != nil {
		return fmt.Errorf("create users file: %w", err)
	}
	return nil
}

// Create appends a new user with the next id and the default role.
// It returns domain.ErrEmailTaken, without writing, when the email is
// already registered under a case-insensitive comparison.
func (s *UserFileStore) Create(ctx context.Context, nu domain.NewUser) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers(ctx)
	if _, ok := findByEmail(users, nu.Email); ok {
		return domain.User{}, domain.ErrEmailTaken
	}

	user := domain.User{
		ID:        nextID(users),
		FirstName: nu.FirstName,
		LastName:  nu.LastName,
		Email:     nu.Email,
		Password:  nu.Password,
		Role:      domain.DefaultRole,
	}
	users = append(users, user)
	if err := writeJSON(s.path, users, 0o600); err != nil {
		return domain.User{}, fmt.Errorf("write users: %w", err)
	}
	return user, nil
}

// FindByEmail looks a user up by email, ignoring case.
func (s *UserFileStore) FindByEmail(ctx context.Context, email string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return findByEmail(s.loadUsers(ctx), email)
}

// FindByCredentials returns the user whose email matches ignoring case and
// whose password matches exactly.
func (s *UserFileStore) FindByCredentials(
	ctx context.Context,
	email string,
	password string,
) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.loadUsers(ctx) {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			return u, true
		}
	}
	return domain.User{}, false
}

// List returns every stored user in file order.
func (s *UserFileStore) List(ctx context.Context) []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadUsers(ctx)
}

// loadUsers collapses a failed read into an empty collection.
func (s *UserFileStore) loadUsers(ctx context.Context) []domain.User {
	users, err := readUsers(s.path)
	if err != nil {
		s.log.Warn(ctx, "users file unreadable, treating as empty", "path", s.path, "error", err)
		return nil
	}
	return users
}

// userRecord decodes a stored user, telling a missing role apart from an
// empty one.
type userRecord struct {
	domain.User
	Role *string `json:"role"`
}

// readUsers defaults the role only when the key is absent, so records
// written back are otherwise unchanged.
func readUsers(path string) ([]domain.User, error) {
	var records []userRecord
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, nil
	}
	users := make([]domain.User, len(records))
	for i, r := range records {
		users[i] = r.User
		users[i].Role = domain.DefaultRole
		if r.Role != nil {
			users[i].Role = *r.Role
		}
	}
	return users, nil
}

func findByEmail(users []domain.User, email string) (domain.User, bool) {
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return domain.User{}, false
}

// nextID is max(ids)+1, or 1 for an empty collection.
func nextID(users []domain.User) int {
	maxID := 0
	for _, u := range users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}

// Compile-time assertion that UserFileStore implements domain.UserStore.
var _ domain.UserStore = (*UserFileStore)(nil)
