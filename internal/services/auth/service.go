package auth

import (
	"context"
	"fmt"

	"milsabores/internal/domain"
	"milsabores/internal/logging"
)

// Service ties the user collection to the session marker.
type Service struct {
	users    domain.UserStore
	sessions domain.SessionStore
	log      logging.Logger
}

// New returns an auth service over the given stores.
func New(users domain.UserStore, sessions domain.SessionStore, log logging.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		log:      log.With("component", "auth"),
	}
}

// Register creates the account and logs it in.
//
// It returns domain.ErrEmailTaken when the email exists under any letter case;
// in that case nothing is written and the session is left alone.
func (s *Service) Register(ctx context.Context, nu domain.NewUser) (domain.User, error) {
	user, err := s.users.Create(ctx, nu)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.sessions.SaveCurrentUser(ctx, user.Email); err != nil {
		return domain.User{}, fmt.Errorf("register %s: %w", user.Email, err)
	}
	s.log.Info(ctx, "user registered", "id", user.ID, "email", user.Email)
	return user, nil
}

// Login checks the credentials and, on success, makes the user current.
// A failed login leaves the session unchanged.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, ok := s.users.FindByCredentials(ctx, email, password)
	if !ok {
		s.log.Debug(ctx, "login rejected", "email", email)
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if err := s.sessions.SaveCurrentUser(ctx, user.Email); err != nil {
		return domain.User{}, fmt.Errorf("login %s: %w", user.Email, err)
	}
	s.log.Info(ctx, "user logged in", "id", user.ID)
	return user, nil
}

// Logout clears the session marker.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.ClearCurrentUser(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "user logged out")
	return nil
}

// CurrentSessionEmail returns the email recorded by the last login or
// registration, if nobody has logged out since.
func (s *Service) CurrentSessionEmail(ctx context.Context) (string, bool, error) {
	return s.sessions.CurrentUser(ctx)
}

// CurrentUser resolves the session marker to a user record. A marker whose
// user no longer resolves reports ok=false.
func (s *Service) CurrentUser(ctx context.Context) (domain.User, bool, error) {
	email, ok, err := s.sessions.CurrentUser(ctx)
	if err != nil || !ok {
		return domain.User{}, false, err
	}
	user, ok := s.users.FindByEmail(ctx, email)
	return user, ok, nil
}

// FindUserByEmail looks a user up ignoring case.
func (s *Service) FindUserByEmail(ctx context.Context, email string) (domain.User, bool) {
	return s.users.FindByEmail(ctx, email)
}

// Compile-time assertion that Service implements domain.AuthService.
var _ domain.AuthService = (*Service)(nil)
