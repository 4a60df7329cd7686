package store

import (
	"context"
	"fmt"
	"sync"

	"milsabores/internal/domain"
)

const (
	sessionSpace   = "session"
	currentUserKey = "current_user"
)

// SessionPrefStore persists the logged-in user's email in a preference slot
// and notifies in-process watchers of every change.
type SessionPrefStore struct {
	prefs domain.Preferences

	mu       sync.Mutex
	watchers map[chan domain.Session]struct{}
}

// NewSessionPrefStore returns a SessionPrefStore backed by prefs.
func NewSessionPrefStore(prefs domain.Preferences) *SessionPrefStore {
	return &SessionPrefStore{
		prefs:    prefs,
		watchers: make(map[chan domain.Session]struct{}),
	}
}

// SaveCurrentUser overwrites the marker with email.
func (s *SessionPrefStore) SaveCurrentUser(ctx context.Context, email string) error {
	if err := s.prefs.Set(ctx, sessionSpace, currentUserKey, email); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.publish(domain.Session{Email: email})
	return nil
}

// CurrentUser returns the logged-in email, if any.
func (s *SessionPrefStore) CurrentUser(ctx context.Context) (string, bool, error) {
	email, ok, err := s.prefs.Get(ctx, sessionSpace, currentUserKey)
	if err != nil {
		return "", false, fmt.Errorf("read session: %w", err)
	}
	if !ok || email == "" {
		return "", false, nil
	}
	return email, true, nil
}

// ClearCurrentUser removes the marker.
func (s *SessionPrefStore) ClearCurrentUser(ctx context.Context) error {
	if err := s.prefs.Delete(ctx, sessionSpace, currentUserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.publish(domain.Session{})
	return nil
}

// Watch emits the current session and then every change made through this
// store until ctx is done, when the channel is closed. A slow reader only
// ever sees the latest value.
func (s *SessionPrefStore) Watch(ctx context.Context) <-chan domain.Session {
	ch := make(chan domain.Session, 1)

	s.mu.Lock()
	s.watchers[ch] = struct{}{}
	email, _, _ := s.CurrentUser(ctx)
	offer(ch, domain.Session{Email: email})
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.watchers, ch)
		close(ch)
		s.mu.Unlock()
	}()
	return ch
}

func (s *SessionPrefStore) publish(v domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.watchers {
		offer(ch, v)
	}
}

// offer replaces any unread value in a one-slot channel with v.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

// Compile-time assertion that SessionPrefStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionPrefStore)(nil)
