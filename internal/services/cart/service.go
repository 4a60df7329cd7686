package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"milsabores/internal/domain"
	"milsabores/internal/logging"
)

// Service edits the cart of whoever the session says is logged in.
type Service struct {
	catalog  domain.CatalogStore
	carts    domain.CartStore
	sessions domain.SessionStore
	log      logging.Logger

	// mu serialises cart read-modify-write cycles.
	mu sync.Mutex

	wmu      sync.Mutex
	watchers map[chan domain.CartState]struct{}
}

// New returns a cart service.
func New(
	catalog domain.CatalogStore,
	carts domain.CartStore,
	sessions domain.SessionStore,
	log logging.Logger,
) *Service {
	return &Service{
		catalog:  catalog,
		carts:    carts,
		sessions: sessions,
		log:      log.With("component", "cart"),
		watchers: make(map[chan domain.CartState]struct{}),
	}
}

// Add puts one more unit of the product in the cart.
func (s *Service) Add(ctx context.Context, id domain.ProductID) (domain.CartState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.user(ctx)
	if err != nil {
		return domain.CartState{}, err
	}
	if _, ok, err := s.catalog.Product(ctx, id); err != nil {
		return domain.CartState{}, err
	} else if !ok {
		return domain.CartState{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}

	lines, err := s.carts.LoadCart(ctx, user)
	if err != nil {
		return domain.CartState{}, err
	}
	found := false
	for i := range lines {
		if lines[i].ProductID == id {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, domain.CartLine{ProductID: id, Quantity: 1})
	}
	return s.save(ctx, user, lines)
}

// Remove takes one unit of the product out of the cart, dropping the line
// when it reaches zero. Removing a product that is not in the cart is a no-op.
func (s *Service) Remove(ctx context.Context, id domain.ProductID) (domain.CartState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.user(ctx)
	if err != nil {
		return domain.CartState{}, err
	}
	lines, err := s.carts.LoadCart(ctx, user)
	if err != nil {
		return domain.CartState{}, err
	}
	for i := range lines {
		if lines[i].ProductID != id {
			continue
		}
		lines[i].Quantity--
		if lines[i].Quantity <= 0 {
			lines = append(lines[:i], lines[i+1:]...)
		}
		return s.save(ctx, user, lines)
	}
	return s.resolve(ctx, lines)
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.user(ctx)
	if err != nil {
		return err
	}
	_, err = s.save(ctx, user, nil)
	return err
}

// State returns the current cart. Without a session the cart is empty.
func (s *Service) State(ctx context.Context) (domain.CartState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.user(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotLoggedIn) {
			return domain.CartState{}, nil
		}
		return domain.CartState{}, err
	}
	lines, err := s.carts.LoadCart(ctx, user)
	if err != nil {
		return domain.CartState{}, err
	}
	return s.resolve(ctx, lines)
}

// Watch emits the current cart and every change made through this service
// until ctx is done, when the channel is closed.
func (s *Service) Watch(ctx context.Context) <-chan domain.CartState {
	ch := make(chan domain.CartState, 1)
	state, err := s.State(ctx)
	if err != nil {
		s.log.Warn(ctx, "cart state unavailable for watcher", "error", err)
	}

	s.wmu.Lock()
	s.watchers[ch] = struct{}{}
	ch <- state
	s.wmu.Unlock()

	go func() {
		<-ctx.Done()
		s.wmu.Lock()
		delete(s.watchers, ch)
		close(ch)
		s.wmu.Unlock()
	}()
	return ch
}

func (s *Service) save(
	ctx context.Context,
	user domain.Username,
	lines []domain.CartLine,
) (domain.CartState, error) {
	if err := s.carts.SaveCart(ctx, user, lines); err != nil {
		return domain.CartState{}, err
	}
	state, err := s.resolve(ctx, lines)
	if err != nil {
		return domain.CartState{}, err
	}
	s.publish(state)
	return state, nil
}

// resolve joins lines with the catalog; lines for withdrawn products are skipped.
func (s *Service) resolve(ctx context.Context, lines []domain.CartLine) (domain.CartState, error) {
	var state domain.CartState
	for _, l := range lines {
		p, ok, err := s.catalog.Product(ctx, l.ProductID)
		if err != nil {
			return domain.CartState{}, err
		}
		if !ok {
			s.log.Warn(ctx, "cart references unknown product", "product", l.ProductID)
			continue
		}
		item := domain.CartItem{Product: p, Quantity: l.Quantity}
		state.Items = append(state.Items, item)
		state.Total += item.Subtotal()
	}
	return state, nil
}

func (s *Service) user(ctx context.Context) (domain.Username, error) {
	email, ok, err := s.sessions.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrNotLoggedIn
	}
	return domain.Username(email), nil
}

func (s *Service) publish(state domain.CartState) {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	for ch := range s.watchers {
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}

// Compile-time assertion that Service implements domain.CartService.
var _ domain.CartService = (*Service)(nil)
