package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
)

// cartStoreInMemory держит корзины в памяти процесса; используется, когда Redis не настроен.
type cartStoreInMemory struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

// NewCartStore создаёт in-memory реализацию CartStore.
func NewCartStore() *cartStoreInMemory {
	return &cartStoreInMemory{carts: make(map[string]domain.Cart)}
}

func (s *cartStoreInMemory) Get(_ context.Context, userID string) (domain.Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Cart{}, domain.ErrUserRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[userID]
	if !ok {
		return domain.Cart{UserID: userID}, nil
	}
	return cart.Clone(), nil
}

func (s *cartStoreInMemory) Save(_ context.Context, cart domain.Cart) error {
	if strings.TrimSpace(cart.UserID) == "" {
		return domain.ErrUserRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(cart.Items) == 0 {
		delete(s.carts, cart.UserID)
		return nil
	}
	s.carts[cart.UserID] = cart.Clone()
	return nil
}

func (s *cartStoreInMemory) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}

var _ domain.CartStore = (*cartStoreInMemory)(nil)
