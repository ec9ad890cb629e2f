package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
// Новые заказы попадают сюда только через транзакцию Ledger.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() *orderRepositoryInMemory {
	return &orderRepositoryInMemory{
		items: make(map[string]domain.Order),
	}
}

func (r *orderRepositoryInMemory) exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[id]
	return ok
}

func (r *orderRepositoryInMemory) insert(order domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[order.ID] = order.Clone()
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(_ context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order.Clone(), nil
}

// ListByUser возвращает заказы пользователя, ограничивая выборку limit (если >0).
func (r *orderRepositoryInMemory) ListByUser(_ context.Context, userID string, limit int) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range r.items {
		if order.UserID != userID {
			continue
		}
		result = append(result, order.Clone())
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].PurchasedAt.Equal(result[j].PurchasedAt) {
			return result[i].PurchasedAt.After(result[j].PurchasedAt)
		}
		return result[i].ID > result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

// checkVersion сверяет версию заказа с сохранённой (optimistic locking).
func (r *orderRepositoryInMemory) checkVersion(order domain.Order) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	current, ok := r.items[order.ID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if current.Version != order.Version {
		return domain.ErrOrderVersionConflict
	}
	return nil
}

// applyPayment переносит поля оплаты и поднимает версию. Позиции и сумма
// заказа не перезаписываются. Вызывается из Commit после checkVersion.
func (r *orderRepositoryInMemory) applyPayment(order domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.items[order.ID]
	current.PaymentState = order.PaymentState
	current.PaymentMethod = order.PaymentMethod
	current.BilledAt = order.BilledAt
	current.Version++
	r.items[order.ID] = current
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
