package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/lotcheckout/internal/allocation"
	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
)

// Ledger хранит in-memory склад лотов и каталог. Транзакции checkout копят изменения
// локально и применяют их под одной блокировкой в Commit.
type Ledger struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	lots     map[string]domain.Lot
	// byProduct хранит идентификаторы лотов продукта.
	byProduct map[string][]string

	orders   *orderRepositoryInMemory
	outbox   *outboxRepositoryInMemory
	timeline *timelineRepositoryInMemory
}

// NewLedger создаёт склад, который пишет заказы, outbox и timeline в переданные репозитории.
func NewLedger(orders *orderRepositoryInMemory, outbox *outboxRepositoryInMemory, timeline *timelineRepositoryInMemory) *Ledger {
	return &Ledger{
		products:  make(map[string]domain.Product),
		lots:      make(map[string]domain.Lot),
		byProduct: make(map[string][]string),
		orders:    orders,
		outbox:    outbox,
		timeline:  timeline,
	}
}

// AddProduct регистрирует продукт и его лоты (локальная разработка, сиды и тесты).
// Пустой ID лота заменяется на UUID.
func (l *Ledger) AddProduct(product domain.Product, lots ...domain.Lot) error {
	if err := product.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.products[product.Name] = product
	for _, lot := range lots {
		if lot.ID == "" {
			lot.ID = uuid.NewString()
		}
		lot.ProductName = product.Name
		if err := lot.Validate(); err != nil {
			return err
		}
		if _, exists := l.lots[lot.ID]; exists {
			return fmt.Errorf("%w: duplicate lot id %s", domain.ErrValidation, lot.ID)
		}
		l.lots[lot.ID] = lot
		l.byProduct[product.Name] = append(l.byProduct[product.Name], lot.ID)
	}
	return nil
}

// Begin открывает транзакцию.
func (l *Ledger) Begin(ctx context.Context) (domain.LedgerTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &ledgerTx{
		ledger:   l,
		observed: make(map[string]domain.Lot),
		pending:  make(map[string]int32),
	}, nil
}

// GetProduct возвращает продукт каталога.
func (l *Ledger) GetProduct(_ context.Context, name string) (domain.Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	product, ok := l.products[name]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

// ListProducts возвращает продукты по имени вместе с суммой остатков лотов.
func (l *Ledger) ListProducts(_ context.Context, offset, limit int) ([]domain.ProductStock, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.products))
	for name := range l.products {
		names = append(names, name)
	}
	sort.Strings(names)

	if offset < 0 {
		offset = 0
	}
	if offset >= len(names) {
		return []domain.ProductStock{}, nil
	}
	names = names[offset:]
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	result := make([]domain.ProductStock, 0, len(names))
	for _, name := range names {
		result = append(result, domain.ProductStock{
			Product:   l.products[name],
			Available: domain.TotalQty(l.lotsLocked(name)),
		})
	}
	return result, nil
}

// ListLots возвращает снимок лотов продукта в порядке расхода.
func (l *Ledger) ListLots(_ context.Context, productName string) ([]domain.Lot, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, ok := l.products[productName]; !ok {
		return nil, domain.ErrProductNotFound
	}
	return allocation.SortFEFO(l.lotsLocked(productName)), nil
}

func (l *Ledger) lotsLocked(productName string) []domain.Lot {
	ids := l.byProduct[productName]
	out := make([]domain.Lot, 0, len(ids))
	for _, id := range ids {
		out = append(out, l.lots[id])
	}
	return out
}

var (
	_ domain.UnitOfWork        = (*Ledger)(nil)
	_ domain.CatalogRepository = (*Ledger)(nil)
)
