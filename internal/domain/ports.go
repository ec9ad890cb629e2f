package domain

import (
	"context"
	"time"
)

// UnitOfWork открывает транзакцию над складом лотов и журналом заказов.
type UnitOfWork interface {
	Begin(ctx context.Context) (LedgerTx, error)
}

// LedgerTx задаёт явную границу транзакции: чтения, условные списания,
// запись заказа или его оплаты и outbox-события фиксируются вместе или не
// фиксируются вовсе.
type LedgerTx interface {
	// LotsForProduct возвращает лоты продукта (ErrProductNotFound, если продукта нет).
	LotsForProduct(ctx context.Context, productName string) ([]Lot, error)
	// DecrementLot списывает d.Qty, только если остаток лота всё ещё равен d.ObservedQty.
	// Иначе возвращает ErrConcurrentModification.
	DecrementLot(ctx context.Context, d Deduction) error
	// CreateOrder записывает заказ вместе с позициями.
	CreateOrder(ctx context.Context, order Order) error
	// SavePayment обновляет поля оплаты заказа, если его Version не изменилась.
	// Иначе ErrOrderVersionConflict (или ErrOrderNotFound).
	SavePayment(ctx context.Context, order Order) error
	// EnqueueOutbox кладёт событие в outbox в той же транзакции.
	EnqueueOutbox(ctx context.Context, msg OutboxMessage) error
	// AppendTimeline добавляет событие в историю заказа.
	AppendTimeline(ctx context.Context, event TimelineEvent) error
	Commit() error
	Rollback() error
}

// CatalogRepository читает каталог и остатки.
type CatalogRepository interface {
	GetProduct(ctx context.Context, name string) (Product, error)
	// ListProducts возвращает продукты по имени вместе с суммарным остатком.
	ListProducts(ctx context.Context, offset, limit int) ([]ProductStock, error)
	// ListLots возвращает снимок лотов продукта вне транзакции.
	ListLots(ctx context.Context, productName string) ([]Lot, error)
}

// CartStore — кеш корзин, ключ cart:<userId>.
type CartStore interface {
	// Get возвращает корзину пользователя; без записи возвращается пустая корзина.
	Get(ctx context.Context, userID string) (Cart, error)
	Save(ctx context.Context, cart Cart) error
	Delete(ctx context.Context, userID string) error
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(event OutboxMessage) error
}

// OutboxRepository позволяет сохранять события для последующей публикации.
type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) (OutboxMessage, error)
	PullPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	Stats(ctx context.Context) (OutboxStats, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

// TimelineRepository хранит события жизненного цикла заказа.
type TimelineRepository interface {
	Append(ctx context.Context, event TimelineEvent) error
	List(ctx context.Context, orderID string) ([]TimelineEvent, error)
}

// IdempotencyRepository хранит состояние обработки запросов по idempotency-key.
type IdempotencyRepository interface {
	CreateProcessing(ctx context.Context, key, requestHash string, ttlAt time.Time) (IdempotencyRecord, error)
	Get(ctx context.Context, key string) (IdempotencyRecord, error)
	MarkDone(ctx context.Context, key string, responseBody []byte, status int) error
	MarkFailed(ctx context.Context, key string, responseBody []byte, status int) error
	// Release освобождает ключ, который всё ещё в статусе processing, чтобы
	// повтор с тем же ключом снова выполнил запрос. Отсутствие ключа не ошибка.
	Release(ctx context.Context, key string) error
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error)
}

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	CreatedAt     time.Time
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}
