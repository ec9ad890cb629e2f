package memory

// Store собирает все in-memory репозитории, связанные общей транзакцией Ledger.
type Store struct {
	Ledger      *Ledger
	Orders      *orderRepositoryInMemory
	Outbox      *outboxRepositoryInMemory
	Timeline    *timelineRepositoryInMemory
	Idempotency *idempotencyRepositoryInMemory
	Carts       *cartStoreInMemory
}

// NewStore создаёт пустое in-memory хранилище.
func NewStore() *Store {
	orders := NewOrderRepository()
	outbox := NewOutboxRepository()
	timeline := NewTimelineRepository()
	return &Store{
		Ledger:      NewLedger(orders, outbox, timeline),
		Orders:      orders,
		Outbox:      outbox,
		Timeline:    timeline,
		Idempotency: NewIdempotencyRepository(),
		Carts:       NewCartStore(),
	}
}
