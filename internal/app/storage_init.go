package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/lotcheckout/internal/health"
	"github.com/vladislavdragonenkov/lotcheckout/internal/storage/memory"
	"github.com/vladislavdragonenkov/lotcheckout/internal/storage/postgres"
	"github.com/vladislavdragonenkov/lotcheckout/internal/storage/redisx"
)

// inventoryStore объединяет склад, который умеет транзакции checkout, чтение каталога
// и загрузку сидов.
type inventoryStore interface {
	domain.UnitOfWork
	domain.CatalogRepository
	AddProduct(ctx context.Context, product domain.Product, lots ...domain.Lot) error
}

// memoryInventory приводит in-memory Ledger к inventoryStore.
type memoryInventory struct {
	*memory.Ledger
}

func (m memoryInventory) AddProduct(_ context.Context, product domain.Product, lots ...domain.Lot) error {
	return m.Ledger.AddProduct(product, lots...)
}

// runtimeDependencies — хранилища и проверки здоровья, выбранные конфигурацией.
type runtimeDependencies struct {
	Inventory   inventoryStore
	Orders      domain.OrderRepository
	Outbox      domain.OutboxRepository
	Timeline    domain.TimelineRepository
	Idempotency domain.IdempotencyRepository
	Carts       domain.CartStore

	Checkers map[string]healthcheck.Checker
	closers  []func() error
}

// Close освобождает подключения в обратном порядке открытия.
func (d *runtimeDependencies) Close(logger *log.Entry) {
	if d == nil {
		return
	}
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			logger.WithError(err).Warn("failed to close runtime dependency")
		}
	}
	d.closers = nil
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	deps := &runtimeDependencies{Checkers: make(map[string]healthcheck.Checker)}

	if err := initStorage(ctx, cfg, logger, deps); err != nil {
		deps.Close(logger)
		return nil, err
	}
	if err := initCarts(ctx, cfg, logger, deps); err != nil {
		deps.Close(logger)
		return nil, err
	}

	outbox := deps.Outbox
	deps.Checkers["outbox"] = healthcheck.NewBacklogChecker("outbox", cfg.OutboxMaxPendingAge, func(ctx context.Context) (time.Time, error) {
		stats, err := outbox.Stats(ctx)
		if err != nil {
			return time.Time{}, err
		}
		return stats.OldestPendingAt, nil
	})
	return deps, nil
}

func initStorage(ctx context.Context, cfg Config, logger *log.Entry, deps *runtimeDependencies) error {
	switch cfg.StorageDriver {
	case "", StorageDriverMemory:
		store := memory.NewStore()
		deps.Inventory = memoryInventory{Ledger: store.Ledger}
		deps.Orders = store.Orders
		deps.Outbox = store.Outbox
		deps.Timeline = store.Timeline
		deps.Idempotency = store.Idempotency
		deps.Carts = store.Carts
		logger.Info("using in-memory storage")
		return nil

	case StorageDriverPostgres:
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("init postgres storage: %w", err)
		}
		deps.closers = append(deps.closers, store.Close)

		if cfg.PostgresAutoMigrate {
			if err := store.MigrateUp(ctx, 0); err != nil {
				return fmt.Errorf("apply postgres migrations: %w", err)
			}
		} else {
			state, err := store.MigrationStatus(ctx)
			if err != nil {
				return fmt.Errorf("check postgres schema: %w", err)
			}
			if len(state.Pending) > 0 {
				return fmt.Errorf("postgres schema is behind: pending migrations %v", state.Pending)
			}
		}

		deps.Inventory = postgres.NewLedger(store)
		deps.Orders = postgres.NewOrderRepository(store)
		deps.Outbox = postgres.NewOutboxRepository(store)
		deps.Timeline = postgres.NewTimelineRepository(store)
		deps.Idempotency = postgres.NewIdempotencyRepository(store)
		deps.Checkers["postgres"] = healthcheck.NewPingChecker("postgres", store.Ping)
		logger.WithField("auto_migrate", cfg.PostgresAutoMigrate).Info("using postgres storage")
		return nil

	default:
		return fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func initCarts(ctx context.Context, cfg Config, logger *log.Entry, deps *runtimeDependencies) error {
	switch cfg.CartDriver {
	case "", CartDriverMemory:
		if deps.Carts == nil {
			deps.Carts = memory.NewCartStore()
		}
		return nil

	case CartDriverRedis:
		client, err := redisx.New(ctx, redisx.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return fmt.Errorf("init redis cart store: %w", err)
		}
		deps.closers = append(deps.closers, client.Close)
		deps.Carts = redisx.NewCartStore(client, cfg.CartTTL)
		deps.Checkers["redis"] = healthcheck.NewPingChecker("redis", func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		logger.WithField("addr", cfg.RedisAddr).Info("using redis cart store")
		return nil

	default:
		return fmt.Errorf("unsupported cart driver %q", cfg.CartDriver)
	}
}
