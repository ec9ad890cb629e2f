package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
	"github.com/vladislavdragonenkov/lotcheckout/internal/storage/memory"
)

func seedMilk(t *testing.T, store *memory.Store) {
	t.Helper()
	require.NoError(t, store.Ledger.AddProduct(
		domain.Product{Name: "Milk", PriceMinor: 250},
		domain.Lot{ID: "lot1", Qty: 3, ExpiresAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		domain.Lot{ID: "lot2", Qty: 5, ExpiresAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	))
}

func lotQty(t *testing.T, store *memory.Store) map[string]int32 {
	t.Helper()
	lots, err := store.Ledger.ListLots(context.Background(), "Milk")
	require.NoError(t, err)
	out := make(map[string]int32, len(lots))
	for _, lot := range lots {
		out[lot.ID] = lot.Qty
	}
	return out
}

func TestLedger_CommitAppliesEverything(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedMilk(t, store)

	tx, err := store.Ledger.Begin(ctx)
	require.NoError(t, err)

	lots, err := tx.LotsForProduct(ctx, "Milk")
	require.NoError(t, err)
	require.Equal(t, "lot1", lots[0].ID)

	require.NoError(t, tx.DecrementLot(ctx, domain.Deduction{LotID: "lot1", ObservedQty: 3, Qty: 3}))
	require.NoError(t, tx.DecrementLot(ctx, domain.Deduction{LotID: "lot2", ObservedQty: 5, Qty: 1}))

	order := domain.NewOrderFromCart("order-1", domain.Cart{
		UserID: "user-1",
		Items:  []domain.CartItem{{ProductName: "Milk", Qty: 4, PriceMinor: 250}},
	}, time.Now())
	require.NoError(t, tx.CreateOrder(ctx, order))
	require.NoError(t, tx.EnqueueOutbox(ctx, domain.OutboxMessage{AggregateType: "order", AggregateID: order.ID, EventType: "OrderCreated"}))
	require.NoError(t, tx.AppendTimeline(ctx, domain.TimelineEvent{OrderID: order.ID, Type: domain.TimelineOrderCreated}))

	// До Commit ничего не видно снаружи.
	require.Equal(t, map[string]int32{"lot1": 3, "lot2": 5}, lotQty(t, store))
	_, err = store.Orders.Get(ctx, order.ID)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	require.NoError(t, tx.Commit())

	require.Equal(t, map[string]int32{"lot1": 0, "lot2": 4}, lotQty(t, store))
	stored, err := store.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1000), stored.TotalMinor)
	require.Len(t, store.Outbox.AllPending(), 1)
	events, err := store.Timeline.List(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)

	require.ErrorIs(t, tx.Commit(), domain.ErrTxDone)
}

func TestLedger_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedMilk(t, store)

	tx, err := store.Ledger.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.LotsForProduct(ctx, "Milk")
	require.NoError(t, err)
	require.NoError(t, tx.DecrementLot(ctx, domain.Deduction{LotID: "lot1", ObservedQty: 3, Qty: 2}))
	require.NoError(t, tx.Rollback())

	require.Equal(t, map[string]int32{"lot1": 3, "lot2": 5}, lotQty(t, store))
	require.Empty(t, store.Outbox.AllPending())
}

func TestLedger_DetectsConcurrentModification(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedMilk(t, store)

	first, err := store.Ledger.Begin(ctx)
	require.NoError(t, err)
	second, err := store.Ledger.Begin(ctx)
	require.NoError(t, err)

	_, err = first.LotsForProduct(ctx, "Milk")
	require.NoError(t, err)
	_, err = second.LotsForProduct(ctx, "Milk")
	require.NoError(t, err)

	require.NoError(t, first.DecrementLot(ctx, domain.Deduction{LotID: "lot1", ObservedQty: 3, Qty: 3}))
	require.NoError(t, second.DecrementLot(ctx, domain.Deduction{LotID: "lot1", ObservedQty: 3, Qty: 2}))

	require.NoError(t, first.Commit())
	err = second.Commit()
	require.ErrorIs(t, err, domain.ErrConcurrentModification)

	require.Equal(t, map[string]int32{"lot1": 0, "lot2": 5}, lotQty(t, store))
}

func TestLedger_DecrementRejectsStaleObservation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedMilk(t, store)

	tx, err := store.Ledger.Begin(ctx)
	require.NoError(t, err)
	err = tx.DecrementLot(ctx, domain.Deduction{LotID: "lot1", ObservedQty: 2, Qty: 1})
	require.True(t, errors.Is(err, domain.ErrConcurrentModification), "got %v", err)

	err = tx.DecrementLot(ctx, domain.Deduction{LotID: "missing", ObservedQty: 1, Qty: 1})
	require.ErrorIs(t, err, domain.ErrConcurrentModification)
}

func TestLedger_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	tx, err := store.Ledger.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.LotsForProduct(ctx, "Caviar")
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = store.Ledger.GetProduct(ctx, "Caviar")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestLedger_BeginHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.NewStore().Ledger.Begin(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLedger_ListProductsWithStock(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedMilk(t, store)
	require.NoError(t, store.Ledger.AddProduct(domain.Product{Name: "Bread", PriceMinor: 199}))

	products, err := store.Ledger.ListProducts(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "Bread", products[0].Name)
	require.Equal(t, int64(0), products[0].Available)
	require.Equal(t, "Milk", products[1].Name)
	require.Equal(t, int64(8), products[1].Available)

	page, err := store.Ledger.ListProducts(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "Milk", page[0].Name)
}

func TestLedger_AddProductRejectsNegativeLot(t *testing.T) {
	store := memory.NewStore()
	err := store.Ledger.AddProduct(domain.Product{Name: "Milk"}, domain.Lot{ID: "bad", Qty: -1})
	require.ErrorIs(t, err, domain.ErrValidation)
}
