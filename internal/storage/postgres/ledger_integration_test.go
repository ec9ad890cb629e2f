package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/checkout"
)

func TestLedger_PostgresCatalog(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	ledger := NewLedger(store)
	seedMilkForIntegrationTest(t, ledger)
	require.NoError(t, ledger.AddProduct(context.Background(), domain.Product{Name: "Bread", PriceMinor: 120}))

	ctx := context.Background()
	products, err := ledger.ListProducts(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "Bread", products[0].Name)
	require.Equal(t, int64(0), products[0].Available)
	require.Equal(t, int64(8), products[1].Available)

	page, err := ledger.ListProducts(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "Milk", page[0].Name)

	_, err = ledger.GetProduct(ctx, "Caviar")
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = ledger.ListLots(ctx, "Caviar")
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	err = ledger.AddProduct(ctx, domain.Product{Name: "Milk", PriceMinor: 250}, domain.Lot{ID: "lot1", Qty: 1, ExpiresAt: time.Now()})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestLedger_PostgresCheckoutCommitsAtomically(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	ledger := NewLedger(store)
	seedMilkForIntegrationTest(t, ledger)
	orders := NewOrderRepository(store)

	svc := checkout.NewService(ledger, noopCarts{}, checkout.WithIDGenerator(func() string { return "order-pg-1" }))
	ctx := context.Background()

	order, err := svc.CommitCheckout(ctx, domain.Cart{
		UserID: "user-1",
		Items:  []domain.CartItem{{ProductName: "Milk", Qty: 4, PriceMinor: 250}},
	})
	require.NoError(t, err)
	require.Equal(t, map[string]int32{"lot1": 0, "lot2": 4}, milkQtyForIntegrationTest(t, ledger))

	stored, err := orders.Get(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1000), stored.TotalMinor)
	require.Equal(t, domain.PaymentStateUnpaid, stored.PaymentState)
	require.Equal(t, []domain.OrderItem{{ProductName: "Milk", Qty: 4, PriceMinor: 250}}, stored.Items)

	pending, err := NewOutboxRepository(store).PullPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = svc.CommitCheckout(ctx, domain.Cart{
		UserID: "user-1",
		Items:  []domain.CartItem{{ProductName: "Milk", Qty: 5, PriceMinor: 250}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Equal(t, int64(1), domain.ShortfallFor(err, "Milk"))
	require.Equal(t, map[string]int32{"lot1": 0, "lot2": 4}, milkQtyForIntegrationTest(t, ledger))
}

func TestLedger_PostgresStaleDeductionIsRejected(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	ledger := NewLedger(store)
	seedMilkForIntegrationTest(t, ledger)
	ctx := context.Background()

	stale, err := ledger.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = stale.Rollback() }()
	_, err = stale.LotsForProduct(ctx, "Milk")
	require.NoError(t, err)

	winner, err := ledger.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, winner.DecrementLot(ctx, domain.Deduction{LotID: "lot1", ObservedQty: 3, Qty: 2}))
	require.NoError(t, winner.Commit())

	err = stale.DecrementLot(ctx, domain.Deduction{LotID: "lot1", ObservedQty: 3, Qty: 3})
	require.ErrorIs(t, err, domain.ErrConcurrentModification)
	require.NoError(t, stale.Rollback())
	require.ErrorIs(t, stale.Commit(), domain.ErrTxDone)

	require.Equal(t, map[string]int32{"lot1": 1, "lot2": 5}, milkQtyForIntegrationTest(t, ledger))
}

func TestLedger_PostgresConcurrentCheckoutsNeverOversell(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	ledger := NewLedger(store)
	seedMilkForIntegrationTest(t, ledger)

	var seq atomic.Int64
	svc := checkout.NewService(ledger, noopCarts{},
		checkout.WithRetryConfig(checkout.RetryConfig{MaxAttempts: 20, InitialDelay: time.Millisecond}),
		checkout.WithIDGenerator(func() string { return fmt.Sprintf("order-pg-%d", seq.Add(1)) }),
	)

	var (
		wg   sync.WaitGroup
		sold atomic.Int64
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CommitCheckout(context.Background(), domain.Cart{
				UserID: "buyer",
				Items:  []domain.CartItem{{ProductName: "Milk", Qty: 3, PriceMinor: 250}},
			})
			switch {
			case err == nil:
				sold.Add(3)
			case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrCheckoutConflict):
			default:
				t.Errorf("unexpected checkout error: %v", err)
			}
		}()
	}
	wg.Wait()

	qty := milkQtyForIntegrationTest(t, ledger)
	require.Equal(t, int64(8), int64(qty["lot1"])+int64(qty["lot2"])+sold.Load())
	require.LessOrEqual(t, sold.Load(), int64(6))
}

type noopCarts struct{}

func (noopCarts) Get(_ context.Context, userID string) (domain.Cart, error) {
	return domain.Cart{UserID: userID}, nil
}
func (noopCarts) Save(context.Context, domain.Cart) error  { return nil }
func (noopCarts) Delete(context.Context, string) error     { return nil }
