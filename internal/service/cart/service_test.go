package cart_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/cart"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/checkout"
	"github.com/vladislavdragonenkov/lotcheckout/internal/storage/memory"
)

func newFixture(t *testing.T) (*memory.Store, *cart.Service) {
	t.Helper()
	store := memory.NewStore()
	expires := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Ledger.AddProduct(domain.Product{Name: "Milk", PriceMinor: 250}, domain.Lot{ID: "m1", Qty: 10, ExpiresAt: expires}))
	require.NoError(t, store.Ledger.AddProduct(domain.Product{Name: "Bread", PriceMinor: 120}, domain.Lot{ID: "b1", Qty: 10, ExpiresAt: expires}))
	return store, cart.NewService(store.Carts, store.Ledger, store.Orders, store.Timeline, nil)
}

func TestCartService_AddSetRemove(t *testing.T) {
	ctx := context.Background()
	_, svc := newFixture(t)

	c, err := svc.AddItem(ctx, "user-1", "Milk", 2)
	require.NoError(t, err)
	c, err = svc.AddItem(ctx, "user-1", "Bread", 1)
	require.NoError(t, err)
	c, err = svc.AddItem(ctx, "user-1", "Milk", 1)
	require.NoError(t, err)
	require.Equal(t, []domain.CartItem{
		{ProductName: "Milk", Qty: 3, PriceMinor: 250},
		{ProductName: "Bread", Qty: 1, PriceMinor: 120},
	}, c.Items)
	require.Equal(t, int64(870), c.TotalMinor())

	c, err = svc.SetQuantity(ctx, "user-1", 1, 0)
	require.NoError(t, err)
	require.Equal(t, int32(1), c.Items[1].Qty)

	c, err = svc.RemoveItem(ctx, "user-1", 0)
	require.NoError(t, err)
	require.Equal(t, []domain.CartItem{{ProductName: "Bread", Qty: 1, PriceMinor: 120}}, c.Items)

	_, err = svc.RemoveItem(ctx, "user-1", 5)
	require.ErrorIs(t, err, domain.ErrItemIndexOutOfRange)

	stored, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, c.Items, stored.Items)
}

func TestCartService_AddItemErrors(t *testing.T) {
	ctx := context.Background()
	_, svc := newFixture(t)

	_, err := svc.AddItem(ctx, "user-1", "Caviar", 1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = svc.AddItem(ctx, "user-1", "Milk", 0)
	require.ErrorIs(t, err, domain.ErrQtyInvalid)

	_, err = svc.AddItem(ctx, "", "Milk", 1)
	require.ErrorIs(t, err, domain.ErrUserRequired)
}

func TestCartService_RepeatOrderUsesSnapshotPrices(t *testing.T) {
	ctx := context.Background()
	store, svc := newFixture(t)

	checkoutSvc := checkout.NewService(store.Ledger, store.Carts, checkout.WithIDGenerator(func() string { return "order-1" }))
	order, err := checkoutSvc.CommitCheckout(ctx, domain.Cart{UserID: "user-1", Items: []domain.CartItem{
		{ProductName: "Milk", Qty: 4, PriceMinor: 199},
		{ProductName: "Bread", Qty: 1, PriceMinor: 120},
	}})
	require.NoError(t, err)

	before, err := store.Ledger.ListLots(ctx, "Milk")
	require.NoError(t, err)

	repeated, err := svc.RepeatOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.CartItem{
		{ProductName: "Milk", Qty: 4, PriceMinor: 199},
		{ProductName: "Bread", Qty: 1, PriceMinor: 120},
	}, repeated.Items)

	again, err := svc.RepeatOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, repeated, again)

	after, err := store.Ledger.ListLots(ctx, "Milk")
	require.NoError(t, err)
	require.Equal(t, before, after)

	_, err = svc.RepeatOrder(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestCartService_RestoreFromOrder(t *testing.T) {
	ctx := context.Background()
	store, svc := newFixture(t)

	checkoutSvc := checkout.NewService(store.Ledger, store.Carts, checkout.WithIDGenerator(func() string { return "order-1" }))
	order, err := checkoutSvc.CommitCheckout(ctx, domain.Cart{UserID: "user-1", Items: []domain.CartItem{
		{ProductName: "Milk", Qty: 2, PriceMinor: 199},
	}})
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, "user-1", "Bread", 3)
	require.NoError(t, err)

	restored, err := svc.RestoreFromOrder(ctx, "user-1", order.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.CartItem{{ProductName: "Milk", Qty: 2, PriceMinor: 199}}, restored.Items)

	stored, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, restored.Items, stored.Items)

	_, err = svc.RestoreFromOrder(ctx, "user-2", order.ID)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	events, err := store.Timeline.List(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
}
