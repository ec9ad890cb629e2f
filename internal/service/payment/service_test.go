package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
	"github.com/vladislavdragonenkov/lotcheckout/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/checkout"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/payment"
	"github.com/vladislavdragonenkov/lotcheckout/internal/storage/memory"
)

func placeMilkOrder(t *testing.T, store *memory.Store) domain.Order {
	t.Helper()
	require.NoError(t, store.Ledger.AddProduct(
		domain.Product{Name: "Milk", PriceMinor: 250},
		domain.Lot{ID: "lot1", Qty: 3, ExpiresAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		domain.Lot{ID: "lot2", Qty: 5, ExpiresAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	))
	svc := checkout.NewService(store.Ledger, store.Carts, checkout.WithIDGenerator(func() string { return "order-1" }))
	order, err := svc.CommitCheckout(context.Background(), domain.Cart{
		UserID: "user-1",
		Items:  []domain.CartItem{{ProductName: "Milk", Qty: 4, PriceMinor: 250}},
	})
	require.NoError(t, err)
	return order
}

func TestConfirmPayment_SecondConfirmKeepsFirstMethod(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	order := placeMilkOrder(t, store)
	require.Equal(t, int64(1000), order.TotalMinor)
	require.Equal(t, domain.PaymentStateUnpaid, order.PaymentState)

	// Заказ создан с реальным временем, счёт выставляется позже.
	billedAt := time.Now().UTC().Truncate(time.Second).Add(time.Hour)
	svc := payment.NewService(store.Orders, store.Ledger, nil, nil)
	svc.SetClock(func() time.Time { return billedAt })

	paid, err := svc.ConfirmPayment(ctx, order.ID, "card")
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatePaid, paid.PaymentState)
	require.Equal(t, domain.PaymentMethodCard, paid.PaymentMethod)
	require.Equal(t, billedAt, paid.BilledAt)

	svc.SetClock(func() time.Time { return billedAt.Add(time.Hour) })
	again, err := svc.ConfirmPayment(ctx, order.ID, "cash")
	require.ErrorIs(t, err, domain.ErrAlreadyConfirmed)
	require.Equal(t, domain.PaymentMethodCard, again.PaymentMethod)
	require.Equal(t, billedAt, again.BilledAt)

	stored, err := store.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentMethodCard, stored.PaymentMethod)
	require.Equal(t, billedAt, stored.BilledAt)
	require.Equal(t, order.Items, stored.Items)

	require.Equal(t, 1, paidEvents(store))

	events, err := store.Timeline.List(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, domain.TimelineOrderPaid, events[1].Type)
}

func TestConfirmPayment_AcceptsLegacyMethodNames(t *testing.T) {
	store := memory.NewStore()
	order := placeMilkOrder(t, store)
	svc := payment.NewService(store.Orders, store.Ledger, nil, nil)

	paid, err := svc.ConfirmPayment(context.Background(), order.ID, " Efectivo ")
	require.NoError(t, err)
	require.Equal(t, domain.PaymentMethodCash, paid.PaymentMethod)
}

func TestConfirmPayment_ValidatesMethodBeforeLookup(t *testing.T) {
	svc := payment.NewService(memory.NewOrderRepository(), nil, nil, nil)

	for _, method := range []string{"", "bitcoin"} {
		_, err := svc.ConfirmPayment(context.Background(), "missing", method)
		require.ErrorIs(t, err, domain.ErrPaymentMethodInvalid)
	}

	_, err := svc.ConfirmPayment(context.Background(), "missing", "card")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestConfirmPayment_ReloadsAfterVersionConflict(t *testing.T) {
	store := memory.NewStore()
	order := placeMilkOrder(t, store)
	repo := &countingRepo{OrderRepository: store.Orders}
	uow := &faultyUoW{inner: store.Ledger, conflicts: 1}
	svc := payment.NewService(repo, uow, nil, nil)

	paid, err := svc.ConfirmPayment(context.Background(), order.ID, "transfer")
	require.NoError(t, err)
	require.Equal(t, domain.PaymentMethodTransfer, paid.PaymentMethod)
	require.Equal(t, 2, repo.gets)
}

func TestConfirmPayment_GivesUpAfterRepeatedConflicts(t *testing.T) {
	store := memory.NewStore()
	order := placeMilkOrder(t, store)
	uow := &faultyUoW{inner: store.Ledger, conflicts: 10}
	svc := payment.NewService(store.Orders, uow, nil, nil)

	_, err := svc.ConfirmPayment(context.Background(), order.ID, "card")
	require.ErrorIs(t, err, domain.ErrOrderVersionConflict)

	stored, err := store.Orders.Get(context.Background(), order.ID)
	require.NoError(t, err)
	require.False(t, stored.IsPaid())
}

func TestConfirmPayment_OutboxFailureKeepsOrderUnpaid(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	order := placeMilkOrder(t, store)
	uow := &faultyUoW{inner: store.Ledger, outboxErr: errors.New("outbox unavailable")}

	_, err := payment.NewService(store.Orders, uow, nil, nil).ConfirmPayment(ctx, order.ID, "card")
	require.ErrorIs(t, err, domain.ErrPersistence)

	stored, err := store.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	require.False(t, stored.IsPaid())
	require.Zero(t, paidEvents(store))
	events, err := store.Timeline.List(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)

	// Повтор после восстановления проходит и пишет событие ровно один раз.
	paid, err := payment.NewService(store.Orders, store.Ledger, nil, nil).ConfirmPayment(ctx, order.ID, "card")
	require.NoError(t, err)
	require.True(t, paid.IsPaid())
	require.Equal(t, 1, paidEvents(store))
}

func paidEvents(store *memory.Store) int {
	var n int
	for _, msg := range store.Outbox.AllPending() {
		if msg.EventType == string(kafka.EventTypeOrderPaid) {
			n++
		}
	}
	return n
}

type countingRepo struct {
	domain.OrderRepository
	gets int
}

func (r *countingRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	r.gets++
	return r.OrderRepository.Get(ctx, id)
}

// faultyUoW подмешивает конфликты версий и сбои outbox в транзакции склада.
type faultyUoW struct {
	inner     domain.UnitOfWork
	conflicts int
	outboxErr error
}

func (u *faultyUoW) Begin(ctx context.Context) (domain.LedgerTx, error) {
	tx, err := u.inner.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &faultyTx{LedgerTx: tx, uow: u}, nil
}

type faultyTx struct {
	domain.LedgerTx
	uow *faultyUoW
}

func (tx *faultyTx) SavePayment(ctx context.Context, order domain.Order) error {
	if tx.uow.conflicts > 0 {
		tx.uow.conflicts--
		return domain.ErrOrderVersionConflict
	}
	return tx.LedgerTx.SavePayment(ctx, order)
}

func (tx *faultyTx) EnqueueOutbox(ctx context.Context, msg domain.OutboxMessage) error {
	if tx.uow.outboxErr != nil {
		return tx.uow.outboxErr
	}
	return tx.LedgerTx.EnqueueOutbox(ctx, msg)
}
