package memory

import (
	"context"
	"fmt"

	"github.com/vladislavdragonenkov/lotcheckout/internal/allocation"
	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
)

// ledgerTx копит списания и записи до Commit. Конфликт определяется сравнением
// остатка лота на момент первого чтения с текущим значением в хранилище.
type ledgerTx struct {
	ledger *Ledger
	done   bool

	// observed хранит версию лота на момент первого обращения в транзакции.
	observed map[string]domain.Lot
	// pending хранит остаток лота с учётом списаний этой транзакции.
	pending map[string]int32

	orders   []domain.Order
	payments []domain.Order
	outbox   []domain.OutboxMessage
	timeline []domain.TimelineEvent
}

func (tx *ledgerTx) LotsForProduct(ctx context.Context, productName string) ([]domain.Lot, error) {
	if tx.done {
		return nil, domain.ErrTxDone
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tx.ledger.mu.RLock()
	defer tx.ledger.mu.RUnlock()

	if _, ok := tx.ledger.products[productName]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productName)
	}

	lots := tx.ledger.lotsLocked(productName)
	for i, lot := range lots {
		if _, seen := tx.observed[lot.ID]; !seen {
			tx.observed[lot.ID] = lot
		}
		if qty, ok := tx.pending[lot.ID]; ok {
			lots[i].Qty = qty
		}
	}
	return allocation.SortFEFO(lots), nil
}

func (tx *ledgerTx) DecrementLot(_ context.Context, d domain.Deduction) error {
	if tx.done {
		return domain.ErrTxDone
	}
	if d.Qty <= 0 || d.Qty > d.ObservedQty {
		return fmt.Errorf("%w: deduction %d of %d on lot %s", domain.ErrValidation, d.Qty, d.ObservedQty, d.LotID)
	}

	tx.ledger.mu.RLock()
	live, ok := tx.ledger.lots[d.LotID]
	tx.ledger.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: lot %s disappeared", domain.ErrConcurrentModification, d.LotID)
	}

	if _, seen := tx.observed[d.LotID]; !seen {
		tx.observed[d.LotID] = live
	}
	current, touched := tx.pending[d.LotID]
	if !touched {
		current = live.Qty
	}
	if current != d.ObservedQty || live.Version != tx.observed[d.LotID].Version {
		return fmt.Errorf("%w: lot %s has %d, expected %d", domain.ErrConcurrentModification, d.LotID, current, d.ObservedQty)
	}

	tx.pending[d.LotID] = current - d.Qty
	return nil
}

func (tx *ledgerTx) CreateOrder(_ context.Context, order domain.Order) error {
	if tx.done {
		return domain.ErrTxDone
	}
	tx.orders = append(tx.orders, order.Clone())
	return nil
}

func (tx *ledgerTx) SavePayment(_ context.Context, order domain.Order) error {
	if tx.done {
		return domain.ErrTxDone
	}
	if err := tx.ledger.orders.checkVersion(order); err != nil {
		return err
	}
	tx.payments = append(tx.payments, order.Clone())
	return nil
}

func (tx *ledgerTx) EnqueueOutbox(_ context.Context, msg domain.OutboxMessage) error {
	if tx.done {
		return domain.ErrTxDone
	}
	tx.outbox = append(tx.outbox, msg)
	return nil
}

func (tx *ledgerTx) AppendTimeline(_ context.Context, event domain.TimelineEvent) error {
	if tx.done {
		return domain.ErrTxDone
	}
	tx.timeline = append(tx.timeline, event)
	return nil
}

// Commit проверяет, что ни один тронутый лот и ни один оплачиваемый заказ не
// изменились, и применяет всё разом.
func (tx *ledgerTx) Commit() error {
	if tx.done {
		return domain.ErrTxDone
	}
	tx.done = true

	l := tx.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	for id := range tx.pending {
		live, ok := l.lots[id]
		if !ok || live.Version != tx.observed[id].Version {
			return fmt.Errorf("%w: lot %s changed before commit", domain.ErrConcurrentModification, id)
		}
	}
	for _, order := range tx.orders {
		if l.orders.exists(order.ID) {
			return fmt.Errorf("%w: order %s already exists", domain.ErrPersistence, order.ID)
		}
	}
	for _, order := range tx.payments {
		if err := l.orders.checkVersion(order); err != nil {
			return err
		}
	}

	for id, qty := range tx.pending {
		lot := l.lots[id]
		lot.Qty = qty
		lot.Version++
		l.lots[id] = lot
	}
	for _, order := range tx.orders {
		l.orders.insert(order)
	}
	for _, order := range tx.payments {
		l.orders.applyPayment(order)
	}
	for _, msg := range tx.outbox {
		l.outbox.insert(msg)
	}
	for _, event := range tx.timeline {
		l.timeline.insert(event)
	}
	return nil
}

func (tx *ledgerTx) Rollback() error {
	if tx.done {
		return nil
	}
	tx.done = true
	return nil
}

var _ domain.LedgerTx = (*ledgerTx)(nil)
