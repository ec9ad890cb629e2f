package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
)

// ledgerTx оборачивает одну SQL-транзакцию checkout. Списания выполняются условным
// UPDATE по наблюдаемому остатку, поэтому блокировки на чтении не нужны.
type ledgerTx struct {
	tx   *sql.Tx
	done bool
}

func (t *ledgerTx) LotsForProduct(ctx context.Context, productName string) ([]domain.Lot, error) {
	if t.done {
		return nil, domain.ErrTxDone
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return selectLots(ctx, t.tx, productName)
}

func (t *ledgerTx) DecrementLot(ctx context.Context, d domain.Deduction) error {
	if t.done {
		return domain.ErrTxDone
	}
	if d.Qty <= 0 || d.Qty > d.ObservedQty {
		return fmt.Errorf("%w: deduction %d of %d on lot %s", domain.ErrValidation, d.Qty, d.ObservedQty, d.LotID)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := t.tx.ExecContext(ctx, `
		UPDATE lots
		SET quantity = quantity - $2,
		    version = version + 1
		WHERE id = $1
		  AND quantity = $3
	`, d.LotID, d.Qty, d.ObservedQty)
	if err != nil {
		if isConcurrencyFailure(err) {
			return fmt.Errorf("%w: lot %s: %v", domain.ErrConcurrentModification, d.LotID, err)
		}
		return fmt.Errorf("decrement lot %s: %w", d.LotID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for lot %s: %w", d.LotID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: lot %s no longer has %d", domain.ErrConcurrentModification, d.LotID, d.ObservedQty)
	}
	return nil
}

func (t *ledgerTx) CreateOrder(ctx context.Context, order domain.Order) error {
	if t.done {
		return domain.ErrTxDone
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := t.tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, user_id, total_minor, payment_state, payment_method, purchased_at, billed_at, version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		order.ID, order.UserID, order.TotalMinor, string(order.PaymentState),
		string(order.PaymentMethod), order.PurchasedAt, nullTime(order.BilledAt), order.Version,
	); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: order %s already exists", domain.ErrPersistence, order.ID)
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for i, item := range order.Items {
		if _, err := t.tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, product_name, qty, price_minor)
			VALUES ($1,$2,$3,$4,$5)
		`, order.ID, i, item.ProductName, item.Qty, item.PriceMinor); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// SavePayment обновляет только состояние оплаты; позиции и сумма после создания
// не меняются. Версия сверяется в том же UPDATE.
func (t *ledgerTx) SavePayment(ctx context.Context, order domain.Order) error {
	if t.done {
		return domain.ErrTxDone
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := t.tx.ExecContext(ctx, `
		UPDATE orders
		SET payment_state = $1,
		    payment_method = $2,
		    billed_at = $3,
		    version = version + 1
		WHERE id = $4
		  AND version = $5
	`,
		string(order.PaymentState),
		string(order.PaymentMethod),
		nullTime(order.BilledAt),
		order.ID,
		order.Version,
	)
	if err != nil {
		if isConcurrencyFailure(err) {
			return fmt.Errorf("%w: order %s: %v", domain.ErrOrderVersionConflict, order.ID, err)
		}
		return fmt.Errorf("update order payment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for order %s: %w", order.ID, err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := t.tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, order.ID).Scan(&exists); err != nil {
		return fmt.Errorf("check order exists: %w", err)
	}
	if !exists {
		return domain.ErrOrderNotFound
	}
	return domain.ErrOrderVersionConflict
}

func (t *ledgerTx) EnqueueOutbox(ctx context.Context, msg domain.OutboxMessage) error {
	if t.done {
		return domain.ErrTxDone
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := insertOutbox(ctx, t.tx, msg)
	return err
}

func (t *ledgerTx) AppendTimeline(ctx context.Context, event domain.TimelineEvent) error {
	if t.done {
		return domain.ErrTxDone
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return insertTimeline(ctx, t.tx, event)
}

func (t *ledgerTx) Commit() error {
	if t.done {
		return domain.ErrTxDone
	}
	t.done = true

	if err := t.tx.Commit(); err != nil {
		if isConcurrencyFailure(err) {
			return fmt.Errorf("%w: commit: %v", domain.ErrConcurrentModification, err)
		}
		return fmt.Errorf("commit ledger tx: %w", err)
	}
	return nil
}

func (t *ledgerTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true

	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback ledger tx: %w", err)
	}
	return nil
}

var _ domain.LedgerTx = (*ledgerTx)(nil)
