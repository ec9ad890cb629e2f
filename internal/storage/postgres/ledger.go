package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
)

// Ledger — склад лотов и каталог в PostgreSQL.
type Ledger struct {
	db *sql.DB
}

// NewLedger создаёт PostgreSQL-реализацию UnitOfWork и CatalogRepository.
func NewLedger(store *Store) *Ledger {
	return &Ledger{db: store.DB()}
}

// Begin открывает SQL-транзакцию checkout.
//
// database/sql откатывает транзакцию при отмене контекста BeginTx, поэтому
// транзакция живёт на контексте без отмены; отдельные запросы получают ctx
// вызывающего.
func (l *Ledger) Begin(ctx context.Context) (domain.LedgerTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tx, err := l.db.BeginTx(context.WithoutCancel(ctx), &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("begin ledger tx: %w", err)
	}
	return &ledgerTx{tx: tx}, nil
}

// AddProduct создаёт или обновляет продукт и добавляет ему лоты (сиды и тесты).
// Пустой ID лота заменяется на UUID.
func (l *Ledger) AddProduct(ctx context.Context, product domain.Product, lots ...domain.Lot) (err error) {
	if err := product.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO products (name, description, price_minor)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET description = EXCLUDED.description,
		    price_minor = EXCLUDED.price_minor
	`, product.Name, product.Description, product.PriceMinor); err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}

	for _, lot := range lots {
		if lot.ID == "" {
			lot.ID = uuid.NewString()
		}
		lot.ProductName = product.Name
		if err = lot.Validate(); err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO lots (id, product_name, quantity, expires_at, version)
			VALUES ($1, $2, $3, $4, 0)
		`, lot.ID, lot.ProductName, lot.Qty, lot.ExpiresAt.UTC()); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: duplicate lot id %s", domain.ErrValidation, lot.ID)
			}
			return fmt.Errorf("insert lot: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit add product: %w", err)
	}
	return nil
}

// GetProduct возвращает продукт каталога.
func (l *Ledger) GetProduct(ctx context.Context, name string) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var product domain.Product
	err := l.db.QueryRowContext(ctx, `
		SELECT name, description, price_minor
		FROM products
		WHERE name = $1
	`, name).Scan(&product.Name, &product.Description, &product.PriceMinor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("select product: %w", err)
	}
	return product, nil
}

// ListProducts возвращает продукты по имени вместе с суммой остатков лотов.
func (l *Ledger) ListProducts(ctx context.Context, offset, limit int) ([]domain.ProductStock, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if offset < 0 {
		offset = 0
	}
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT p.name, p.description, p.price_minor, COALESCE(SUM(l.quantity), 0)
		FROM products p
		LEFT JOIN lots l ON l.product_name = p.name
		GROUP BY p.name, p.description, p.price_minor
		ORDER BY p.name
		OFFSET $1
		LIMIT $2
	`, offset, limitArg)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	result := make([]domain.ProductStock, 0)
	for rows.Next() {
		var item domain.ProductStock
		if err := rows.Scan(&item.Name, &item.Description, &item.PriceMinor, &item.Available); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return result, nil
}

// ListLots возвращает снимок лотов продукта в порядке расхода.
func (l *Ledger) ListLots(ctx context.Context, productName string) ([]domain.Lot, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return selectLots(ctx, l.db, productName)
}

// selectLots читает лоты продукта; для неизвестного продукта возвращает ErrProductNotFound.
func selectLots(ctx context.Context, q querier, productName string) ([]domain.Lot, error) {
	var exists bool
	if err := q.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM products WHERE name = $1)
	`, productName).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check product exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productName)
	}

	rows, err := q.QueryContext(ctx, `
		SELECT id, product_name, quantity, expires_at, version
		FROM lots
		WHERE product_name = $1
		ORDER BY expires_at ASC, id ASC
	`, productName)
	if err != nil {
		return nil, fmt.Errorf("select lots: %w", err)
	}
	defer rows.Close()

	lots := make([]domain.Lot, 0)
	for rows.Next() {
		var lot domain.Lot
		if err := rows.Scan(&lot.ID, &lot.ProductName, &lot.Qty, &lot.ExpiresAt, &lot.Version); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		lot.ExpiresAt = lot.ExpiresAt.UTC()
		lots = append(lots, lot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lots: %w", err)
	}
	return lots, nil
}

var (
	_ domain.UnitOfWork        = (*Ledger)(nil)
	_ domain.CatalogRepository = (*Ledger)(nil)
)
