package domain

import "context"

// OrderRepository читает заказы. Все изменения заказов идут через LedgerTx.
type OrderRepository interface {
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(ctx context.Context, id string) (Order, error)
	// ListByUser возвращает заказы пользователя, новые первыми; при limit <= 0 без ограничения.
	ListByUser(ctx context.Context, userID string, limit int) ([]Order, error)
}
