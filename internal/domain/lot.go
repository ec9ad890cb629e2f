package domain

import (
	"fmt"
	"strings"
	"time"
)

// Lot описывает партию товара с собственным остатком и сроком годности.
type Lot struct {
	ID          string
	ProductName string
	// Остаток партии никогда не уходит ниже нуля.
	Qty       int32
	ExpiresAt time.Time
	// Version растёт на каждое списание; нужен для аудита и optimistic locking.
	Version int64
}

// Validate проверяет лот, прочитанный из хранилища или переданный извне.
func (l Lot) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("%w: lot id is required", ErrValidation)
	}
	if strings.TrimSpace(l.ProductName) == "" {
		return ErrProductNameRequired
	}
	if l.Qty < 0 {
		return fmt.Errorf("%w (lot %s: %d)", ErrLotQtyNegative, l.ID, l.Qty)
	}
	return nil
}

// TotalQty суммирует остаток по набору лотов.
func TotalQty(lots []Lot) int64 {
	var total int64
	for _, lot := range lots {
		if lot.Qty > 0 {
			total += int64(lot.Qty)
		}
	}
	return total
}
