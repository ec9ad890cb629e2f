// Package money переводит цены между минимальными единицами и десятичным видом.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale — количество знаков после запятой у минимальной единицы.
const Scale = 2

// FromMinor возвращает десятичную сумму: 250 → 2.50.
func FromMinor(minor int64) decimal.Decimal {
	return decimal.New(minor, -Scale)
}

// ToMinor переводит десятичную сумму в минимальные единицы.
// Суммы с точностью выше Scale отклоняются, чтобы не терять копейки молча.
func ToMinor(amount decimal.Decimal) (int64, error) {
	shifted := amount.Shift(Scale)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has more than %d decimal places", amount.String(), Scale)
	}
	return shifted.IntPart(), nil
}

// Parse разбирает строку вида "2.5" в минимальные единицы.
func Parse(raw string) (int64, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return ToMinor(amount)
}

// Format печатает сумму с двумя знаками: 1000 → "10.00".
func Format(minor int64) string {
	return FromMinor(minor).StringFixed(Scale)
}

// LineTotal возвращает qty * price в десятичном виде.
func LineTotal(qty int32, priceMinor int64) decimal.Decimal {
	return FromMinor(priceMinor).Mul(decimal.NewFromInt32(qty))
}
