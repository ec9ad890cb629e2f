// Package allocation строит план списания остатков по лотам (FEFO).
//
// Планировщик не имеет побочных эффектов: он не обращается к хранилищу и не меняет входные лоты.
// Лоты с ранним сроком годности расходуются первыми, при равных сроках порядок
// задаёт идентификатор лота.
package allocation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
)

// Plan распределяет requested единиц продукта по лотам.
//
// Ошибки:
//   - domain.ErrValidation: пустое имя, requested <= 0, лот с отрицательным остатком или чужого продукта;
//   - *domain.InsufficientStockError: суммарного остатка не хватает, план не строится.
func Plan(product string, requested int32, lots []domain.Lot) (domain.AllocationPlan, error) {
	if strings.TrimSpace(product) == "" {
		return domain.AllocationPlan{}, domain.ErrProductNameRequired
	}
	if requested <= 0 {
		return domain.AllocationPlan{}, fmt.Errorf("%w (product %q, requested %d)", domain.ErrQtyInvalid, product, requested)
	}
	for _, lot := range lots {
		if err := lot.Validate(); err != nil {
			return domain.AllocationPlan{}, err
		}
		if lot.ProductName != product {
			return domain.AllocationPlan{}, fmt.Errorf("%w (lot %s of %q)", domain.ErrLotProductMismatch, lot.ID, lot.ProductName)
		}
	}

	available := domain.TotalQty(lots)
	if available < int64(requested) {
		return domain.AllocationPlan{}, &domain.InsufficientStockError{
			Product:   product,
			Requested: int64(requested),
			Available: available,
		}
	}

	ordered := SortFEFO(lots)

	plan := domain.AllocationPlan{
		ProductName: product,
		Requested:   requested,
		Deductions:  make([]domain.Deduction, 0, len(ordered)),
	}
	remaining := requested
	for _, lot := range ordered {
		if remaining == 0 {
			break
		}
		if lot.Qty == 0 {
			continue
		}
		take := min(remaining, lot.Qty)
		plan.Deductions = append(plan.Deductions, domain.Deduction{
			LotID:       lot.ID,
			ObservedQty: lot.Qty,
			Qty:         take,
		})
		remaining -= take
	}

	return plan, nil
}

// SortFEFO возвращает копию лотов в порядке расхода: срок годности, затем ID.
func SortFEFO(lots []domain.Lot) []domain.Lot {
	ordered := append([]domain.Lot(nil), lots...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].ExpiresAt.Equal(ordered[j].ExpiresAt) {
			return ordered[i].ExpiresAt.Before(ordered[j].ExpiresAt)
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}

// Apply возвращает копию лотов с применённым планом; используется для
// предварительного просмотра остатков и в тестах.
func Apply(lots []domain.Lot, plan domain.AllocationPlan) []domain.Lot {
	byID := make(map[string]int32, len(plan.Deductions))
	for _, d := range plan.Deductions {
		byID[d.LotID] += d.Qty
	}
	out := append([]domain.Lot(nil), lots...)
	for i := range out {
		if qty, ok := byID[out[i].ID]; ok {
			out[i].Qty -= qty
		}
	}
	return out
}
