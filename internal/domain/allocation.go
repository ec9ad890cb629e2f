package domain

// Deduction описывает одно списание с конкретного лота.
type Deduction struct {
	LotID string
	// ObservedQty хранит остаток лота в момент планирования; используется как ожидаемое
	// значение при compare-and-swap.
	ObservedQty int32
	Qty         int32
}

// Remaining возвращает остаток лота после списания.
func (d Deduction) Remaining() int32 {
	return d.ObservedQty - d.Qty
}

// AllocationPlan содержит упорядоченный список списаний, покрывающий одну строку корзины.
// План живёт только внутри одного checkout и нигде не сохраняется.
type AllocationPlan struct {
	ProductName string
	Requested   int32
	Deductions  []Deduction
}

// Allocated возвращает сумму списаний плана.
func (p AllocationPlan) Allocated() int64 {
	var total int64
	for _, d := range p.Deductions {
		total += int64(d.Qty)
	}
	return total
}
