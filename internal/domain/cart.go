package domain

import (
	"fmt"
	"math"
	"strings"
)

// CartItem описывает строку корзины с ценой, зафиксированной в момент добавления.
type CartItem struct {
	ProductName string
	Qty         int32
	PriceMinor  int64
}

// Cart хранится в кеше под ключом cart:<userId>.
type Cart struct {
	UserID string
	Items  []CartItem
}

// ProductDemand описывает суммарный спрос на продукт по всем строкам корзины.
type ProductDemand struct {
	ProductName string
	Qty         int32
}

// Validate проверяет корзину перед оформлением.
func (c Cart) Validate() error {
	if strings.TrimSpace(c.UserID) == "" {
		return ErrUserRequired
	}
	if len(c.Items) == 0 {
		return ErrCartEmpty
	}
	perProduct := make(map[string]int64, len(c.Items))
	for i, item := range c.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("cart item %d: %w", i, err)
		}
		perProduct[item.ProductName] += int64(item.Qty)
		if perProduct[item.ProductName] > math.MaxInt32 {
			return fmt.Errorf("%w: total quantity of %s exceeds %d", ErrQtyInvalid, item.ProductName, math.MaxInt32)
		}
	}
	return nil
}

// Validate проверяет одну строку корзины.
func (i CartItem) Validate() error {
	if strings.TrimSpace(i.ProductName) == "" {
		return ErrProductNameRequired
	}
	if i.Qty <= 0 {
		return ErrQtyInvalid
	}
	if i.PriceMinor < 0 {
		return ErrPriceInvalid
	}
	return nil
}

// TotalMinor возвращает сумму корзины: Σ qty * price.
func (c Cart) TotalMinor() int64 {
	var total int64
	for _, item := range c.Items {
		total += int64(item.Qty) * item.PriceMinor
	}
	return total
}

// Clone возвращает независимую копию корзины.
func (c Cart) Clone() Cart {
	out := Cart{UserID: c.UserID}
	if c.Items != nil {
		out.Items = append([]CartItem(nil), c.Items...)
	}
	return out
}

// Add добавляет товар; если строка с таким продуктом уже есть, увеличивает её количество.
// Цена существующей строки не меняется. Сумма, не влезающая в int32, отклоняется.
func (c *Cart) Add(item CartItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	for i := range c.Items {
		if c.Items[i].ProductName == item.ProductName {
			if c.Items[i].Qty > math.MaxInt32-item.Qty {
				return fmt.Errorf("%w: %s would exceed %d", ErrQtyInvalid, item.ProductName, math.MaxInt32)
			}
			c.Items[i].Qty += item.Qty
			return nil
		}
	}
	c.Items = append(c.Items, item)
	return nil
}

// SetQty меняет количество строки; значения меньше единицы приводятся к 1.
func (c *Cart) SetQty(index int, qty int32) error {
	if index < 0 || index >= len(c.Items) {
		return ErrItemIndexOutOfRange
	}
	if qty < 1 {
		qty = 1
	}
	c.Items[index].Qty = qty
	return nil
}

// Remove удаляет строку по индексу, сохраняя порядок остальных.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.Items) {
		return ErrItemIndexOutOfRange
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return nil
}

// Demand сворачивает строки в спрос по продуктам в порядке первого появления.
// Две строки одного продукта должны планироваться против одного снимка лотов.
// Сумма насыщается на math.MaxInt32; Validate отклоняет такие корзины раньше.
func (c Cart) Demand() []ProductDemand {
	index := make(map[string]int, len(c.Items))
	out := make([]ProductDemand, 0, len(c.Items))
	for _, item := range c.Items {
		if pos, ok := index[item.ProductName]; ok {
			sum := int64(out[pos].Qty) + int64(item.Qty)
			out[pos].Qty = int32(min(sum, math.MaxInt32))
			continue
		}
		index[item.ProductName] = len(out)
		out = append(out, ProductDemand{ProductName: item.ProductName, Qty: item.Qty})
	}
	return out
}

// Subtract убирает из корзины купленные строки: количество строки с тем же
// продуктом и ценой уменьшается на купленное, пустые строки выпадают.
// Строки, добавленные после снимка, остаются.
func (c Cart) Subtract(ordered Cart) Cart {
	bought := make(map[CartItem]int64, len(ordered.Items))
	for _, item := range ordered.Items {
		bought[CartItem{ProductName: item.ProductName, PriceMinor: item.PriceMinor}] += int64(item.Qty)
	}

	out := Cart{UserID: c.UserID}
	for _, item := range c.Items {
		key := CartItem{ProductName: item.ProductName, PriceMinor: item.PriceMinor}
		left := int64(item.Qty)
		if take := min(bought[key], left); take > 0 {
			bought[key] -= take
			left -= take
		}
		if left > 0 {
			item.Qty = int32(left)
			out.Items = append(out.Items, item)
		}
	}
	return out
}
