package domain

import "strings"

// Product — позиция каталога. Имя уникально и используется как ключ во всех связях.
type Product struct {
	Name        string
	Description string
	// Текущая цена за единицу в минимальных денежных единицах.
	PriceMinor int64
}

// ProductStock содержит продукт каталога и суммарным остатком по всем лотам.
type ProductStock struct {
	Product
	Available int64
}

// Validate проверяет поля продукта на границе ввода.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrProductNameRequired
	}
	if p.PriceMinor < 0 {
		return ErrPriceInvalid
	}
	return nil
}
