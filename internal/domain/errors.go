package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// Некорректный ввод на границе (пустое имя, qty <= 0, неизвестный метод оплаты).
	ErrValidation = errors.New("validation failed")
	// ErrUserRequired возвращается, если операция вызвана без идентификатора пользователя.
	ErrUserRequired = fmt.Errorf("%w: user_id is required", ErrValidation)
	// Позиция корзины или лот без имени продукта.
	ErrProductNameRequired = fmt.Errorf("%w: product name is required", ErrValidation)
	// Запрошенное количество должно быть больше нуля.
	ErrQtyInvalid = fmt.Errorf("%w: qty must be greater than zero", ErrValidation)
	// Цена позиции отрицательная.
	ErrPriceInvalid = fmt.Errorf("%w: price must be non-negative", ErrValidation)
	// Лот с отрицательным остатком (битые данные хранилища).
	ErrLotQtyNegative = fmt.Errorf("%w: lot qty must be non-negative", ErrValidation)
	// В план передан лот чужого продукта.
	ErrLotProductMismatch = fmt.Errorf("%w: lot belongs to another product", ErrValidation)
	// Метод оплаты не из допустимого набора.
	ErrPaymentMethodInvalid = fmt.Errorf("%w: payment method must be one of transfer, card, cash", ErrValidation)
	// Попытка оформить пустую корзину.
	ErrCartEmpty = fmt.Errorf("%w: cart is empty", ErrValidation)
	// Обращение к несуществующей строке корзины.
	ErrItemIndexOutOfRange = fmt.Errorf("%w: cart item index out of range", ErrValidation)
	// Сумма заказа не совпадает с суммой позиций.
	ErrAmountMismatch = fmt.Errorf("%w: order total does not match items sum", ErrValidation)

	// Суммарного остатка лотов не хватает на запрошенное количество.
	ErrInsufficientStock = errors.New("insufficient stock")
	// Лот изменился между чтением и записью (CAS не прошёл).
	ErrConcurrentModification = errors.New("concurrent modification of lot")
	// Исчерпан лимит повторов после конфликтов; клиенту стоит повторить позже.
	ErrCheckoutConflict = errors.New("checkout conflict, try again")
	// Продукт отсутствует в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderVersionConflict сигнализирует о конфликте версий при сохранении.
	ErrOrderVersionConflict = errors.New("order version conflict")
	// Заказ уже оплачен; информационная ошибка, состояние не меняется.
	ErrAlreadyConfirmed = errors.New("order payment already confirmed")
	// Хранилище недоступно или не смогло зафиксировать транзакцию.
	ErrPersistence = errors.New("persistence failure")
	// Транзакция уже завершена (commit или rollback).
	ErrTxDone = errors.New("ledger transaction already finished")
	// Ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")

	// Пустой idempotency-key.
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	// Пустой хеш запроса.
	ErrIdempotencyRequestHashRequired = errors.New("idempotency request hash is required")
	// Ключ уже зарегистрирован с тем же запросом.
	ErrIdempotencyKeyAlreadyExists = errors.New("idempotency key already exists")
	// Ключ переиспользован для другого запроса.
	ErrIdempotencyHashMismatch = errors.New("idempotency key reused with different request")
	// Ключ не найден.
	ErrIdempotencyKeyNotFound = errors.New("idempotency key not found")
)

// InsufficientStockError описывает нехватку остатка по одному продукту.
type InsufficientStockError struct {
	Product   string
	Requested int64
	Available int64
}

// Shortfall возвращает, сколько единиц не хватает до запрошенного количества.
func (e *InsufficientStockError) Shortfall() int64 {
	if e.Available >= e.Requested {
		return 0
	}
	return e.Requested - e.Available
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d, shortfall %d",
		e.Product, e.Requested, e.Available, e.Shortfall())
}

// Is позволяет сравнивать через errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// InsufficientStockErrors собирает нехватку по всем продуктам корзины,
// чтобы покупатель увидел весь список сразу.
type InsufficientStockErrors []*InsufficientStockError

func (e InsufficientStockErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, item := range e {
		parts = append(parts, item.Error())
	}
	return strings.Join(parts, "; ")
}

// Is позволяет сравнивать через errors.Is(err, ErrInsufficientStock).
func (e InsufficientStockErrors) Is(target error) bool {
	return target == ErrInsufficientStock && len(e) > 0
}

// Unwrap отдаёт отдельные ошибки для errors.As по *InsufficientStockError.
func (e InsufficientStockErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, item := range e {
		errs = append(errs, item)
	}
	return errs
}

// Sorted возвращает копию, упорядоченную по имени продукта.
func (e InsufficientStockErrors) Sorted() InsufficientStockErrors {
	out := append(InsufficientStockErrors(nil), e...)
	sort.Slice(out, func(i, j int) bool { return out[i].Product < out[j].Product })
	return out
}

// ShortfallFor возвращает нехватку по продукту (0, если продукт не в списке).
func ShortfallFor(err error, product string) int64 {
	var many InsufficientStockErrors
	if errors.As(err, &many) {
		for _, item := range many {
			if item.Product == product {
				return item.Shortfall()
			}
		}
		return 0
	}
	var single *InsufficientStockError
	if errors.As(err, &single) && single.Product == product {
		return single.Shortfall()
	}
	return 0
}

// IsVersionConflict проверяет, является ли ошибка конфликтом версий.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrOrderVersionConflict)
}

// IsRetryable сообщает, стоит ли повторять checkout после ошибки.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrentModification)
}

// IsIdempotencyConflict проверяет, что ключ идемпотентности уже занят.
func IsIdempotencyConflict(err error) bool {
	return errors.Is(err, ErrIdempotencyKeyAlreadyExists) || errors.Is(err, ErrIdempotencyHashMismatch)
}
