package domain

import (
	"strings"
	"time"
)

// OrderItem хранит неизменяемый снимок строки корзины на момент покупки.
type OrderItem struct {
	ProductName string
	Qty         int32
	// Цена за единицу, действовавшая при оформлении.
	PriceMinor int64
}

// Order описывает покупку. Позиции и сумма не меняются после создания,
// меняется только состояние оплаты.
type Order struct {
	ID            string
	UserID        string
	Items         []OrderItem
	TotalMinor    int64
	PaymentState  PaymentState
	PaymentMethod PaymentMethod
	PurchasedAt   time.Time
	// BilledAt заполняется один раз при переходе в PaymentStatePaid.
	BilledAt time.Time
	Version  int64
}

// NewOrderFromCart строит заказ в состоянии unpaid со снимком позиций корзины.
func NewOrderFromCart(id string, cart Cart, purchasedAt time.Time) Order {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, OrderItem{
			ProductName: item.ProductName,
			Qty:         item.Qty,
			PriceMinor:  item.PriceMinor,
		})
	}
	return Order{
		ID:           id,
		UserID:       cart.UserID,
		Items:        items,
		TotalMinor:   cart.TotalMinor(),
		PaymentState: PaymentStateUnpaid,
		PurchasedAt:  purchasedAt.UTC(),
	}
}

// IsPaid сообщает, подтверждена ли оплата.
func (o Order) IsPaid() bool {
	return o.PaymentState == PaymentStatePaid
}

// ConfirmPayment переводит заказ unpaid → paid. Повторный вызов возвращает
// ErrAlreadyConfirmed и не трогает метод и время выставления счёта.
func (o *Order) ConfirmPayment(method PaymentMethod, billedAt time.Time) error {
	if !method.Valid() {
		return ErrPaymentMethodInvalid
	}
	if o.IsPaid() {
		return ErrAlreadyConfirmed
	}
	o.PaymentState = PaymentStatePaid
	o.PaymentMethod = method
	o.BilledAt = billedAt.UTC()
	return nil
}

// RepeatCart строит корзину из снимка заказа. Цены берутся из снимка как есть,
// текущий каталог не учитывается.
func (o Order) RepeatCart() Cart {
	items := make([]CartItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, CartItem{
			ProductName: item.ProductName,
			Qty:         item.Qty,
			PriceMinor:  item.PriceMinor,
		})
	}
	return Cart{UserID: o.UserID, Items: items}
}

// Clone возвращает копию с независимым срезом позиций.
func (o Order) Clone() Order {
	out := o
	out.Items = append([]OrderItem(nil), o.Items...)
	return out
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if strings.TrimSpace(o.UserID) == "" {
		errs = append(errs, ErrUserRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrCartEmpty)
	}

	var calc int64
	for _, item := range o.Items {
		if strings.TrimSpace(item.ProductName) == "" {
			errs = append(errs, ErrProductNameRequired)
		}
		if item.Qty <= 0 {
			errs = append(errs, ErrQtyInvalid)
		}
		if item.PriceMinor < 0 {
			errs = append(errs, ErrPriceInvalid)
		}
		calc += int64(item.Qty) * item.PriceMinor
	}
	if calc != o.TotalMinor {
		errs = append(errs, ErrAmountMismatch)
	}
	if !o.PaymentState.Valid() {
		errs = append(errs, ErrValidation)
	}

	return errs
}
