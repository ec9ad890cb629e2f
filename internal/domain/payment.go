package domain

import "strings"

// PaymentState описывает состояние оплаты заказа.
type PaymentState string

const (
	// PaymentStateUnpaid: заказ создан, оплата ещё не подтверждена.
	PaymentStateUnpaid PaymentState = "unpaid"
	// PaymentStatePaid: оплата подтверждена, время выставления счёта зафиксировано.
	PaymentStatePaid PaymentState = "paid"
)

// Valid проверяет, что состояние относится к поддерживаемым значениям.
func (s PaymentState) Valid() bool {
	return s == PaymentStateUnpaid || s == PaymentStatePaid
}

// PaymentMethod хранит способ оплаты, выбранный при подтверждении.
type PaymentMethod string

const (
	PaymentMethodNone     PaymentMethod = ""
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodCash     PaymentMethod = "cash"
)

// Старые клиенты присылают испанские названия методов.
var paymentMethodAliases = map[string]PaymentMethod{
	"transfer":      PaymentMethodTransfer,
	"transferencia": PaymentMethodTransfer,
	"card":          PaymentMethodCard,
	"tarjeta":       PaymentMethodCard,
	"cash":          PaymentMethodCash,
	"efectivo":      PaymentMethodCash,
}

// ParsePaymentMethod нормализует строку в PaymentMethod или возвращает ErrPaymentMethodInvalid.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	method, ok := paymentMethodAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return PaymentMethodNone, ErrPaymentMethodInvalid
	}
	return method, nil
}

// Valid проверяет, что метод относится к допустимому набору.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodTransfer, PaymentMethodCard, PaymentMethodCash:
		return true
	default:
		return false
	}
}
