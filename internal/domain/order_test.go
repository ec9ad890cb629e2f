package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
)

// helper для создания заказа из корзины с одной позицией молока.
func makeOrder() domain.Order {
	cart := domain.Cart{
		UserID: "user-1",
		Items:  []domain.CartItem{{ProductName: "Milk", Qty: 4, PriceMinor: 250}},
	}
	return domain.NewOrderFromCart("order-1", cart, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))
}

func TestNewOrderFromCart(t *testing.T) {
	order := makeOrder()

	if order.TotalMinor != 1000 {
		t.Fatalf("total = %d, want 1000", order.TotalMinor)
	}
	if order.PaymentState != domain.PaymentStateUnpaid {
		t.Fatalf("state = %s, want unpaid", order.PaymentState)
	}
	if !order.BilledAt.IsZero() || order.PaymentMethod != domain.PaymentMethodNone {
		t.Fatalf("new order must not be billed: %+v", order)
	}
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
	}{
		{name: "no user", mut: func(o *domain.Order) { o.UserID = "" }},
		{name: "no items", mut: func(o *domain.Order) { o.Items = nil; o.TotalMinor = 0 }},
		{name: "qty invalid", mut: func(o *domain.Order) { o.Items[0].Qty = 0 }},
		{name: "price invalid", mut: func(o *domain.Order) { o.Items[0].PriceMinor = -5 }},
		{name: "amount mismatch", mut: func(o *domain.Order) { o.TotalMinor = 999 }},
		{name: "unknown state", mut: func(o *domain.Order) { o.PaymentState = "refunded" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder().Clone()
			tc.mut(&order)

			if len(order.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}

func TestConfirmPayment_OnlyOnce(t *testing.T) {
	order := makeOrder()
	billedAt := time.Date(2024, 1, 11, 9, 30, 0, 0, time.UTC)

	if err := order.ConfirmPayment(domain.PaymentMethodCard, billedAt); err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	if !order.IsPaid() || order.PaymentMethod != domain.PaymentMethodCard || !order.BilledAt.Equal(billedAt) {
		t.Fatalf("unexpected paid order: %+v", order)
	}

	err := order.ConfirmPayment(domain.PaymentMethodCash, billedAt.Add(time.Hour))
	if !errors.Is(err, domain.ErrAlreadyConfirmed) {
		t.Fatalf("second confirm err = %v, want ErrAlreadyConfirmed", err)
	}
	if order.PaymentMethod != domain.PaymentMethodCard || !order.BilledAt.Equal(billedAt) {
		t.Fatalf("second confirm must not re-stamp: %+v", order)
	}
}

func TestConfirmPayment_InvalidMethod(t *testing.T) {
	order := makeOrder()
	if err := order.ConfirmPayment("bitcoin", time.Now()); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if order.IsPaid() {
		t.Fatal("invalid method must not change state")
	}
}

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.PaymentMethod
		ok   bool
	}{
		{raw: "card", want: domain.PaymentMethodCard, ok: true},
		{raw: " Tarjeta ", want: domain.PaymentMethodCard, ok: true},
		{raw: "transferencia", want: domain.PaymentMethodTransfer, ok: true},
		{raw: "efectivo", want: domain.PaymentMethodCash, ok: true},
		{raw: "CASH", want: domain.PaymentMethodCash, ok: true},
		{raw: "", ok: false},
		{raw: "crypto", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := domain.ParsePaymentMethod(tc.raw)
			if tc.ok {
				if err != nil || got != tc.want {
					t.Fatalf("ParsePaymentMethod(%q) = %q, %v; want %q", tc.raw, got, err, tc.want)
				}
				return
			}
			if !errors.Is(err, domain.ErrPaymentMethodInvalid) {
				t.Fatalf("ParsePaymentMethod(%q) err = %v, want ErrPaymentMethodInvalid", tc.raw, err)
			}
		})
	}
}

func TestRepeatCart_UsesSnapshotPrices(t *testing.T) {
	order := makeOrder()
	order.Items = append(order.Items, domain.OrderItem{ProductName: "Bread", Qty: 1, PriceMinor: 199})
	order.TotalMinor += 199

	first := order.RepeatCart()
	second := order.RepeatCart()

	if len(first.Items) != 2 || first.UserID != order.UserID {
		t.Fatalf("unexpected repeated cart: %+v", first)
	}
	for i, item := range order.Items {
		got := first.Items[i]
		if got.ProductName != item.ProductName || got.Qty != item.Qty || got.PriceMinor != item.PriceMinor {
			t.Fatalf("line %d = %+v, want %+v", i, got, item)
		}
	}
	first.Items[0].Qty = 100
	if second.Items[0].Qty != 4 || order.Items[0].Qty != 4 {
		t.Fatal("repeated carts must not share storage with the order")
	}
}
