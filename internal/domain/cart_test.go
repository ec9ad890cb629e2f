package domain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
)

func TestCartAdd_MergesSameProduct(t *testing.T) {
	cart := domain.Cart{UserID: "user-1"}

	if err := cart.Add(domain.CartItem{ProductName: "Milk", Qty: 2, PriceMinor: 250}); err != nil {
		t.Fatalf("add milk: %v", err)
	}
	if err := cart.Add(domain.CartItem{ProductName: "Bread", Qty: 1, PriceMinor: 199}); err != nil {
		t.Fatalf("add bread: %v", err)
	}
	if err := cart.Add(domain.CartItem{ProductName: "Milk", Qty: 3, PriceMinor: 300}); err != nil {
		t.Fatalf("add milk again: %v", err)
	}

	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Items))
	}
	if cart.Items[0].Qty != 5 || cart.Items[0].PriceMinor != 250 {
		t.Fatalf("milk line = %+v, want qty 5 price 250", cart.Items[0])
	}
	if cart.TotalMinor() != 5*250+199 {
		t.Fatalf("total = %d", cart.TotalMinor())
	}
}

func TestCartAdd_RejectsInvalidItem(t *testing.T) {
	cart := domain.Cart{UserID: "user-1"}
	if err := cart.Add(domain.CartItem{ProductName: "Milk", Qty: 0, PriceMinor: 250}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if len(cart.Items) != 0 {
		t.Fatal("invalid item must not be added")
	}
}

func TestCartSetQty_ClampsToOne(t *testing.T) {
	cart := domain.Cart{UserID: "user-1", Items: []domain.CartItem{{ProductName: "Milk", Qty: 3, PriceMinor: 250}}}

	if err := cart.SetQty(0, -4); err != nil {
		t.Fatalf("set qty: %v", err)
	}
	if cart.Items[0].Qty != 1 {
		t.Fatalf("qty = %d, want 1", cart.Items[0].Qty)
	}
	if err := cart.SetQty(3, 2); !errors.Is(err, domain.ErrItemIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrItemIndexOutOfRange", err)
	}
}

func TestCartRemove(t *testing.T) {
	cart := domain.Cart{UserID: "user-1", Items: []domain.CartItem{
		{ProductName: "Milk", Qty: 1, PriceMinor: 250},
		{ProductName: "Bread", Qty: 1, PriceMinor: 199},
		{ProductName: "Eggs", Qty: 12, PriceMinor: 30},
	}}

	if err := cart.Remove(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(cart.Items) != 2 || cart.Items[0].ProductName != "Milk" || cart.Items[1].ProductName != "Eggs" {
		t.Fatalf("unexpected items after remove: %+v", cart.Items)
	}
	if err := cart.Remove(-1); !errors.Is(err, domain.ErrItemIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrItemIndexOutOfRange", err)
	}
}

func TestCartValidate(t *testing.T) {
	if err := (domain.Cart{UserID: "user-1"}).Validate(); !errors.Is(err, domain.ErrCartEmpty) {
		t.Fatalf("empty cart err = %v", err)
	}
	if err := (domain.Cart{Items: []domain.CartItem{{ProductName: "Milk", Qty: 1}}}).Validate(); !errors.Is(err, domain.ErrUserRequired) {
		t.Fatalf("anonymous cart err = %v", err)
	}
}

func TestCartDemand_AggregatesByProduct(t *testing.T) {
	cart := domain.Cart{UserID: "user-1", Items: []domain.CartItem{
		{ProductName: "Milk", Qty: 2, PriceMinor: 250},
		{ProductName: "Bread", Qty: 1, PriceMinor: 199},
		{ProductName: "Milk", Qty: 3, PriceMinor: 240},
	}}

	demand := cart.Demand()
	if len(demand) != 2 {
		t.Fatalf("expected 2 products, got %+v", demand)
	}
	if demand[0] != (domain.ProductDemand{ProductName: "Milk", Qty: 5}) {
		t.Fatalf("milk demand = %+v", demand[0])
	}
	if demand[1] != (domain.ProductDemand{ProductName: "Bread", Qty: 1}) {
		t.Fatalf("bread demand = %+v", demand[1])
	}
}

func TestCartAdd_RejectsQtyOverflow(t *testing.T) {
	cart := domain.Cart{UserID: "user-1"}
	if err := cart.Add(domain.CartItem{ProductName: "Milk", Qty: math.MaxInt32 - 1, PriceMinor: 250}); err != nil {
		t.Fatalf("add milk: %v", err)
	}

	err := cart.Add(domain.CartItem{ProductName: "Milk", Qty: 2, PriceMinor: 250})
	if !errors.Is(err, domain.ErrQtyInvalid) {
		t.Fatalf("expected ErrQtyInvalid, got %v", err)
	}
	if cart.Items[0].Qty != math.MaxInt32-1 {
		t.Fatalf("qty changed after rejected add: %d", cart.Items[0].Qty)
	}

	if err := cart.Add(domain.CartItem{ProductName: "Milk", Qty: 1, PriceMinor: 250}); err != nil {
		t.Fatalf("add up to the limit: %v", err)
	}
}

func TestCartValidate_RejectsDemandOverflow(t *testing.T) {
	cart := domain.Cart{UserID: "user-1", Items: []domain.CartItem{
		{ProductName: "Milk", Qty: math.MaxInt32, PriceMinor: 250},
		{ProductName: "Milk", Qty: 5, PriceMinor: 240},
	}}

	if err := cart.Validate(); !errors.Is(err, domain.ErrQtyInvalid) {
		t.Fatalf("expected ErrQtyInvalid, got %v", err)
	}
	demand := cart.Demand()
	if len(demand) != 1 || demand[0].Qty != math.MaxInt32 {
		t.Fatalf("demand must saturate, got %+v", demand)
	}
}

func TestCartSubtract_KeepsLinesAddedAfterSnapshot(t *testing.T) {
	ordered := domain.Cart{UserID: "user-1", Items: []domain.CartItem{
		{ProductName: "Milk", Qty: 2, PriceMinor: 250},
	}}
	current := domain.Cart{UserID: "user-1", Items: []domain.CartItem{
		{ProductName: "Milk", Qty: 3, PriceMinor: 250},
		{ProductName: "Bread", Qty: 1, PriceMinor: 199},
	}}

	left := current.Subtract(ordered)
	want := []domain.CartItem{
		{ProductName: "Milk", Qty: 1, PriceMinor: 250},
		{ProductName: "Bread", Qty: 1, PriceMinor: 199},
	}
	if len(left.Items) != len(want) {
		t.Fatalf("items = %+v", left.Items)
	}
	for i := range want {
		if left.Items[i] != want[i] {
			t.Fatalf("item %d = %+v, want %+v", i, left.Items[i], want[i])
		}
	}

	if rest := ordered.Subtract(ordered); len(rest.Items) != 0 {
		t.Fatalf("ordered cart must become empty, got %+v", rest.Items)
	}
}
