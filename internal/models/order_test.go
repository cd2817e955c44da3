package models

import "testing"

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from, to   OrderStatus
		allowed    bool
		wantEffect InventoryEffect
	}{
		{OrderPending, OrderProcessing, true, EffectNone},
		{OrderPending, OrderCancelled, true, EffectRestore},
		{OrderProcessing, OrderCompleted, true, EffectNone},
		{OrderProcessing, OrderCancelled, true, EffectRestore},
		{OrderCancelled, OrderPending, true, EffectDeduct},
		{OrderCancelled, OrderProcessing, true, EffectDeduct},
		{OrderCompleted, OrderCancelled, false, EffectNone},
		{OrderCompleted, OrderPending, false, EffectNone},
		{OrderCancelled, OrderCompleted, false, EffectNone},
		{OrderPending, OrderCompleted, false, EffectNone},
	}
	for _, tc := range cases {
		effect, ok := TransitionEffect(tc.from, tc.to)
		if ok != tc.allowed {
			t.Fatalf("%s -> %s: allowed = %v, want %v", tc.from, tc.to, ok, tc.allowed)
		}
		if ok && effect != tc.wantEffect {
			t.Fatalf("%s -> %s: effect = %v, want %v", tc.from, tc.to, effect, tc.wantEffect)
		}
		if CanTransition(tc.from, tc.to) != tc.allowed {
			t.Fatalf("%s -> %s: CanTransition disagrees with TransitionEffect", tc.from, tc.to)
		}
	}
}

func TestHoldsStock(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderProcessing, OrderCompleted} {
		if !s.HoldsStock() {
			t.Fatalf("%s should hold stock", s)
		}
	}
	if OrderCancelled.HoldsStock() {
		t.Fatal("cancelled orders hold no stock")
	}
}

func TestPaymentMethodClassification(t *testing.T) {
	full := []PaymentMethod{PaymentCash, PaymentCard, PaymentDigital}
	for _, m := range full {
		if !m.IsFullPayment() {
			t.Fatalf("%s should be a full payment method", m)
		}
	}
	for _, m := range []PaymentMethod{PaymentDue, PaymentPartial} {
		if m.IsFullPayment() {
			t.Fatalf("%s should not be a full payment method", m)
		}
	}
	if PaymentMethod("Cheque").Valid() {
		t.Fatal("unknown methods must be invalid")
	}
}
