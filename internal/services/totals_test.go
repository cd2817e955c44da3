package services

import (
	"testing"

	"shop_manager/internal/models"
)

func TestComputeTotalsFullPayment(t *testing.T) {
	for _, method := range []models.PaymentMethod{models.PaymentCash, models.PaymentCard, models.PaymentDigital} {
		got := ComputeTotals(TotalsInput{SalePrice: 150, Quantity: 5, PaymentMethod: method})
		if got.Total != 750 || got.GrandTotal != 750 {
			t.Fatalf("%s: expected total 750 got %+v", method, got)
		}
		if got.PaidAmount != 750 || got.DueAmount != 0 {
			t.Fatalf("%s: full payment must settle the grand total, got %+v", method, got)
		}
	}
}

func TestComputeTotalsDueOnly(t *testing.T) {
	got := ComputeTotals(TotalsInput{SalePrice: 100, Quantity: 3, PaymentMethod: models.PaymentDue})
	if got.PaidAmount != 0 || got.DueAmount != 300 {
		t.Fatalf("due method must leave everything due, got %+v", got)
	}
}

func TestComputeTotalsPartialClamping(t *testing.T) {
	cases := []struct {
		paid     float64
		wantPaid float64
	}{
		{paid: 120, wantPaid: 120},
		{paid: -50, wantPaid: 0},
		{paid: 9999, wantPaid: 200}, // clamped to the grand total
		{paid: 0, wantPaid: 0},
	}
	for _, tc := range cases {
		got := ComputeTotals(TotalsInput{SalePrice: 100, Quantity: 2, PaymentMethod: models.PaymentPartial, PaidAmount: tc.paid})
		if got.PaidAmount != tc.wantPaid {
			t.Fatalf("paid %v: expected %v got %v", tc.paid, tc.wantPaid, got.PaidAmount)
		}
		if got.DueAmount != got.GrandTotal-got.PaidAmount {
			t.Fatalf("paid %v: due must equal grand total minus paid, got %+v", tc.paid, got)
		}
		if got.DueAmount < 0 {
			t.Fatalf("paid %v: due went negative: %+v", tc.paid, got)
		}
	}
}

func TestComputeTotalsCallerOverrides(t *testing.T) {
	got := ComputeTotals(TotalsInput{SalePrice: 100, Quantity: 2, PaymentMethod: models.PaymentCash, Total: 180, GrandTotal: 170})
	if got.Total != 180 {
		t.Fatalf("caller-supplied total must win, got %v", got.Total)
	}
	if got.GrandTotal != 170 || got.PaidAmount != 170 {
		t.Fatalf("caller-supplied grand total must win, got %+v", got)
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	for _, method := range []models.PaymentMethod{models.PaymentCash, models.PaymentDue, models.PaymentPartial} {
		first := ComputeTotals(TotalsInput{SalePrice: 75.5, Quantity: 4, PaymentMethod: method, PaidAmount: 100})

		// Recompute from the first result's own fields, as a stored order would.
		second := ComputeTotals(TotalsInput{SalePrice: 75.5, Quantity: 4, PaymentMethod: method, PaidAmount: first.PaidAmount})
		if first != second {
			t.Fatalf("%s: recomputation changed the split: %+v vs %+v", method, first, second)
		}
	}
}
