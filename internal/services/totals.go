package services

import (
	"shop_manager/internal/models"
)

// TotalsInput carries the fields the totals calculation derives from. Total
// and GrandTotal override the computed values when set by the caller.
type TotalsInput struct {
	SalePrice     float64
	Quantity      int
	PaymentMethod models.PaymentMethod
	PaidAmount    float64 // only consulted for the Partial method
	Total         float64 // optional caller override
	GrandTotal    float64 // optional caller override
}

// Totals is the derived financial state of an order.
type Totals struct {
	Total      float64
	GrandTotal float64
	PaidAmount float64
	DueAmount  float64
}

// ComputeTotals derives line total, grand total and the paid/due split. It is
// pure and idempotent: feeding a stored order's own fields back in reproduces
// the stored split.
func ComputeTotals(in TotalsInput) Totals {
	total := in.SalePrice * float64(in.Quantity)
	if in.Total > 0 {
		total = in.Total
	}

	grandTotal := total
	if in.GrandTotal > 0 {
		grandTotal = in.GrandTotal
	}

	var paid float64
	switch {
	case in.PaymentMethod.IsFullPayment():
		paid = grandTotal
	case in.PaymentMethod == models.PaymentDue:
		paid = 0
	default: // Partial
		paid = in.PaidAmount
		if paid < 0 {
			paid = 0
		}
		if paid > grandTotal {
			paid = grandTotal
		}
	}

	return Totals{
		Total:      total,
		GrandTotal: grandTotal,
		PaidAmount: paid,
		DueAmount:  grandTotal - paid,
	}
}

// ApplyTotals writes the derived totals back onto an order.
func ApplyTotals(order *models.Order, t Totals) {
	order.Total = t.Total
	order.TotalAmount = t.GrandTotal
	order.GrandTotal = t.GrandTotal
	order.PaidAmount = t.PaidAmount
	order.DueAmount = t.DueAmount
}
