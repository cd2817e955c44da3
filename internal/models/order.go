package models

import (
	"time"
)

// Order is a single-product sale. Stock is deducted when the order is created
// and restored when it is cancelled or deleted; OriginalStock/RemainingStock
// record the product stock around the creating deduction.
type Order struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	OrderNo     string `json:"order_no" gorm:"unique;not null"` // <YY><MM><NNN>, generated
	ProductID   string `json:"product_id" gorm:"not null"`
	ProductName string `json:"product_name" gorm:"not null"`
	Category    string `json:"category"`
	UnitPrice   float64 `json:"unit_price"`
	SalePrice   float64 `json:"sale_price" gorm:"not null"`
	Quantity    int     `json:"quantity" gorm:"not null"`
	Unit        string  `json:"unit" gorm:"default:'pcs'"`

	CustomerName    string `json:"customer_name" gorm:"default:'Walk-in Customer'"`
	CustomerPhone   string `json:"customer_phone" gorm:"default:'N/A'"`
	CustomerAddress string `json:"customer_address" gorm:"default:'N/A'"`

	Total         float64       `json:"total" gorm:"not null"`
	TotalAmount   float64       `json:"total_amount" gorm:"not null"`
	GrandTotal    float64       `json:"grand_total" gorm:"not null"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"default:'Cash'"`
	PaidAmount    float64       `json:"paid_amount"`
	DueAmount     float64       `json:"due_amount"`

	Status OrderStatus `json:"status" gorm:"default:'Pending'"`

	OriginalStock  int `json:"original_stock"`
	RemainingStock int `json:"remaining_stock"`

	OrderDate time.Time `json:"order_date"`
	CreatedBy string    `json:"created_by" gorm:"default:'user'"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "Cash"
	PaymentCard    PaymentMethod = "Card"
	PaymentDigital PaymentMethod = "Digital"
	PaymentDue     PaymentMethod = "Due"
	PaymentPartial PaymentMethod = "Partial"
)

// IsFullPayment reports whether the method settles the grand total at order time.
func (m PaymentMethod) IsFullPayment() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentDigital:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentDigital, PaymentDue, PaymentPartial:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// HoldsStock reports whether an order in this status holds deducted stock.
func (s OrderStatus) HoldsStock() bool {
	return s != OrderCancelled
}

// InventoryEffect is the stock side effect of a status transition.
type InventoryEffect int

const (
	EffectNone InventoryEffect = iota
	EffectRestore
	EffectDeduct
)

var validNext = map[OrderStatus]map[OrderStatus]InventoryEffect{
	OrderPending:    {OrderProcessing: EffectNone, OrderCancelled: EffectRestore},
	OrderProcessing: {OrderCompleted: EffectNone, OrderCancelled: EffectRestore},
	OrderCompleted:  {},
	OrderCancelled:  {OrderPending: EffectDeduct, OrderProcessing: EffectDeduct},
}

func CanTransition(from, to OrderStatus) bool {
	_, ok := validNext[from][to]
	return ok
}

// TransitionEffect returns the inventory side effect of moving from one status
// to another, and whether the transition is allowed at all.
func TransitionEffect(from, to OrderStatus) (InventoryEffect, bool) {
	eff, ok := validNext[from][to]
	return eff, ok
}
