package services

import (
	"errors"
	"log"
	"time"

	"shop_manager/internal/models"
	"shop_manager/internal/redis"
	"shop_manager/internal/repository"

	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	ProductID       string               `json:"productId"`
	ProductName     string               `json:"productName"`
	Category        string               `json:"category"`
	UnitPrice       float64              `json:"unitPrice"`
	SalePrice       float64              `json:"salePrice"`
	Quantity        int                  `json:"quantity"`
	Unit            string               `json:"unit"`
	Total           float64              `json:"total"`
	GrandTotal      float64              `json:"grandTotal"`
	CustomerName    string               `json:"customerName"`
	CustomerPhone   string               `json:"customerPhone"`
	CustomerAddress string               `json:"customerAddress"`
	PaymentMethod   models.PaymentMethod `json:"paymentMethod"`
	PaidAmount      float64              `json:"paidAmount"`
	Status          models.OrderStatus   `json:"status"`
	CreatedBy       string               `json:"createdBy"`
}

// UpdateOrderRequest carries partial changes; nil fields are left untouched.
type UpdateOrderRequest struct {
	Quantity        *int                  `json:"quantity"`
	SalePrice       *float64              `json:"salePrice"`
	UnitPrice       *float64              `json:"unitPrice"`
	PaymentMethod   *models.PaymentMethod `json:"paymentMethod"`
	PaidAmount      *float64              `json:"paidAmount"`
	Status          *models.OrderStatus   `json:"status"`
	CustomerName    *string               `json:"customerName"`
	CustomerPhone   *string               `json:"customerPhone"`
	CustomerAddress *string               `json:"customerAddress"`
	UpdatedBy       string                `json:"updatedBy"`
}

type OrderService interface {
	CreateOrder(req CreateOrderRequest) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	ListOrders(filter repository.OrderFilter) ([]models.Order, int64, error)
	UpdateOrder(id uint, req UpdateOrderRequest) (*models.Order, error)
	DeleteOrder(id uint) (*models.Order, int, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	inventory InventoryService
	cache     *redis.Client
}

func NewOrderService(orderRepo repository.OrderRepository, inventory InventoryService, cache *redis.Client) OrderService {
	return &orderService{orderRepo: orderRepo, inventory: inventory, cache: cache}
}

// CreateOrder deducts stock first and only then persists the order. If the
// insert fails the deduction is compensated, so no failure path leaves stock
// deducted without a stored order (racing creates excepted, see Deduct).
func (s *orderService) CreateOrder(req CreateOrderRequest) (*models.Order, error) {
	if req.ProductID == "" || req.ProductName == "" || req.SalePrice <= 0 {
		return nil, NewValidationError("productId, productName, salePrice and quantity are required")
	}
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCash
	}
	if !paymentMethod.Valid() {
		return nil, NewValidationError("unknown payment method %q", paymentMethod)
	}

	status := req.Status
	if status == "" {
		status = models.OrderPending
	}
	if !status.Valid() || status == models.OrderCancelled {
		return nil, NewValidationError("orders cannot be created with status %q", status)
	}

	product, err := s.inventory.Deduct(req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}

	totals := ComputeTotals(TotalsInput{
		SalePrice:     req.SalePrice,
		Quantity:      req.Quantity,
		PaymentMethod: paymentMethod,
		PaidAmount:    req.PaidAmount,
		Total:         req.Total,
		GrandTotal:    req.GrandTotal,
	})

	order := &models.Order{
		OrderNo:         s.nextOrderNumber(time.Now()),
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		Category:        req.Category,
		UnitPrice:       req.UnitPrice,
		SalePrice:       req.SalePrice,
		Quantity:        req.Quantity,
		Unit:            defaultString(req.Unit, "pcs"),
		CustomerName:    defaultString(req.CustomerName, "Walk-in Customer"),
		CustomerPhone:   defaultString(req.CustomerPhone, "N/A"),
		CustomerAddress: defaultString(req.CustomerAddress, "N/A"),
		PaymentMethod:   paymentMethod,
		Status:          status,
		OriginalStock:   product.StockQTY + req.Quantity,
		RemainingStock:  product.StockQTY,
		OrderDate:       time.Now(),
		CreatedBy:       defaultString(req.CreatedBy, "user"),
	}
	ApplyTotals(order, totals)

	if err := s.orderRepo.Create(order); err != nil {
		s.compensateRestore(req.ProductID, req.Quantity)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateOrderNumber
		}
		return nil, err
	}

	s.invalidateSummaries()
	return order, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders(filter repository.OrderFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// UpdateOrder applies partial changes. Stock follows from whether the order
// holds deducted stock before and after the update: a quantity change on a
// held order adjusts by the delta, cancelling restores the previously held
// quantity, reactivating deducts the new quantity. Inventory failure aborts
// the update with nothing persisted.
func (s *orderService) UpdateOrder(id uint, req UpdateOrderRequest) (*models.Order, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	oldQuantity := order.Quantity
	oldStatus := order.Status

	newQuantity := oldQuantity
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		newQuantity = *req.Quantity
	}

	newStatus := oldStatus
	if req.Status != nil && *req.Status != oldStatus {
		if !req.Status.Valid() {
			return nil, NewValidationError("unknown status %q", *req.Status)
		}
		if !models.CanTransition(oldStatus, *req.Status) {
			return nil, NewValidationError("cannot change status from %s to %s", oldStatus, *req.Status)
		}
		newStatus = *req.Status
	}

	if req.PaymentMethod != nil && !req.PaymentMethod.Valid() {
		return nil, NewValidationError("unknown payment method %q", *req.PaymentMethod)
	}

	// Inventory first; the order row is only written once stock succeeded.
	heldBefore := oldStatus.HoldsStock()
	heldAfter := newStatus.HoldsStock()
	var deducted, restored int
	switch {
	case heldBefore && heldAfter:
		delta := newQuantity - oldQuantity
		if delta > 0 {
			if _, err := s.inventory.Deduct(order.ProductID, delta); err != nil {
				return nil, err
			}
			deducted = delta
		} else if delta < 0 {
			if _, err := s.inventory.Restore(order.ProductID, -delta); err != nil {
				return nil, err
			}
			restored = -delta
		}
	case heldBefore && !heldAfter:
		if _, err := s.inventory.Restore(order.ProductID, oldQuantity); err != nil {
			return nil, err
		}
		restored = oldQuantity
	case !heldBefore && heldAfter:
		if _, err := s.inventory.Deduct(order.ProductID, newQuantity); err != nil {
			return nil, err
		}
		deducted = newQuantity
	}

	order.Quantity = newQuantity
	order.Status = newStatus
	if req.SalePrice != nil {
		order.SalePrice = *req.SalePrice
	}
	if req.UnitPrice != nil {
		order.UnitPrice = *req.UnitPrice
	}
	if req.PaymentMethod != nil {
		order.PaymentMethod = *req.PaymentMethod
	}
	if req.PaidAmount != nil {
		order.PaidAmount = *req.PaidAmount
	}
	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		order.CustomerPhone = *req.CustomerPhone
	}
	if req.CustomerAddress != nil {
		order.CustomerAddress = *req.CustomerAddress
	}
	if req.UpdatedBy != "" {
		order.UpdatedBy = req.UpdatedBy
	}

	totals := ComputeTotals(TotalsInput{
		SalePrice:     order.SalePrice,
		Quantity:      order.Quantity,
		PaymentMethod: order.PaymentMethod,
		PaidAmount:    order.PaidAmount,
	})
	ApplyTotals(order, totals)

	if err := s.orderRepo.Update(order); err != nil {
		if deducted > 0 {
			s.compensateRestore(order.ProductID, deducted)
		}
		if restored > 0 {
			s.compensateDeduct(order.ProductID, restored)
		}
		return nil, err
	}

	s.invalidateSummaries()
	return order, nil
}

// DeleteOrder removes the record, restoring the held quantity first unless the
// order was already cancelled. Returns how many units were restored.
func (s *orderService) DeleteOrder(id uint) (*models.Order, int, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, 0, err
	}

	restored := 0
	if order.Status.HoldsStock() {
		if _, err := s.inventory.Restore(order.ProductID, order.Quantity); err != nil {
			return nil, 0, err
		}
		restored = order.Quantity
	}

	if err := s.orderRepo.Delete(order.ID); err != nil {
		if restored > 0 {
			s.compensateDeduct(order.ProductID, restored)
		}
		return nil, 0, err
	}

	s.invalidateSummaries()
	return order, restored, nil
}

// compensateRestore undoes a deduction after a failed order write. Best
// effort: a failure here is the non-atomicity gap between the two tables and
// is only logged.
func (s *orderService) compensateRestore(productID string, quantity int) {
	if _, err := s.inventory.Restore(productID, quantity); err != nil {
		log.Printf("failed to restore %d units of %s after aborted order write: %v", quantity, productID, err)
	}
}

func (s *orderService) compensateDeduct(productID string, quantity int) {
	if _, err := s.inventory.Deduct(productID, quantity); err != nil {
		log.Printf("failed to re-deduct %d units of %s after aborted order write: %v", quantity, productID, err)
	}
}

func (s *orderService) invalidateSummaries() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSummaries(); err != nil {
		log.Printf("failed to invalidate summary cache: %v", err)
	}
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
