package services

import (
	"errors"

	"shop_manager/internal/models"
	"shop_manager/internal/repository"

	"gorm.io/gorm"
)

// InventoryService applies signed stock adjustments to products. Deduct and
// Restore each issue exactly one product write.
type InventoryService interface {
	Deduct(productID string, quantity int) (*models.Product, error)
	Restore(productID string, quantity int) (*models.Product, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
}

func NewInventoryService(productRepo repository.ProductRepository) InventoryService {
	return &inventoryService{productRepo: productRepo}
}

// Deduct removes quantity units of stock. The decrement is conditional on
// sufficient stock, so a failed sufficiency check leaves the row untouched
// even under concurrent requests.
func (s *inventoryService) Deduct(productID string, quantity int) (*models.Product, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	affected, err := s.productRepo.DeductStock(productID, quantity)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Distinguish a missing product from an under-stocked one.
		product, err := s.productRepo.GetByProductID(productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}
		return nil, &InsufficientStockError{
			ProductID: productID,
			Available: product.StockQTY,
			Requested: quantity,
		}
	}

	return s.productRepo.GetByProductID(productID)
}

// Restore adds quantity units of stock back. There is no upper bound: restoring
// more than was ever deducted is accepted.
func (s *inventoryService) Restore(productID string, quantity int) (*models.Product, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	affected, err := s.productRepo.RestoreStock(productID, quantity)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProductNotFound
	}

	return s.productRepo.GetByProductID(productID)
}
