package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"shop_manager/internal/models"
	"shop_manager/internal/redis"
	"shop_manager/internal/repository"
	"shop_manager/pkg/imaging"

	"gorm.io/gorm"
)

// DropdownProduct is the trimmed product view used by the order entry form.
// Only in-stock products are listed.
type DropdownProduct struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	ImageURL    string  `json:"image_url"`
	StockQTY    int     `json:"stock_qty"`
	SalePrice   float64 `json:"sale_price"`
}

// UpdateProductRequest carries partial changes; nil fields are left untouched.
// ProductID and the record id are not updatable.
type UpdateProductRequest struct {
	ProductName *string  `json:"product_name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	UnitPrice   *float64 `json:"unit_price"`
	SalePrice   *float64 `json:"sale_price"`
	StockQTY    *int     `json:"stock_qty"`
	PurchaseBy  *string  `json:"purchase_by"`
	UpdatedBy   string   `json:"updated_by"`
}

type ProductService interface {
	CreateProduct(product *models.Product) error
	GetProductByID(productID string) (*models.Product, error)
	GetAllProducts() ([]models.Product, error)
	GetDropdownProducts() ([]DropdownProduct, error)
	UpdateProduct(productID string, req UpdateProductRequest) (*models.Product, error)
	DeleteProduct(productID string) error
	UploadProductImage(productID string, imageData []byte) (string, error)
}

type productService struct {
	productRepo repository.ProductRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	maxWidth    int
}

func NewProductService(productRepo repository.ProductRepository, cache *redis.Client, cacheTTL time.Duration, maxWidth int) ProductService {
	return &productService{productRepo: productRepo, cache: cache, cacheTTL: cacheTTL, maxWidth: maxWidth}
}

func (s *productService) CreateProduct(product *models.Product) error {
	if product.ProductName == "" || product.Category == "" {
		return NewValidationError("productName and category are required")
	}
	if product.StockQTY < 0 {
		return NewValidationError("stock quantity cannot be negative")
	}

	product.ProductID = s.nextProductID(time.Now())
	if err := s.productRepo.Create(product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &DuplicateError{Field: "product_id"}
		}
		return err
	}

	s.invalidateDropdown()
	return nil
}

// nextProductID builds the next product identifier, PRODUCT<YY><NN>. Same
// scheme as order numbers: highest existing serial under the year prefix plus
// one, with a timestamp fallback when the lookup fails.
func (s *productService) nextProductID(now time.Time) string {
	prefix := "PRODUCT" + now.Format("06")

	latest, err := s.productRepo.GetLatestByPrefix(prefix)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Sprintf("%s%02d", prefix, 1)
		}
		log.Printf("product id lookup failed, using timestamp fallback: %v", err)
		millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
		return prefix + millis[len(millis)-2:]
	}

	serial := 1
	if len(latest.ProductID) > 2 {
		if last, err := strconv.Atoi(latest.ProductID[len(latest.ProductID)-2:]); err == nil {
			serial = last + 1
		}
	}

	return fmt.Sprintf("%s%02d", prefix, serial)
}

func (s *productService) GetProductByID(productID string) (*models.Product, error) {
	product, err := s.productRepo.GetByProductID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *productService) GetDropdownProducts() ([]DropdownProduct, error) {
	if s.cache != nil {
		var cached []DropdownProduct
		if err := s.cache.GetDropdown(redis.DropdownProductsKey, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.GetInStock()
	if err != nil {
		return nil, err
	}

	dropdown := make([]DropdownProduct, 0, len(products))
	for _, p := range products {
		dropdown = append(dropdown, DropdownProduct{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			ImageURL:    p.ImageURL,
			StockQTY:    p.StockQTY,
			SalePrice:   p.SalePrice,
		})
	}

	if s.cache != nil {
		if err := s.cache.SetDropdown(redis.DropdownProductsKey, dropdown, s.cacheTTL); err != nil {
			log.Printf("failed to cache product dropdown: %v", err)
		}
	}
	return dropdown, nil
}

func (s *productService) UpdateProduct(productID string, req UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	if req.ProductName != nil {
		if *req.ProductName == "" {
			return nil, NewValidationError("productName cannot be empty")
		}
		product.ProductName = *req.ProductName
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.UnitPrice != nil {
		product.UnitPrice = *req.UnitPrice
	}
	if req.SalePrice != nil {
		product.SalePrice = *req.SalePrice
	}
	if req.StockQTY != nil {
		if *req.StockQTY < 0 {
			return nil, NewValidationError("stock quantity cannot be negative")
		}
		product.StockQTY = *req.StockQTY
	}
	if req.PurchaseBy != nil {
		product.PurchaseBy = *req.PurchaseBy
	}
	if req.UpdatedBy != "" {
		product.UpdatedBy = req.UpdatedBy
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	s.invalidateDropdown()
	return product, nil
}

func (s *productService) DeleteProduct(productID string) error {
	if _, err := s.GetProductByID(productID); err != nil {
		return err
	}
	if err := s.productRepo.Delete(productID); err != nil {
		return err
	}
	s.invalidateDropdown()
	return nil
}

// UploadProductImage compresses the uploaded image and stores it base64
// encoded on the product. Returns the stored value.
func (s *productService) UploadProductImage(productID string, imageData []byte) (string, error) {
	product, err := s.GetProductByID(productID)
	if err != nil {
		return "", err
	}

	encoded, err := imaging.CompressToBase64(imageData, s.maxWidth)
	if err != nil {
		return "", NewValidationError("failed to process image: %v", err)
	}

	product.ImageURL = encoded
	if err := s.productRepo.Update(product); err != nil {
		return "", err
	}

	s.invalidateDropdown()
	return encoded, nil
}

func (s *productService) invalidateDropdown() {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteDropdown(redis.DropdownProductsKey); err != nil {
		log.Printf("failed to invalidate product dropdown cache: %v", err)
	}
}
