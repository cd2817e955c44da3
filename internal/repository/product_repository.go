package repository

import (
	"shop_manager/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByProductID(productID string) (*models.Product, error)
	GetAll() ([]models.Product, error)
	GetInStock() ([]models.Product, error)
	GetLatestByPrefix(prefix string) (*models.Product, error)
	Update(product *models.Product) error
	Delete(productID string) error
	DeductStock(productID string, quantity int) (int64, error)
	RestoreStock(productID string, quantity int) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByProductID(productID string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("product_id = ?", productID).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepository) GetInStock() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("stock_qty > ?", 0).Order("product_name ASC").Find(&products).Error
	return products, err
}

// GetLatestByPrefix returns the product with the highest product_id under the
// given prefix, used to pick the next serial number.
func (r *productRepository) GetLatestByPrefix(prefix string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("product_id LIKE ?", prefix+"%").
		Order("product_id DESC").
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(productID string) error {
	return r.db.Where("product_id = ?", productID).Delete(&models.Product{}).Error
}

// DeductStock decrements stock in a single conditional statement so two
// concurrent deductions cannot both pass the sufficiency check. Returns the
// number of rows updated: 0 means the product was missing or under-stocked.
func (r *productRepository) DeductStock(productID string, quantity int) (int64, error) {
	res := r.db.Model(&models.Product{}).
		Where("product_id = ? AND stock_qty >= ?", productID, quantity).
		UpdateColumn("stock_qty", gorm.Expr("stock_qty - ?", quantity))
	return res.RowsAffected, res.Error
}

func (r *productRepository) RestoreStock(productID string, quantity int) (int64, error) {
	res := r.db.Model(&models.Product{}).
		Where("product_id = ?", productID).
		UpdateColumn("stock_qty", gorm.Expr("stock_qty + ?", quantity))
	return res.RowsAffected, res.Error
}
