package services

import (
	"fmt"
	"testing"

	"shop_manager/internal/database"
	"shop_manager/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, productID string, stock int, salePrice float64) *models.Product {
	t.Helper()
	product := &models.Product{
		ProductID:   productID,
		ProductName: "Test Product " + productID,
		Category:    "electronics",
		UnitPrice:   salePrice * 0.8,
		SalePrice:   salePrice,
		StockQTY:    stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func productStock(t *testing.T, db *gorm.DB, productID string) int {
	t.Helper()
	var product models.Product
	if err := db.Where("product_id = ?", productID).First(&product).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	return product.StockQTY
}
