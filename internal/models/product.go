package models

import (
	"time"
)

type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProductID   string    `json:"product_id" gorm:"unique;not null"` // PRODUCT<YY><NN>, generated
	ProductName string    `json:"product_name" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	UnitPrice   float64   `json:"unit_price"`
	SalePrice   float64   `json:"sale_price"`
	StockQTY    int       `json:"stock_qty" gorm:"default:0;check:stock_qty >= 0"`
	ImageURL    string    `json:"image_url" gorm:"type:text"` // base64 jpeg
	PurchaseBy  string    `json:"purchase_by"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   string    `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
