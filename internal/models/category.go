package models

import (
	"time"
)

type Category struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CategoryName  string    `json:"category_name" gorm:"not null;size:100"`
	CategoryCode  string    `json:"category_code" gorm:"unique;not null"` // stored uppercase
	Description   string    `json:"description" gorm:"size:500"`
	CategoryType  string    `json:"category_type" gorm:"not null"`
	Status        string    `json:"status" gorm:"default:'active'"` // active, inactive, draft
	ProductsCount int       `json:"products_count" gorm:"default:0"`
	CreatedBy     string    `json:"created_by" gorm:"not null"`
	UpdatedBy     string    `json:"updated_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CategoryStatus string

const (
	CategoryActive   CategoryStatus = "active"
	CategoryInactive CategoryStatus = "inactive"
	CategoryDraft    CategoryStatus = "draft"
)

func (s CategoryStatus) Valid() bool {
	switch s {
	case CategoryActive, CategoryInactive, CategoryDraft:
		return true
	}
	return false
}

var categoryTypes = map[string]bool{
	"electronics":     true,
	"accessories":     true,
	"home_appliances": true,
	"computers":       true,
	"mobile":          true,
	"audio_video":     true,
	"gaming":          true,
	"networking":      true,
}

func ValidCategoryType(t string) bool {
	return categoryTypes[t]
}
