package repository

import (
	"shop_manager/internal/models"

	"gorm.io/gorm"
)

type CategoryTypeCount struct {
	CategoryType string `json:"category_type"`
	Count        int64  `json:"count"`
}

type CategoryStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetByCode(code string) (*models.Category, error)
	GetAll(status, categoryType string) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
	BulkUpdateStatus(ids []uint, status string, updatedBy string) (int64, error)
	CountByStatus() ([]CategoryStatusCount, error)
	CountByType() ([]CategoryTypeCount, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByCode(code string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("category_code = ?", code).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(status, categoryType string) ([]models.Category, error) {
	query := r.db.Model(&models.Category{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if categoryType != "" && categoryType != "all" {
		query = query.Where("category_type = ?", categoryType)
	}
	var categories []models.Category
	err := query.Order("created_at DESC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

func (r *categoryRepository) BulkUpdateStatus(ids []uint, status string, updatedBy string) (int64, error) {
	res := r.db.Model(&models.Category{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"status": status, "updated_by": updatedBy})
	return res.RowsAffected, res.Error
}

func (r *categoryRepository) CountByStatus() ([]CategoryStatusCount, error) {
	var counts []CategoryStatusCount
	err := r.db.Model(&models.Category{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

func (r *categoryRepository) CountByType() ([]CategoryTypeCount, error) {
	var counts []CategoryTypeCount
	err := r.db.Model(&models.Category{}).
		Select("category_type, count(*) as count").
		Group("category_type").
		Scan(&counts).Error
	return counts, err
}
