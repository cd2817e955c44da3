package services

import (
	"errors"
	"strings"

	"shop_manager/internal/models"
	"shop_manager/internal/repository"

	"gorm.io/gorm"
)

type CategoryStats struct {
	Total    int64                            `json:"total"`
	ByStatus []repository.CategoryStatusCount `json:"byStatus"`
	ByType   []repository.CategoryTypeCount   `json:"byType"`
}

// UpdateCategoryRequest carries partial changes; nil fields are left untouched.
// The target row comes from the id argument only, never from the body.
type UpdateCategoryRequest struct {
	CategoryName *string `json:"category_name"`
	CategoryCode *string `json:"category_code"`
	Description  *string `json:"description"`
	CategoryType *string `json:"category_type"`
	Status       *string `json:"status"`
	UpdatedBy    string  `json:"updated_by"`
}

type CategoryService interface {
	CreateCategory(category *models.Category) error
	GetCategoryByID(id uint) (*models.Category, error)
	GetCategoryByCode(code string) (*models.Category, error)
	GetCategories(status, categoryType string) ([]models.Category, error)
	UpdateCategory(id uint, req UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(id uint) error
	BulkUpdateStatus(ids []uint, status string, updatedBy string) (int64, error)
	GetCategoryStats() (*CategoryStats, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(category *models.Category) error {
	if category.CategoryName == "" || category.CategoryCode == "" || category.CategoryType == "" {
		return NewValidationError("categoryName, categoryCode and categoryType are required")
	}
	if !models.ValidCategoryType(category.CategoryType) {
		return NewValidationError("unknown category type %q", category.CategoryType)
	}
	if category.Status == "" {
		category.Status = string(models.CategoryActive)
	}
	if !models.CategoryStatus(category.Status).Valid() {
		return NewValidationError("unknown category status %q", category.Status)
	}

	category.CategoryCode = strings.ToUpper(strings.TrimSpace(category.CategoryCode))
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &DuplicateError{Field: "category_code"}
		}
		return err
	}
	return nil
}

func (s *categoryService) GetCategoryByID(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategoryByCode(code string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategories(status, categoryType string) ([]models.Category, error) {
	return s.categoryRepo.GetAll(status, categoryType)
}

func (s *categoryService) UpdateCategory(id uint, req UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	if req.CategoryName != nil {
		if *req.CategoryName == "" {
			return nil, NewValidationError("categoryName cannot be empty")
		}
		category.CategoryName = *req.CategoryName
	}
	if req.CategoryCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.CategoryCode))
		if code == "" {
			return nil, NewValidationError("categoryCode cannot be empty")
		}
		category.CategoryCode = code
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.CategoryType != nil {
		if !models.ValidCategoryType(*req.CategoryType) {
			return nil, NewValidationError("unknown category type %q", *req.CategoryType)
		}
		category.CategoryType = *req.CategoryType
	}
	if req.Status != nil {
		if !models.CategoryStatus(*req.Status).Valid() {
			return nil, NewValidationError("unknown category status %q", *req.Status)
		}
		category.Status = *req.Status
	}
	if req.UpdatedBy != "" {
		category.UpdatedBy = req.UpdatedBy
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateError{Field: "category_code"}
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.GetCategoryByID(id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(id)
}

func (s *categoryService) BulkUpdateStatus(ids []uint, status string, updatedBy string) (int64, error) {
	if len(ids) == 0 {
		return 0, NewValidationError("at least one category id is required")
	}
	if !models.CategoryStatus(status).Valid() {
		return 0, NewValidationError("unknown category status %q", status)
	}
	return s.categoryRepo.BulkUpdateStatus(ids, status, updatedBy)
}

func (s *categoryService) GetCategoryStats() (*CategoryStats, error) {
	byStatus, err := s.categoryRepo.CountByStatus()
	if err != nil {
		return nil, err
	}
	byType, err := s.categoryRepo.CountByType()
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range byStatus {
		total += c.Count
	}

	return &CategoryStats{Total: total, ByStatus: byStatus, ByType: byType}, nil
}
