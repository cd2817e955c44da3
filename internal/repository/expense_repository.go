package repository

import (
	"time"

	"shop_manager/internal/models"

	"gorm.io/gorm"
)

type ExpenseNameTotal struct {
	ExpenseName string  `json:"expense_name"`
	Total       float64 `json:"total"`
	Count       int64   `json:"count"`
}

type ExpenseRepository interface {
	Create(expense *models.Expense) error
	GetByID(id uint) (*models.Expense, error)
	GetAll() ([]models.Expense, error)
	GetByDateRange(start, end time.Time) ([]models.Expense, error)
	Update(expense *models.Expense) error
	Delete(id uint) error
	TotalsByName() ([]ExpenseNameTotal, error)
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepository) GetByID(id uint) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.First(&expense, id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) GetAll() ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Order("expense_date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) GetByDateRange(start, end time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Where("expense_date BETWEEN ? AND ?", start, end).
		Order("expense_date DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) Update(expense *models.Expense) error {
	return r.db.Save(expense).Error
}

func (r *expenseRepository) Delete(id uint) error {
	return r.db.Delete(&models.Expense{}, id).Error
}

func (r *expenseRepository) TotalsByName() ([]ExpenseNameTotal, error) {
	var totals []ExpenseNameTotal
	err := r.db.Model(&models.Expense{}).
		Select("expense_name, sum(amount) as total, count(*) as count").
		Group("expense_name").
		Scan(&totals).Error
	return totals, err
}
