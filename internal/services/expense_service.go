package services

import (
	"errors"
	"time"

	"shop_manager/internal/models"
	"shop_manager/internal/repository"

	"gorm.io/gorm"
)

type ExpenseStats struct {
	Total  float64                       `json:"total"`
	Count  int64                         `json:"count"`
	ByName []repository.ExpenseNameTotal `json:"byName"`
}

// UpdateExpenseRequest carries partial changes; nil fields are left untouched.
type UpdateExpenseRequest struct {
	ExpenseName *string    `json:"expense_name"`
	Amount      *float64   `json:"amount"`
	Reason      *string    `json:"reason"`
	ExpenseDate *time.Time `json:"expense_date"`
	ExpenseBy   *string    `json:"expense_by"`
}

type ExpenseService interface {
	CreateExpense(expense *models.Expense) error
	GetExpenseByID(id uint) (*models.Expense, error)
	GetAllExpenses() ([]models.Expense, error)
	GetExpensesByDateRange(start, end time.Time) ([]models.Expense, error)
	UpdateExpense(id uint, req UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(id uint) error
	GetExpenseStats() (*ExpenseStats, error)
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) CreateExpense(expense *models.Expense) error {
	if expense.ExpenseName == "" || expense.ExpenseBy == "" || expense.CreatedBy == "" {
		return NewValidationError("expenseName, expenseBy and createdBy are required")
	}
	if !models.ValidExpenseName(expense.ExpenseName) {
		return NewValidationError("unknown expense name %q", expense.ExpenseName)
	}
	if expense.Amount <= 0 {
		return NewValidationError("amount must be greater than zero")
	}
	if expense.ExpenseDate.IsZero() {
		expense.ExpenseDate = time.Now()
	}
	return s.expenseRepo.Create(expense)
}

func (s *expenseService) GetExpenseByID(id uint) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) GetAllExpenses() ([]models.Expense, error) {
	return s.expenseRepo.GetAll()
}

func (s *expenseService) GetExpensesByDateRange(start, end time.Time) ([]models.Expense, error) {
	return s.expenseRepo.GetByDateRange(start, end)
}

func (s *expenseService) UpdateExpense(id uint, req UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(id)
	if err != nil {
		return nil, err
	}

	if req.ExpenseName != nil {
		if !models.ValidExpenseName(*req.ExpenseName) {
			return nil, NewValidationError("unknown expense name %q", *req.ExpenseName)
		}
		expense.ExpenseName = *req.ExpenseName
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, NewValidationError("amount must be greater than zero")
		}
		expense.Amount = *req.Amount
	}
	if req.Reason != nil {
		expense.Reason = *req.Reason
	}
	if req.ExpenseDate != nil && !req.ExpenseDate.IsZero() {
		expense.ExpenseDate = *req.ExpenseDate
	}
	if req.ExpenseBy != nil {
		if *req.ExpenseBy == "" {
			return nil, NewValidationError("expenseBy cannot be empty")
		}
		expense.ExpenseBy = *req.ExpenseBy
	}

	if err := s.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(id uint) error {
	if _, err := s.GetExpenseByID(id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(id)
}

func (s *expenseService) GetExpenseStats() (*ExpenseStats, error) {
	byName, err := s.expenseRepo.TotalsByName()
	if err != nil {
		return nil, err
	}

	stats := &ExpenseStats{ByName: byName}
	for _, n := range byName {
		stats.Total += n.Total
		stats.Count += n.Count
	}
	return stats, nil
}
