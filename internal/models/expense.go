package models

import (
	"time"
)

type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ExpenseName string    `json:"expense_name" gorm:"not null"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Reason      string    `json:"reason"`
	ExpenseDate time.Time `json:"expense_date" gorm:"not null"`
	ExpenseBy   string    `json:"expense_by" gorm:"not null"`
	CreatedBy   string    `json:"created_by" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var expenseNames = map[string]bool{
	"Shop Rent":        true,
	"Electricity Bill": true,
	"Staff Salary":     true,
	"Goods Transport":  true,
	"Shop Supplies":    true,
	"Miscellaneous":    true,
}

func ValidExpenseName(name string) bool {
	return expenseNames[name]
}
