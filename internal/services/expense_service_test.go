package services

import (
	"errors"
	"testing"
	"time"

	"shop_manager/internal/models"
	"shop_manager/internal/repository"
)

func newTestExpenseService(t *testing.T) ExpenseService {
	t.Helper()
	db := setupTestDB(t, t.Name())
	return NewExpenseService(repository.NewExpenseRepository(db))
}

func testExpense(name string, amount float64) *models.Expense {
	return &models.Expense{
		ExpenseName: name,
		Amount:      amount,
		ExpenseBy:   "manager",
		CreatedBy:   "admin",
	}
}

func TestCreateExpenseDefaultsDate(t *testing.T) {
	svc := newTestExpenseService(t)

	expense := testExpense("Shop Rent", 5000)
	if err := svc.CreateExpense(expense); err != nil {
		t.Fatalf("create: %v", err)
	}
	if expense.ExpenseDate.IsZero() {
		t.Fatal("expected expense date to default to now")
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	svc := newTestExpenseService(t)

	var verr *ValidationError
	if err := svc.CreateExpense(testExpense("Office Party", 500)); !errors.As(err, &verr) {
		t.Fatalf("expected validation error for unknown name, got %v", err)
	}
	if err := svc.CreateExpense(testExpense("Shop Rent", 0)); !errors.As(err, &verr) {
		t.Fatalf("expected validation error for zero amount, got %v", err)
	}

	missing := testExpense("Shop Rent", 500)
	missing.ExpenseBy = ""
	if err := svc.CreateExpense(missing); !errors.As(err, &verr) {
		t.Fatalf("expected validation error for missing fields, got %v", err)
	}
}

func TestExpenseStatsAggregatesByName(t *testing.T) {
	svc := newTestExpenseService(t)

	for _, e := range []*models.Expense{
		testExpense("Shop Rent", 5000),
		testExpense("Shop Rent", 5000),
		testExpense("Electricity Bill", 1200),
	} {
		if err := svc.CreateExpense(e); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	stats, err := svc.GetExpenseStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 11200 {
		t.Fatalf("expected total 11200, got %v", stats.Total)
	}
	if stats.Count != 3 {
		t.Fatalf("expected count 3, got %d", stats.Count)
	}
	if len(stats.ByName) != 2 {
		t.Fatalf("expected 2 name buckets, got %d", len(stats.ByName))
	}
}

func TestUpdateExpensePartial(t *testing.T) {
	svc := newTestExpenseService(t)

	expense := testExpense("Shop Rent", 5000)
	if err := svc.CreateExpense(expense); err != nil {
		t.Fatalf("create: %v", err)
	}

	amount := 5500.0
	updated, err := svc.UpdateExpense(expense.ID, UpdateExpenseRequest{Amount: &amount})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Amount != 5500 || updated.ExpenseName != "Shop Rent" {
		t.Fatalf("omitted fields must be untouched: %+v", updated)
	}

	zero := 0.0
	if _, err := svc.UpdateExpense(expense.ID, UpdateExpenseRequest{Amount: &zero}); err == nil {
		t.Fatal("expected validation error for zero amount")
	}
	bad := "Office Party"
	if _, err := svc.UpdateExpense(expense.ID, UpdateExpenseRequest{ExpenseName: &bad}); err == nil {
		t.Fatal("expected validation error for unknown name")
	}
}

func TestExpensesByDateRange(t *testing.T) {
	svc := newTestExpenseService(t)

	old := testExpense("Shop Rent", 5000)
	old.ExpenseDate = time.Now().AddDate(0, -2, 0)
	recent := testExpense("Electricity Bill", 1200)
	recent.ExpenseDate = time.Now()
	if err := svc.CreateExpense(old); err != nil {
		t.Fatalf("create old: %v", err)
	}
	if err := svc.CreateExpense(recent); err != nil {
		t.Fatalf("create recent: %v", err)
	}

	start := time.Now().AddDate(0, 0, -7)
	end := time.Now().Add(time.Hour)
	expenses, err := svc.GetExpensesByDateRange(start, end)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(expenses) != 1 || expenses[0].ExpenseName != "Electricity Bill" {
		t.Fatalf("expected only the recent expense, got %d", len(expenses))
	}
}

func TestDeleteExpenseNotFound(t *testing.T) {
	svc := newTestExpenseService(t)

	if err := svc.DeleteExpense(7); !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
