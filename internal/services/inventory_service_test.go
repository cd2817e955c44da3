package services

import (
	"errors"
	"testing"

	"shop_manager/internal/repository"
)

func TestDeductHappyPath(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedProduct(t, db, "P1", 10, 50)
	svc := NewInventoryService(repository.NewProductRepository(db))

	product, err := svc.Deduct("P1", 4)
	if err != nil {
		t.Fatalf("deduct: %v", err)
	}
	if product.StockQTY != 6 {
		t.Fatalf("expected stock 6 got %d", product.StockQTY)
	}
}

func TestDeductInsufficientStock(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedProduct(t, db, "P1", 10, 50)
	svc := NewInventoryService(repository.NewProductRepository(db))

	_, err := svc.Deduct("P1", 20)
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError got %v", err)
	}
	if stockErr.Available != 10 || stockErr.Requested != 20 {
		t.Fatalf("wrong error detail: %+v", stockErr)
	}
	if got := productStock(t, db, "P1"); got != 10 {
		t.Fatalf("stock mutated on failed deduct: %d", got)
	}
}

func TestDeductUnknownProduct(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewInventoryService(repository.NewProductRepository(db))

	if _, err := svc.Deduct("MISSING", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound got %v", err)
	}
}

func TestAdjustInvalidQuantity(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedProduct(t, db, "P1", 10, 50)
	svc := NewInventoryService(repository.NewProductRepository(db))

	for _, qty := range []int{0, -3} {
		if _, err := svc.Deduct("P1", qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("deduct %d: expected ErrInvalidQuantity got %v", qty, err)
		}
		if _, err := svc.Restore("P1", qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("restore %d: expected ErrInvalidQuantity got %v", qty, err)
		}
	}
	if got := productStock(t, db, "P1"); got != 10 {
		t.Fatalf("stock mutated on rejected adjustments: %d", got)
	}
}

func TestRestoreIsUnbounded(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedProduct(t, db, "P1", 2, 50)
	svc := NewInventoryService(repository.NewProductRepository(db))

	// Restoring more than was ever deducted is accepted.
	product, err := svc.Restore("P1", 100)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if product.StockQTY != 102 {
		t.Fatalf("expected stock 102 got %d", product.StockQTY)
	}
}

func TestRestoreUnknownProduct(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewInventoryService(repository.NewProductRepository(db))

	if _, err := svc.Restore("MISSING", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound got %v", err)
	}
}
