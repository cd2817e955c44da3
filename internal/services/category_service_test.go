package services

import (
	"errors"
	"testing"

	"shop_manager/internal/models"
	"shop_manager/internal/repository"
)

func newTestCategoryService(t *testing.T) CategoryService {
	t.Helper()
	db := setupTestDB(t, t.Name())
	return NewCategoryService(repository.NewCategoryRepository(db))
}

func testCategory(code string) *models.Category {
	return &models.Category{
		CategoryName: "Electronics",
		CategoryCode: code,
		CategoryType: "electronics",
		CreatedBy:    "admin",
	}
}

func TestCreateCategoryNormalizesCode(t *testing.T) {
	svc := newTestCategoryService(t)

	category := testCategory("  elec01 ")
	if err := svc.CreateCategory(category); err != nil {
		t.Fatalf("create: %v", err)
	}
	if category.CategoryCode != "ELEC01" {
		t.Fatalf("expected uppercase trimmed code, got %q", category.CategoryCode)
	}
	if category.Status != "active" {
		t.Fatalf("expected default active status, got %q", category.Status)
	}

	found, err := svc.GetCategoryByCode("elec01")
	if err != nil {
		t.Fatalf("lookup by code: %v", err)
	}
	if found.ID != category.ID {
		t.Fatalf("lookup returned wrong row")
	}
}

func TestCreateCategoryRejectsDuplicateCode(t *testing.T) {
	svc := newTestCategoryService(t)

	if err := svc.CreateCategory(testCategory("ELEC01")); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := svc.CreateCategory(testCategory("elec01"))
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestCreateCategoryRejectsUnknownType(t *testing.T) {
	svc := newTestCategoryService(t)

	category := testCategory("ELEC01")
	category.CategoryType = "furniture"
	err := svc.CreateCategory(category)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBulkUpdateStatus(t *testing.T) {
	svc := newTestCategoryService(t)

	a := testCategory("ELEC01")
	b := testCategory("ELEC02")
	if err := svc.CreateCategory(a); err != nil {
		t.Fatalf("create a: %v", err)
	}
	if err := svc.CreateCategory(b); err != nil {
		t.Fatalf("create b: %v", err)
	}

	updated, err := svc.BulkUpdateStatus([]uint{a.ID, b.ID}, "inactive", "admin")
	if err != nil {
		t.Fatalf("bulk update: %v", err)
	}
	if updated != 2 {
		t.Fatalf("expected 2 rows updated, got %d", updated)
	}

	if _, err := svc.BulkUpdateStatus([]uint{a.ID}, "archived", "admin"); err == nil {
		t.Fatal("expected validation error for unknown status")
	}
	if _, err := svc.BulkUpdateStatus(nil, "active", "admin"); err == nil {
		t.Fatal("expected validation error for empty id list")
	}
}

func TestCategoryStats(t *testing.T) {
	svc := newTestCategoryService(t)

	a := testCategory("ELEC01")
	b := testCategory("ACC01")
	b.CategoryName = "Accessories"
	b.CategoryType = "accessories"
	b.Status = "inactive"
	if err := svc.CreateCategory(a); err != nil {
		t.Fatalf("create a: %v", err)
	}
	if err := svc.CreateCategory(b); err != nil {
		t.Fatalf("create b: %v", err)
	}

	stats, err := svc.GetCategoryStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 2 {
		t.Fatalf("expected total 2, got %d", stats.Total)
	}
	if len(stats.ByStatus) != 2 || len(stats.ByType) != 2 {
		t.Fatalf("expected 2 status and 2 type buckets, got %d/%d", len(stats.ByStatus), len(stats.ByType))
	}
}

func TestUpdateCategoryPartial(t *testing.T) {
	svc := newTestCategoryService(t)

	category := testCategory("ELEC01")
	if err := svc.CreateCategory(category); err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Renamed"
	updated, err := svc.UpdateCategory(category.ID, UpdateCategoryRequest{CategoryName: &name, UpdatedBy: "editor"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CategoryName != "Renamed" || updated.CategoryCode != "ELEC01" {
		t.Fatalf("omitted fields must be untouched: %+v", updated)
	}
	if updated.UpdatedBy != "editor" {
		t.Fatalf("expected updated_by editor, got %q", updated.UpdatedBy)
	}

	badType := "furniture"
	if _, err := svc.UpdateCategory(category.ID, UpdateCategoryRequest{CategoryType: &badType}); err == nil {
		t.Fatal("expected validation error for unknown type")
	}
	if _, err := svc.UpdateCategory(999, UpdateCategoryRequest{CategoryName: &name}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := newTestCategoryService(t)

	if err := svc.DeleteCategory(42); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
