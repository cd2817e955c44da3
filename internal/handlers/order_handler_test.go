package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop_manager/internal/database"
	"shop_manager/internal/models"
	"shop_manager/internal/repository"
	"shop_manager/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupOrderRouter(t *testing.T, name string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderService := services.NewOrderService(orderRepo, services.NewInventoryService(productRepo), nil)
	reportService := services.NewReportService(orderRepo, nil, time.Minute)
	handler := NewOrderHandler(orderService, reportService)

	router := gin.New()
	orders := router.Group("/api/productOrders")
	{
		orders.POST("", handler.CreateOrder)
		orders.GET("", handler.GetOrders)
		orders.GET("/summary/financial", handler.GetFinancialSummary)
		orders.GET("/summary/daily", handler.GetDailySummary)
		orders.GET("/:id", handler.GetOrderByID)
		orders.PUT("/:id", handler.UpdateOrder)
		orders.DELETE("/:id", handler.DeleteOrder)
	}
	return router, db
}

func seedHandlerProduct(t *testing.T, db *gorm.DB, productID string, stock int) {
	t.Helper()
	product := &models.Product{
		ProductID:   productID,
		ProductName: "Test Product",
		Category:    "electronics",
		SalePrice:   100,
		StockQTY:    stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderEndpoint(t *testing.T) {
	router, db := setupOrderRouter(t, t.Name())
	seedHandlerProduct(t, db, "P1", 10)

	rec := doJSON(t, router, http.MethodPost, "/api/productOrders", gin.H{
		"productId":   "P1",
		"productName": "Test Product",
		"salePrice":   100,
		"quantity":    5,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool         `json:"success"`
		Data    models.Order `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Data.OrderNo == "" {
		t.Fatalf("bad envelope: %s", rec.Body.String())
	}
	if resp.Data.RemainingStock != 5 {
		t.Fatalf("expected remaining stock 5 got %d", resp.Data.RemainingStock)
	}
}

func TestCreateOrderEndpointInsufficientStock(t *testing.T) {
	router, db := setupOrderRouter(t, t.Name())
	seedHandlerProduct(t, db, "P1", 10)

	rec := doJSON(t, router, http.MethodPost, "/api/productOrders", gin.H{
		"productId":   "P1",
		"productName": "Test Product",
		"salePrice":   100,
		"quantity":    20,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Available int `json:"available"`
			Requested int `json:"requested"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success || resp.Error.Available != 10 || resp.Error.Requested != 20 {
		t.Fatalf("bad error detail: %s", rec.Body.String())
	}
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	router, _ := setupOrderRouter(t, t.Name())

	rec := doJSON(t, router, http.MethodGet, "/api/productOrders/999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/productOrders/not-a-number", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestDeleteOrderEndpointReportsRestored(t *testing.T) {
	router, db := setupOrderRouter(t, t.Name())
	seedHandlerProduct(t, db, "P1", 10)

	rec := doJSON(t, router, http.MethodPost, "/api/productOrders", gin.H{
		"productId":   "P1",
		"productName": "Test Product",
		"salePrice":   100,
		"quantity":    3,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got %d", rec.Code)
	}
	var created struct {
		Data models.Order `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/productOrders/%d", created.Data.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Restored int `json:"restored"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Restored != 3 {
		t.Fatalf("expected restored 3 got %d", resp.Restored)
	}

	var product models.Product
	if err := db.Where("product_id = ?", "P1").First(&product).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	if product.StockQTY != 10 {
		t.Fatalf("expected stock back at 10, got %d", product.StockQTY)
	}
}

func TestFinancialSummaryEndpointEmpty(t *testing.T) {
	router, _ := setupOrderRouter(t, t.Name())

	rec := doJSON(t, router, http.MethodGet, "/api/productOrders/summary/financial", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var resp struct {
		Success bool                      `json:"success"`
		Data    services.FinancialSummary `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Data.Daily.Sales != 0 {
		t.Fatalf("expected zero summary: %s", rec.Body.String())
	}
}
