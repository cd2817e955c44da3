package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"shop_manager/internal/repository"
	"shop_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService  services.OrderService
	reportService services.ReportService
}

func NewOrderHandler(orderService services.OrderService, reportService services.ReportService) *OrderHandler {
	return &OrderHandler{orderService: orderService, reportService: reportService}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	order, err := h.orderService.CreateOrder(req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Order created successfully", order)
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	filter := repository.OrderFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	if start, err := time.Parse("2006-01-02", c.Query("startDate")); err == nil {
		if end, err := time.Parse("2006-01-02", c.Query("endDate")); err == nil {
			filter.StartDate = start
			filter.EndDate = end.Add(24*time.Hour - time.Nanosecond)
		}
	}

	orders, total, err := h.orderService.ListOrders(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(filter.Limit)))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        orders,
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": filter.Page,
	})
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order id"})
		return
	}

	order, err := h.orderService.GetOrderByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Order found", order)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order id"})
		return
	}

	var req services.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateOrder(uint(id), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Order updated successfully", order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order id"})
		return
	}

	order, restored, err := h.orderService.DeleteOrder(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Order deleted successfully",
		"data":     order,
		"restored": restored,
	})
}

func (h *OrderHandler) GetFinancialSummary(c *gin.Context) {
	summary, err := h.reportService.GetFinancialSummary()
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Financial summary", summary)
}

func (h *OrderHandler) GetDailySummary(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	points, err := h.reportService.GetDailySummary(days)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Daily summary", points)
}
