package handlers

import (
	"net/http"
	"strconv"
	"time"

	"shop_manager/internal/models"
	"shop_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	expenseService services.ExpenseService
}

func NewExpenseHandler(expenseService services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	if err := h.expenseService.CreateExpense(&expense); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Expense created", expense)
}

func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	startStr, endStr := c.Query("startDate"), c.Query("endDate")
	if startStr != "" && endStr != "" {
		start, err1 := time.Parse("2006-01-02", startStr)
		end, err2 := time.Parse("2006-01-02", endStr)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Dates must be in YYYY-MM-DD format"})
			return
		}
		expenses, err := h.expenseService.GetExpensesByDateRange(start, end.Add(24*time.Hour-time.Nanosecond))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, http.StatusOK, "Expenses", expenses)
		return
	}

	expenses, err := h.expenseService.GetAllExpenses()
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Expenses", expenses)
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid expense id"})
		return
	}

	var req services.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	expense, err := h.expenseService.UpdateExpense(uint(id), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Expense updated", expense)
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid expense id"})
		return
	}

	if err := h.expenseService.DeleteExpense(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Expense deleted", nil)
}

func (h *ExpenseHandler) GetExpenseStats(c *gin.Context) {
	stats, err := h.expenseService.GetExpenseStats()
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Expense stats", stats)
}
