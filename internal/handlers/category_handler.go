package handlers

import (
	"net/http"
	"strconv"

	"shop_manager/internal/models"
	"shop_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	if err := h.categoryService.CreateCategory(&category); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Category created", category)
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories(c.Query("status"), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Categories", categories)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category id"})
		return
	}

	category, err := h.categoryService.GetCategoryByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Category found", category)
}

func (h *CategoryHandler) GetCategoryByCode(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Category found", category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category id"})
		return
	}

	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	category, err := h.categoryService.UpdateCategory(uint(id), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Category updated", category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category id"})
		return
	}

	if err := h.categoryService.DeleteCategory(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Category deleted", nil)
}

func (h *CategoryHandler) BulkUpdateStatus(c *gin.Context) {
	var req struct {
		IDs       []uint `json:"ids"`
		Status    string `json:"status"`
		UpdatedBy string `json:"updatedBy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	updated, err := h.categoryService.BulkUpdateStatus(req.IDs, req.Status, req.UpdatedBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category statuses updated",
		"updated": updated,
	})
}

func (h *CategoryHandler) GetCategoryStats(c *gin.Context) {
	stats, err := h.categoryService.GetCategoryStats()
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Category stats", stats)
}
