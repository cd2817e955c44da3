package handlers

import (
	"errors"
	"log"
	"net/http"

	"shop_manager/internal/services"

	"github.com/gin-gonic/gin"
)

// respondOK writes the standard success envelope.
func respondOK(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondError maps domain failures onto HTTP statuses: validation,
// insufficient stock and duplicates are 400, missing records 404, bad
// credentials 401, everything unexpected a logged generic 500.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var stockErr *services.InsufficientStockError
	var duplicateErr *services.DuplicateError

	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Insufficient stock",
			"error": gin.H{
				"product_id": stockErr.ProductID,
				"available":  stockErr.Available,
				"requested":  stockErr.Requested,
			},
		})
	case errors.As(err, &validationErr),
		errors.As(err, &duplicateErr),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrDuplicateOrderNumber):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
	default:
		log.Printf("unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}
