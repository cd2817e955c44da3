package handlers

import (
	"io"
	"net/http"

	"shop_manager/internal/models"
	"shop_manager/internal/services"

	"github.com/gin-gonic/gin"
)

const maxImageUploadBytes = 50 << 20 // 50MB upload cap

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	if err := h.productService.CreateProduct(&product); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Product created",
		"product_id": product.ProductID,
	})
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

func (h *ProductHandler) GetProductDropdown(c *gin.Context) {
	products, err := h.productService.GetDropdownProducts()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	product, err := h.productService.UpdateProduct(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Product updated", product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Product deleted", nil)
}

func (h *ProductHandler) UploadProductImage(c *gin.Context) {
	imageData, err := readUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	imageURL, err := h.productService.UploadProductImage(c.Param("id"), imageData)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Product image uploaded and updated successfully",
		"image_url": imageURL,
	})
}

func readUploadedImage(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, services.NewValidationError("no image file uploaded")
	}
	if fileHeader.Size > maxImageUploadBytes {
		return nil, services.NewValidationError("image exceeds the 50MB upload limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, services.NewValidationError("failed to read uploaded file")
	}
	defer file.Close()

	return io.ReadAll(file)
}
