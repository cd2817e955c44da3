package main

import (
	"log"
	"time"

	"shop_manager/internal/config"
	"shop_manager/internal/database"
	"shop_manager/internal/handlers"
	"shop_manager/internal/middleware"
	"shop_manager/internal/redis"
	"shop_manager/internal/repository"
	"shop_manager/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis. The API stays up without it; summaries and the
	// product dropdown just go uncached.
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Redis unavailable, caching disabled: %v", err)
		redisClient = nil
	}

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo, cfg.JWTSecret, time.Duration(cfg.SessionTimeout)*time.Second, cfg.ImageMaxWidth)
	productService := services.NewProductService(productRepo, redisClient, cacheTTL, cfg.ImageMaxWidth)
	inventoryService := services.NewInventoryService(productRepo)
	orderService := services.NewOrderService(orderRepo, inventoryService, redisClient)
	reportService := services.NewReportService(orderRepo, redisClient, cacheTTL)
	categoryService := services.NewCategoryService(categoryRepo)
	expenseService := services.NewExpenseService(expenseRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService, reportService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)

	// Setup routes
	router := gin.Default()

	protect := middleware.Protect(userService)

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/users", protect, authHandler.GetAllUsers)
		auth.PUT("/users/:id", protect, authHandler.UpdateUser)
		auth.PUT("/users/soft/:id", protect, authHandler.UpdateUserStatus)
		auth.DELETE("/users/hard/:id", protect, authHandler.HardDeleteUser)
		auth.POST("/image-upload/:id", authHandler.UploadUserImage)
	}

	api := router.Group("/api")
	{
		api.POST("/products", productHandler.CreateProduct)
		api.GET("/products", productHandler.GetProducts)
		api.GET("/productsDropdown", productHandler.GetProductDropdown)
		api.GET("/products/:id", productHandler.GetProductByID)
		api.POST("/products/:id/image", productHandler.UploadProductImage)
		api.PUT("/products/:id", productHandler.UpdateProduct)
		api.DELETE("/products/:id", productHandler.DeleteProduct)

		api.POST("/categories", categoryHandler.CreateCategory)
		api.GET("/categories", categoryHandler.GetCategories)
		api.GET("/categories/:id", categoryHandler.GetCategoryByID)
		api.GET("/categoriesByCode/:code", categoryHandler.GetCategoryByCode)
		api.GET("/getCategoryStats", categoryHandler.GetCategoryStats)
		api.PUT("/categories/:id", categoryHandler.UpdateCategory)
		api.DELETE("/categories/:id", categoryHandler.DeleteCategory)
		api.PATCH("/bulk-update-status", categoryHandler.BulkUpdateStatus)

		api.POST("/expense", expenseHandler.CreateExpense)
		api.GET("/expense", expenseHandler.GetExpenses)
		api.GET("/expense/stats", expenseHandler.GetExpenseStats)
		api.PUT("/expense/:id", expenseHandler.UpdateExpense)
		api.DELETE("/expense/:id", expenseHandler.DeleteExpense)
	}

	orders := router.Group("/api/productOrders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/summary/financial", orderHandler.GetFinancialSummary)
		orders.GET("/summary/daily", orderHandler.GetDailySummary)
		orders.GET("/:id", orderHandler.GetOrderByID)
		orders.PUT("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
