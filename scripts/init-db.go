package main

import (
	"fmt"
	"log"
	"time"

	"shop_manager/internal/config"
	"shop_manager/internal/database"
	"shop_manager/internal/models"
	"shop_manager/internal/repository"
	"shop_manager/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Expense{},
		&models.Order{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to create tables:", err)
	}

	// Seed the default admin account
	fmt.Println("Seeding default admin user...")
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo, cfg.JWTSecret, time.Duration(cfg.SessionTimeout)*time.Second, cfg.ImageMaxWidth)

	admin, err := userService.Register(services.RegisterRequest{
		Username:       "admin",
		Gender:         "other",
		Email:          "admin@example.com",
		Password:       "admin123",
		PhoneNumber:    "0000000000",
		CurrentAddress: "Head office",
		Role:           string(models.SuperAdmin),
	})
	if err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	} else {
		fmt.Printf("Admin user created with login ID %s\n", admin.LoginID)
	}

	fmt.Println("Database initialization complete.")
}
