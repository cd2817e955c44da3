package models

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	LoginID        string         `json:"login_id" gorm:"unique;not null"`
	Username       string         `json:"username" gorm:"unique;not null"`
	Gender         string         `json:"gender"`
	Email          string         `json:"email" gorm:"unique;not null"`
	PhoneNumber    string         `json:"phone_number" gorm:"unique;not null"`
	CurrentAddress string         `json:"current_address"`
	Role           string         `json:"role" gorm:"default:'user'"` // super_admin, admin, user
	Password       string         `json:"-" gorm:"not null"`
	StatusID       int            `json:"status_id" gorm:"default:1"` // 1 active, 0 disabled
	ImageURL       string         `json:"image_url" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	SuperAdmin UserRole = "super_admin"
	Admin      UserRole = "admin"
	Users      UserRole = "user"
)

// GenerateLoginID returns a login identifier in the form FTB-<4 digits>.
// Collisions are caught by the unique constraint on login_id.
func GenerateLoginID() string {
	return fmt.Sprintf("FTB-%04d", 1000+rand.Intn(9000))
}
