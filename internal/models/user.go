package models

import "gorm.io/gorm"

// User roles. The admin gate itself reads the configured allow-list; the
// role column is carried in JWT claims for future use.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a customer or back-office user. Email is stored lowercase
// so uniqueness and comparison are case-insensitive.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash; no json tag for security
	Role       string `json:"role" gorm:"type:varchar(20);default:user"`
	gorm.Model        // CreatedAt, UpdatedAt, DeletedAt
}

// Address is a shipping address owned by a user.
type Address struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string `json:"-" gorm:"index;type:varchar(36);not null"`
	Line1      string `json:"line1" gorm:"type:varchar(200)" validate:"required,max=200"`
	Line2      string `json:"line2,omitempty" gorm:"type:varchar(200)" validate:"omitempty,max=200"`
	City       string `json:"city" gorm:"type:varchar(100)" validate:"required,max=100"`
	PostalCode string `json:"postal_code" gorm:"type:varchar(20)" validate:"required,max=20"`
	Country    string `json:"country" gorm:"type:varchar(2)" validate:"required,len=2"`
	gorm.Model
}

// WishlistItem marks a product a user wants to come back to.
type WishlistItem struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string `json:"-" gorm:"index;type:varchar(36);not null"`
	ProductID string `json:"product_id" gorm:"type:varchar(36);not null" validate:"required"`
	gorm.Model
}
