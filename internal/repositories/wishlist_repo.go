package repositories

import (
	"fmt"

	"candela/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistRepository defines the interface for wishlist data access.
type WishlistRepository interface {
	GetByUserID(userID string) ([]models.WishlistItem, error)
	Create(item *models.WishlistItem) error
	// DeleteOwned removes a wishlist entry only when it belongs to userID.
	DeleteOwned(id, userID string) error
}

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// GetByUserID returns a user's wishlist entries.
func (r *GORMWishlistRepository) GetByUserID(userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list wishlist for user %s: %w", userID, err)
	}
	return items, nil
}

// Create adds a wishlist entry.
func (r *GORMWishlistRepository) Create(item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create wishlist entry: %w", err)
	}
	return nil
}

// DeleteOwned deletes a wishlist entry with the ownership match in the
// WHERE clause.
func (r *GORMWishlistRepository) DeleteOwned(id, userID string) error {
	res := r.db.Delete(&models.WishlistItem{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete wishlist entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist entry with ID %s not found", id)
	}
	return nil
}
