package repositories

import (
	"fmt"

	"candela/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressRepository defines the interface for address data access.
type AddressRepository interface {
	GetByUserID(userID string) ([]models.Address, error)
	Create(address *models.Address) error
	// DeleteOwned removes an address only when it belongs to userID.
	DeleteOwned(id, userID string) error
}

// GORMAddressRepository is a GORM implementation of AddressRepository.
type GORMAddressRepository struct {
	db *gorm.DB
}

// NewGORMAddressRepository creates a new instance of GORMAddressRepository.
func NewGORMAddressRepository(db *gorm.DB) *GORMAddressRepository {
	return &GORMAddressRepository{
		db: db,
	}
}

// GetByUserID returns a user's addresses.
func (r *GORMAddressRepository) GetByUserID(userID string) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to list addresses for user %s: %w", userID, err)
	}
	return addresses, nil
}

// Create creates a new address.
func (r *GORMAddressRepository) Create(address *models.Address) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// DeleteOwned deletes an address with the ownership match in the WHERE
// clause, so a non-owner delete affects zero rows.
func (r *GORMAddressRepository) DeleteOwned(id, userID string) error {
	res := r.db.Delete(&models.Address{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address with ID %s not found", id)
	}
	return nil
}
