package repositories

import (
	"errors"
	"fmt"

	"candela/internal/models"
	"candela/pkg/money"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create persists an order and its items in one transaction. GORM inserts
// the association rows together with the parent.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves an order with its items by internal id.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	return r.getOne("id = ?", id)
}

// GetByOrderNumber retrieves an order by its customer-facing number.
func (r *GORMOrderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	return r.getOne("order_number = ?", orderNumber)
}

// GetByPaymentIntentID retrieves the order referencing a payment intent.
func (r *GORMOrderRepository) GetByPaymentIntentID(intentID string) (*models.Order, error) {
	return r.getOne("payment_intent_id = ?", intentID)
}

func (r *GORMOrderRepository) getOne(query string, arg interface{}) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// GetByUserID returns a user's orders, newest first.
func (r *GORMOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// UpdateAmounts rewrites the stored totals of an order. The pending guard
// lives in the WHERE clause so a payment confirmation landing concurrently
// cannot have its totals rewritten afterwards.
func (r *GORMOrderRepository) UpdateAmounts(id string, total, shipping money.Cents) (bool, error) {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{"total": total, "shipping": shipping})
	if res.Error != nil {
		return false, fmt.Errorf("failed to update order amounts: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// UpdateStatusIf applies newStatus in a single guarded UPDATE. The status
// condition lives in the WHERE clause so concurrent reconciliation triggers
// cannot race a separate read-then-write.
func (r *GORMOrderRepository) UpdateStatusIf(id string, newStatus models.OrderStatus, from []models.OrderStatus) (bool, error) {
	if len(from) == 0 {
		return false, nil
	}
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", newStatus)
	if res.Error != nil {
		return false, fmt.Errorf("failed to update status of order %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
