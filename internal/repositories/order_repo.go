package repositories

import (
	"errors"

	"candela/internal/models"
	"candela/pkg/money"
)

// ErrOrderNotFound is returned by lookups when no order matches. Callers
// decide whether to surface it or hide it behind a not_found response.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order data access. Orders are
// never deleted, so there is no Delete.
type OrderRepository interface {
	// Create persists an order together with its items atomically.
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByOrderNumber(orderNumber string) (*models.Order, error)
	GetByPaymentIntentID(intentID string) (*models.Order, error)
	// GetByUserID returns a user's orders, newest first.
	GetByUserID(userID string) ([]models.Order, error)
	// UpdateAmounts rewrites the stored totals of an order, guarded on the
	// order still being pending. It reports whether the write was applied;
	// a non-applied write (missing or already settled order) is not an
	// error.
	UpdateAmounts(id string, total, shipping money.Cents) (bool, error)
	// UpdateStatusIf sets newStatus only when the order's current persisted
	// status is one of from, as a single conditional write. It reports
	// whether the write was applied; a non-applied write is not an error.
	UpdateStatusIf(id string, newStatus models.OrderStatus, from []models.OrderStatus) (bool, error)
}
