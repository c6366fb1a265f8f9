package repositories

import (
	"sort"
	"sync"
	"time"

	"candela/internal/models"
	"candela/pkg/money"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// It mirrors the conditional-write semantics of the GORM implementation so
// reconciliation tests exercise the same idempotency behavior.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// GetByID returns an order by its internal id.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

// GetByOrderNumber returns an order by its customer-facing number.
func (r *MockOrderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.OrderNumber == orderNumber {
			o := order
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// GetByPaymentIntentID returns the order referencing a payment intent.
func (r *MockOrderRepository) GetByPaymentIntentID(intentID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.PaymentIntentID != nil && *order.PaymentIntentID == intentID {
			o := order
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// GetByUserID returns a user's orders, newest first.
func (r *MockOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []models.Order
	for _, order := range r.orders {
		if order.OwnedBy(userID) {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// UpdateAmounts rewrites the stored totals of an order only while it is
// pending, under the repository lock, matching the guarded UPDATE of the
// GORM implementation.
func (r *MockOrderRepository) UpdateAmounts(id string, total, shipping money.Cents) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok || order.Status != models.StatusPending {
		return false, nil
	}
	order.Total = total
	order.Shipping = shipping
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return true, nil
}

// UpdateStatusIf applies newStatus only when the current status is in from,
// under the repository lock, matching the guarded UPDATE of the GORM
// implementation.
func (r *MockOrderRepository) UpdateStatusIf(id string, newStatus models.OrderStatus, from []models.OrderStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return false, nil
	}
	for _, f := range from {
		if order.Status == f {
			order.Status = newStatus
			order.UpdatedAt = time.Now()
			r.orders[id] = order
			return true, nil
		}
	}
	return false, nil
}
