package models

import (
	"fmt"
	"time"

	"candela/pkg/money"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPaid       OrderStatus = "paid"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
	StatusFailed     OrderStatus = "failed"
)

// statusPredecessors maps each status to the statuses an order may move
// there from. Statuses absent from every value set (delivered, cancelled,
// failed) are terminal.
var statusPredecessors = map[OrderStatus][]OrderStatus{
	StatusPaid:       {StatusPending},
	StatusFailed:     {StatusPending, StatusPaid},
	StatusCancelled:  {StatusPending, StatusPaid},
	StatusProcessing: {StatusPaid},
	StatusShipped:    {StatusProcessing},
	StatusDelivered:  {StatusShipped},
}

// ParseOrderStatus validates a status string coming from an external caller.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusPaid, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusFailed:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("invalid order status: %s", s)
}

// TransitionSources returns the statuses from which target is reachable.
// Used as the WHERE-clause guard of conditional status updates.
func TransitionSources(target OrderStatus) []OrderStatus {
	return statusPredecessors[target]
}

// CanTransitionTo reports whether a single step from s to next is allowed
// by the lifecycle graph.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, from := range statusPredecessors[next] {
		if from == s {
			return true
		}
	}
	return false
}

// Terminal reports whether no further automatic transition leaves s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusFailed
}

// OrderItem is a line-item snapshot taken at checkout time. It is created
// atomically with its parent order and never mutated afterwards.
type OrderItem struct {
	ID        uint        `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string      `json:"-" gorm:"index;type:varchar(36);not null"`
	ProductID string      `json:"product_id" gorm:"type:varchar(36);not null"`
	VariantID string      `json:"variant_id,omitempty" gorm:"type:varchar(36)"`
	Title     string      `json:"title" gorm:"type:varchar(200);not null"`
	Quantity  int         `json:"quantity" gorm:"not null"`
	UnitPrice money.Cents `json:"unit_price" gorm:"not null"` // minor units
	ImageURL  string      `json:"image_url,omitempty" gorm:"type:varchar(500)"`
}

// Order represents a customer order. Amounts are always stored in minor
// units; handlers convert to major units when rendering a response.
// Orders are never physically deleted.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderNumber     string      `json:"order_number" gorm:"uniqueIndex;type:varchar(20);not null"`
	PaymentIntentID *string     `json:"payment_intent_id,omitempty" gorm:"uniqueIndex;type:varchar(100)"` // immutable once set
	UserID          *string     `json:"user_id,omitempty" gorm:"index;type:varchar(36)"`                  // nil for guest orders
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);not null"`
	Total           money.Cents `json:"-" gorm:"not null"`
	Shipping        money.Cents `json:"-" gorm:"not null"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OwnedBy reports whether the order belongs to the given user. Guest orders
// carry no owner reference and belong to nobody.
func (o *Order) OwnedBy(userID string) bool {
	return o.UserID != nil && *o.UserID == userID
}
