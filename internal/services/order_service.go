package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"candela/internal/apperrors"
	"candela/internal/models"
	"candela/internal/payments"
	"candela/internal/repositories"
	"candela/pkg/money"

	"github.com/google/uuid"
)

// Shipping options and their flat costs in minor units.
var shippingCosts = map[string]money.Cents{
	"standard": 395,
	"express":  795,
}

// CheckoutItem is one requested line of a checkout.
type CheckoutItem struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CheckoutRequest is the body of a checkout call.
type CheckoutRequest struct {
	Items          []CheckoutItem `json:"items" validate:"required,min=1,dive"`
	ShippingOption string         `json:"shipping_option"`
}

// CheckoutResult carries the created order and the provider client secret
// the browser needs for the hosted confirmation step.
type CheckoutResult struct {
	Order        *models.Order
	ClientSecret string
}

// OrderService handles checkout and owner-scoped order reads. Status
// transitions are the ReconcileService's job.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	provider    payments.Provider
	currency    string
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, provider payments.Provider, currency string) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		provider:    provider,
		currency:    currency,
	}
}

// Checkout validates the requested items, opens a payment intent for the
// total, and persists a pending order referencing it. userID is nil for
// guest checkouts.
func (s *OrderService) Checkout(ctx context.Context, userID *string, req CheckoutRequest) (*CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.Validation("at least one item is required")
	}

	var total money.Cents
	var items []models.OrderItem
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, apperrors.Validation(fmt.Sprintf("quantity must be positive for product %s", item.ProductID))
		}
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, apperrors.Validation(fmt.Sprintf("unknown product %s", item.ProductID))
		}

		// Snapshot title and price at order time.
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			VariantID: item.VariantID,
			Title:     product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			ImageURL:  product.ImageURL,
		})
		total += product.Price * money.Cents(item.Quantity)
	}

	shipping, err := shippingCost(req.ShippingOption)
	if err != nil {
		return nil, err
	}
	total += shipping

	intent, err := s.provider.CreateIntent(ctx, total, s.currency)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:              uuid.New().String(),
		OrderNumber:     newOrderNumber(),
		PaymentIntentID: &intent.ID,
		UserID:          userID,
		Status:          models.StatusPending,
		Total:           total,
		Shipping:        shipping,
		Items:           items,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, apperrors.Internal("failed to create order", err)
	}

	return &CheckoutResult{Order: order, ClientSecret: intent.ClientSecret}, nil
}

// GetForCaller returns an order by internal id, applying the ownership
// policy: admins see everything, owners see their own, and everyone else
// gets not_found so record existence is not leaked.
func (s *OrderService) GetForCaller(id string, ident *Identity) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	return s.checkOwnership(order, err, ident)
}

// GetByPaymentIntentForCaller returns the order referencing a payment
// intent, under the same ownership policy.
func (s *OrderService) GetByPaymentIntentForCaller(intentID string, ident *Identity) (*models.Order, error) {
	order, err := s.orderRepo.GetByPaymentIntentID(intentID)
	return s.checkOwnership(order, err, ident)
}

func (s *OrderService) checkOwnership(order *models.Order, err error, ident *Identity) (*models.Order, error) {
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.NotFound("order not found")
		}
		return nil, apperrors.Internal("failed to load order", err)
	}
	if ident.Admin || order.OwnedBy(ident.UserID) {
		return order, nil
	}
	// Deliberately indistinguishable from a missing record.
	return nil, apperrors.NotFound("order not found")
}

// ListForUser returns the caller's orders, newest first.
func (s *OrderService) ListForUser(userID string) ([]models.Order, error) {
	orders, err := s.orderRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list orders", err)
	}
	return orders, nil
}

// UpdateShipping changes the shipping option of a pending order, mutating
// the payment intent amount first so the provider and the store never
// disagree on what will be charged.
func (s *OrderService) UpdateShipping(ctx context.Context, id string, ident *Identity, option string) (*models.Order, error) {
	order, err := s.GetForCaller(id, ident)
	if err != nil {
		return nil, err
	}
	if order.Status != models.StatusPending {
		return nil, apperrors.InvalidState(fmt.Sprintf("order %s is %s and can no longer change", order.OrderNumber, order.Status))
	}
	if order.PaymentIntentID == nil {
		return nil, apperrors.InvalidState(fmt.Sprintf("order %s has no payment intent", order.OrderNumber))
	}

	shipping, err := shippingCost(option)
	if err != nil {
		return nil, err
	}
	newTotal := order.Total - order.Shipping + shipping

	if _, err := s.provider.UpdateIntentAmount(ctx, *order.PaymentIntentID, newTotal); err != nil {
		return nil, err
	}
	applied, err := s.orderRepo.UpdateAmounts(order.ID, newTotal, shipping)
	if err != nil {
		return nil, apperrors.Internal("failed to update order amounts", err)
	}
	if !applied {
		// A payment confirmation settled the order between the status check
		// above and the write; settled totals must not change.
		return nil, apperrors.InvalidState(fmt.Sprintf("order %s is no longer pending", order.OrderNumber))
	}

	order.Total = newTotal
	order.Shipping = shipping
	return order, nil
}

func shippingCost(option string) (money.Cents, error) {
	if option == "" {
		option = "standard"
	}
	cost, ok := shippingCosts[option]
	if !ok {
		return 0, apperrors.Validation(fmt.Sprintf("unknown shipping option: %s", option))
	}
	return cost, nil
}

// newOrderNumber generates a customer-facing order number like CW-9F3A61B2.
func newOrderNumber() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "CW-" + strings.ToUpper(raw[:8])
}
