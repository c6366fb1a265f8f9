package handlers

import (
	"time"

	"candela/internal/apperrors"
	"candela/internal/middleware"
	"candela/internal/models"
	"candela/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout and orders.
type OrderHandler struct {
	orderService     *services.OrderService
	reconcileService *services.ReconcileService
	validate         *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService, reconcileService *services.ReconcileService) *OrderHandler {
	return &OrderHandler{
		orderService:     orderService,
		reconcileService: reconcileService,
		validate:         validator.New(),
	}
}

// RegisterRoutes registers checkout and order routes. Checkout allows guest
// callers, order reads require a session, status updates require admin.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authRequired, optionalAuth, adminRequired fiber.Handler) {
	router.Post("/checkout", optionalAuth, h.HandleCheckout)

	orderRoutes := router.Group("/orders", authRequired)
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Get("/lookup", h.HandleLookupByPaymentIntent)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Put("/:id/shipping", h.HandleUpdateShipping)
	orderRoutes.Post("/:id/cancel", h.HandleCancelOrder)
	orderRoutes.Patch("/:id/status", adminRequired, h.HandleUpdateStatus)
}

// orderItemResponse renders a line item with its unit price in major units.
type orderItemResponse struct {
	ProductID string  `json:"product_id"`
	VariantID string  `json:"variant_id,omitempty"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// orderResponse renders an order with amounts converted to major units.
// This is the single place stored minor units cross to decimals.
type orderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	PaymentIntentID string              `json:"payment_intent_id,omitempty"`
	Status          models.OrderStatus  `json:"status"`
	Total           float64             `json:"total"`
	Shipping        float64             `json:"shipping"`
	Items           []orderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func toOrderResponse(o *models.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.Major(),
			ImageURL:  item.ImageURL,
		})
	}
	resp := orderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		Total:       o.Total.Major(),
		Shipping:    o.Shipping.Major(),
		Items:       items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.PaymentIntentID != nil {
		resp.PaymentIntentID = *o.PaymentIntentID
	}
	return resp
}

// HandleCheckout opens a payment intent and creates a pending order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req services.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.Validation(validationMessage(err))
	}

	var userID *string
	if ident := middleware.Identity(c); ident != nil {
		userID = &ident.UserID
	}

	result, err := h.orderService.Checkout(c.UserContext(), userID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order":         toOrderResponse(result.Order),
		"client_secret": result.ClientSecret,
	})
}

// HandleListOrders returns the caller's orders, newest first.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	ident := middleware.Identity(c)
	orders, err := h.orderService.ListForUser(ident.UserID)
	if err != nil {
		return err
	}

	responses := make([]orderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, toOrderResponse(&orders[i]))
	}
	return c.JSON(responses)
}

// HandleGetOrder returns a single order by internal id.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	order, err := h.orderService.GetForCaller(c.Params("id"), middleware.Identity(c))
	if err != nil {
		return err
	}
	return c.JSON(toOrderResponse(order))
}

// HandleLookupByPaymentIntent returns the order referencing a payment
// intent id, e.g. for the post-payment status page.
func (h *OrderHandler) HandleLookupByPaymentIntent(c *fiber.Ctx) error {
	intentID := c.Query("payment_intent")
	if intentID == "" {
		return apperrors.Validation("payment_intent query parameter is required")
	}

	order, err := h.orderService.GetByPaymentIntentForCaller(intentID, middleware.Identity(c))
	if err != nil {
		return err
	}
	return c.JSON(toOrderResponse(order))
}

// UpdateShippingRequest changes the shipping option of a pending order.
type UpdateShippingRequest struct {
	ShippingOption string `json:"shipping_option" validate:"required"`
}

// HandleUpdateShipping changes the shipping option of a pending order,
// pre-payment only.
func (h *OrderHandler) HandleUpdateShipping(c *fiber.Ctx) error {
	var req UpdateShippingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.Validation(validationMessage(err))
	}

	order, err := h.orderService.UpdateShipping(c.UserContext(), c.Params("id"), middleware.Identity(c), req.ShippingOption)
	if err != nil {
		return err
	}
	return c.JSON(toOrderResponse(order))
}

// HandleCancelOrder is the owner-scoped status change: a customer may
// cancel an order that has not been handed to fulfilment.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	// Ownership check first so a foreign order id reads as absent.
	order, err := h.orderService.GetForCaller(c.Params("id"), middleware.Identity(c))
	if err != nil {
		return err
	}
	if err := h.reconcileService.ApplyStatus(order.ID, models.StatusCancelled); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Order " + order.OrderNumber + " cancelled"})
}

// UpdateStatusRequest is the admin status update body.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateStatus is the admin-scoped status transition.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.Validation(validationMessage(err))
	}

	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		return apperrors.Validation(err.Error())
	}

	if err := h.reconcileService.ApplyStatus(c.Params("id"), status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Order status updated to " + string(status)})
}
