package handlers

import (
	"candela/internal/payments"
	"candela/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler receives provider webhooks and the client redirect
// callback.
type PaymentHandler struct {
	provider         payments.Provider
	reconcileService *services.ReconcileService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(provider payments.Provider, reconcileService *services.ReconcileService) *PaymentHandler {
	return &PaymentHandler{
		provider:         provider,
		reconcileService: reconcileService,
	}
}

// RegisterRoutes registers the payment routes. Both are unauthenticated:
// the webhook proves itself by signature, the redirect only navigates.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Post("/webhook", h.HandleWebhook)
	paymentRoutes.Get("/return", h.HandleReturn)
}

// HandleWebhook verifies the provider signature over the raw body and
// applies the event. A no-op (duplicate delivery, unknown intent) is still
// a 200 so the provider stops retrying; only a bad signature is a 400 and
// only a store failure is a 500.
func (h *PaymentHandler) HandleWebhook(c *fiber.Ctx) error {
	// c.Body() is the raw transmitted payload; the signature would not
	// match a re-serialized body.
	event, err := h.provider.VerifyWebhook(c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		return err
	}

	if err := h.reconcileService.HandleProviderEvent(event); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"received": true})
}

// HandleReturn consumes the browser redirect from the hosted payment step.
// The query parameters are untrusted input and only ever choose where to
// navigate; order state is settled by the webhook or by the server-side
// re-query inside ResolveRedirect.
func (h *PaymentHandler) HandleReturn(c *fiber.Ctx) error {
	intentID := c.Query("payment_intent")
	target := h.reconcileService.ResolveRedirect(c.UserContext(), intentID)
	return c.Redirect(string(target), fiber.StatusSeeOther)
}
