package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"candela/internal/apperrors"
	"candela/internal/models"
	"candela/internal/payments"
	"candela/internal/repositories"
)

// EventPublisher is the slice of the message-queue client the reconciler
// needs. A nil publisher disables event publication. eventType labels the
// message kind, e.g. order.paid.
type EventPublisher interface {
	Publish(exchange, eventType string, body []byte) error
}

// NavTarget is where the browser is sent after returning from the hosted
// payment step.
type NavTarget string

const (
	NavSuccess NavTarget = "/checkout/success"
	NavRetry   NavTarget = "/checkout/retry"
	NavHome    NavTarget = "/"
)

// ReconcileService converges order status from the two racing payment
// confirmation channels: signed provider webhooks and the client redirect.
// Every transition is a conditional write guarded by the order's current
// persisted status, so duplicate and out-of-order deliveries no-op.
type ReconcileService struct {
	orderRepo repositories.OrderRepository
	provider  payments.Provider
	events    EventPublisher
}

// NewReconcileService creates a new ReconcileService.
func NewReconcileService(orderRepo repositories.OrderRepository, provider payments.Provider, events EventPublisher) *ReconcileService {
	return &ReconcileService{
		orderRepo: orderRepo,
		provider:  provider,
		events:    events,
	}
}

// HandleProviderEvent applies a signature-verified webhook event to the
// matching order. Unknown intents and already-settled orders are successful
// no-ops: the provider delivers at least once and a repeat must not fail.
func (s *ReconcileService) HandleProviderEvent(ev payments.Event) error {
	var target models.OrderStatus
	switch ev.Type {
	case payments.EventPaymentSucceeded:
		target = models.StatusPaid
	case payments.EventPaymentFailed:
		target = models.StatusFailed
	default:
		return nil
	}

	order, err := s.orderRepo.GetByPaymentIntentID(ev.IntentID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			// Possibly another environment sharing the endpoint; ack so
			// the provider stops retrying.
			log.Printf("webhook %s references unknown payment intent %s, ignoring", ev.ID, ev.IntentID)
			return nil
		}
		return apperrors.Internal("failed to load order for webhook", err)
	}

	applied, err := s.orderRepo.UpdateStatusIf(order.ID, target, models.TransitionSources(target))
	if err != nil {
		// Surfaced as a 500; the event is safely retryable because the
		// conditional write no-ops once a retry lands.
		return apperrors.Internal("failed to apply payment outcome", err)
	}
	if applied {
		log.Printf("order %s -> %s (webhook %s, intent %s)", order.OrderNumber, target, ev.ID, ev.IntentID)
		s.publishStatusChanged(order, target)
	}
	return nil
}

// ResolveRedirect handles the browser returning from the hosted payment
// step. The client-reported status is untrusted; only a server-side
// re-query of the provider's intent may drive a paid transition. The return
// value is purely a navigation target.
func (s *ReconcileService) ResolveRedirect(ctx context.Context, intentID string) NavTarget {
	if intentID == "" {
		return NavHome
	}

	intent, err := s.provider.RetrieveIntent(ctx, intentID)
	if err != nil {
		log.Printf("redirect re-query for intent %s failed: %v", intentID, err)
		return NavHome
	}

	switch intent.Status {
	case payments.IntentStatusSucceeded:
		// Authoritative answer; settle now rather than waiting for the
		// webhook to race in.
		if order, err := s.orderRepo.GetByPaymentIntentID(intentID); err == nil {
			applied, uerr := s.orderRepo.UpdateStatusIf(order.ID, models.StatusPaid, models.TransitionSources(models.StatusPaid))
			if uerr != nil {
				log.Printf("redirect settle for order %s failed: %v", order.OrderNumber, uerr)
			} else if applied {
				log.Printf("order %s -> %s (redirect re-query, intent %s)", order.OrderNumber, models.StatusPaid, intentID)
				s.publishStatusChanged(order, models.StatusPaid)
			}
		}
		return NavSuccess
	case payments.IntentStatusProcessing:
		// The webhook will settle it; show success optimistically.
		return NavSuccess
	case payments.IntentStatusRequiresPayment, payments.IntentStatusRequiresAction, payments.IntentStatusCanceled:
		return NavRetry
	default:
		return NavHome
	}
}

// ApplyStatus performs an explicitly requested transition (admin or owner
// surface). Requesting the status the order already has is a no-op success;
// a transition the lifecycle graph forbids is an invalid_state error.
func (s *ReconcileService) ApplyStatus(orderID string, target models.OrderStatus) error {
	if sources := models.TransitionSources(target); len(sources) > 0 {
		applied, err := s.orderRepo.UpdateStatusIf(orderID, target, sources)
		if err != nil {
			return apperrors.Internal("failed to update order status", err)
		}
		if applied {
			if order, gerr := s.orderRepo.GetByID(orderID); gerr == nil {
				s.publishStatusChanged(order, target)
			}
			return nil
		}
	}

	// Not applied. Repeating the order's current status is a no-op success
	// even for statuses with no inbound transitions, like pending.
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return apperrors.NotFound("order not found")
		}
		return apperrors.Internal("failed to load order", err)
	}
	if order.Status == target {
		return nil
	}
	return apperrors.InvalidState(fmt.Sprintf("cannot transition order from %s to %s", order.Status, target))
}

// publishStatusChanged emits an order lifecycle event for downstream
// consumers (fulfilment, notifications). Publish failures are logged, not
// propagated: the status write already succeeded.
func (s *ReconcileService) publishStatusChanged(order *models.Order, status models.OrderStatus) {
	if s.events == nil {
		return
	}

	payload := map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"status":       status,
	}
	if order.PaymentIntentID != nil {
		payload["payment_intent_id"] = *order.PaymentIntentID
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("failed to marshal status event for order %s: %v", order.OrderNumber, err)
		return
	}
	if err := s.events.Publish("", "order."+string(status), body); err != nil {
		log.Printf("Warning: failed to publish status event for order %s: %v", order.OrderNumber, err)
	}
}
