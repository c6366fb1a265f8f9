// Package payments is the boundary to the external payment provider. The
// rest of the system only sees the Provider interface and the normalized
// Intent/Event types; provider SDK types never leak past this package.
package payments

import (
	"context"

	"candela/pkg/money"
)

// IntentStatus is the provider-reported lifecycle state of a payment intent.
type IntentStatus string

const (
	IntentStatusRequiresPayment IntentStatus = "requires_payment_method"
	IntentStatusRequiresAction  IntentStatus = "requires_action"
	IntentStatusProcessing      IntentStatus = "processing"
	IntentStatusSucceeded       IntentStatus = "succeeded"
	IntentStatusCanceled        IntentStatus = "canceled"
)

// Intent is the minimal view of a provider payment intent the system needs.
type Intent struct {
	ID           string
	ClientSecret string
	Status       IntentStatus
	Amount       money.Cents
}

// EventType classifies verified webhook notifications.
type EventType string

const (
	EventPaymentSucceeded EventType = "payment_succeeded"
	EventPaymentFailed    EventType = "payment_failed"
	// EventIgnored marks a valid, signed event this system does not act on.
	EventIgnored EventType = "ignored"
)

// Event is a signature-verified webhook notification, normalized to the
// fields the reconciliation service consumes.
type Event struct {
	ID       string
	Type     EventType
	IntentID string
}

// Provider abstracts the operations required from the upstream payment
// provider.
type Provider interface {
	// CreateIntent opens a payment intent for the given minor-unit amount.
	CreateIntent(ctx context.Context, amount money.Cents, currency string) (Intent, error)

	// RetrieveIntent fetches the authoritative state of an intent.
	RetrieveIntent(ctx context.Context, id string) (Intent, error)

	// UpdateIntentAmount mutates the amount of a not-yet-settled intent.
	// It fails with an invalid_state error when the provider reports the
	// intent as already succeeded or canceled.
	UpdateIntentAmount(ctx context.Context, id string, amount money.Cents) (Intent, error)

	// VerifyWebhook checks the signature header against the raw request
	// body and returns the normalized event. It must receive the body
	// exactly as transmitted: a re-serialized body will not match.
	VerifyWebhook(payload []byte, sigHeader string) (Event, error)
}
