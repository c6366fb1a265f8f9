package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"

	"candela/internal/apperrors"
	"candela/pkg/money"
)

// StripeProvider implements Provider on top of the Stripe API.
type StripeProvider struct {
	api           *client.API
	webhookSecret string
}

// NewStripeProvider creates a provider bound to the given API key and
// webhook signing secret.
func NewStripeProvider(apiKey, webhookSecret string) *StripeProvider {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeProvider{
		api:           api,
		webhookSecret: webhookSecret,
	}
}

// CreateIntent opens a payment intent with automatic payment methods so the
// hosted confirmation step can offer whatever the account has enabled.
func (p *StripeProvider) CreateIntent(ctx context.Context, amount money.Cents, currency string) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, normalizeStripeError("create payment intent", err)
	}
	return toIntent(pi), nil
}

// RetrieveIntent fetches the authoritative state of an intent.
func (p *StripeProvider) RetrieveIntent(ctx context.Context, id string) (Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.Get(id, params)
	if err != nil {
		return Intent{}, normalizeStripeError("retrieve payment intent", err)
	}
	return toIntent(pi), nil
}

// UpdateIntentAmount mutates the amount of a not-yet-settled intent. Amount
// mutation is only valid pre-settlement, so the intent status is checked
// against the provider first.
func (p *StripeProvider) UpdateIntentAmount(ctx context.Context, id string, amount money.Cents) (Intent, error) {
	current, err := p.RetrieveIntent(ctx, id)
	if err != nil {
		return Intent{}, err
	}
	if current.Status == IntentStatusSucceeded || current.Status == IntentStatusCanceled {
		return Intent{}, apperrors.InvalidState(
			fmt.Sprintf("payment intent %s is %s and can no longer change amount", id, current.Status))
	}

	params := &stripe.PaymentIntentParams{
		Amount: stripe.Int64(int64(amount)),
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.Update(id, params)
	if err != nil {
		return Intent{}, normalizeStripeError("update payment intent amount", err)
	}
	return toIntent(pi), nil
}

// VerifyWebhook validates the Stripe-Signature header against the raw body
// and normalizes the event. The API version check is skipped because the
// account's webhook endpoint is pinned independently of the SDK release.
func (p *StripeProvider) VerifyWebhook(payload []byte, sigHeader string) (Event, error) {
	ev, err := webhook.ConstructEventWithOptions(payload, sigHeader, p.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return Event{}, apperrors.Signature("webhook signature verification failed")
	}

	out := Event{ID: ev.ID}
	switch ev.Type {
	case "payment_intent.succeeded":
		out.Type = EventPaymentSucceeded
	case "payment_intent.payment_failed":
		out.Type = EventPaymentFailed
	default:
		out.Type = EventIgnored
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
		return Event{}, apperrors.Validation("webhook payload does not contain a payment intent")
	}
	out.IntentID = pi.ID
	return out, nil
}

func toIntent(pi *stripe.PaymentIntent) Intent {
	return Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       IntentStatus(pi.Status),
		Amount:       money.Cents(pi.Amount),
	}
}

// normalizeStripeError maps SDK errors into the domain taxonomy so callers
// never see provider types.
func normalizeStripeError(op string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		log.Printf("stripe %s failed: code=%s msg=%s", op, stripeErr.Code, stripeErr.Msg)
		return apperrors.Upstream(fmt.Sprintf("payment provider rejected %s", op), err)
	}
	return apperrors.Upstream(fmt.Sprintf("payment provider unreachable during %s", op), err)
}
