package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
)

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
}

type stripeAdapter struct {
	cfg StripeConfig
}

func NewStripeAdapter(cfg StripeConfig) Adapter {
	return &stripeAdapter{cfg: cfg}
}

func (s *stripeAdapter) Name() string { return GatewayStripe }

func (s *stripeAdapter) CreatePayment(ctx context.Context, params PaymentParams) Outcome {
	if err := ctx.Err(); err != nil {
		return Outcome{Success: false, ErrorDetail: fmt.Sprintf("stripe: %v", err)}
	}

	paymentIntentID := fmt.Sprintf("pi_stripe_%d", time.Now().UnixNano())
	paymentURL := fmt.Sprintf("https://checkout.stripe.com/pay/%s", paymentIntentID)

	log.Printf("stripe: payment intent %s created (%s %s)",
		paymentIntentID, params.Amount.StringFixed(2), params.Currency)

	return Outcome{
		Success:           true,
		ExternalReference: paymentIntentID,
		PaymentURL:        paymentURL,
		RawResponse: map[string]interface{}{
			"id":            paymentIntentID,
			"amount":        params.Amount.Mul(minorUnitFactor).IntPart(),
			"currency":      strings.ToLower(params.Currency),
			"status":        "requires_payment_method",
			"client_secret": fmt.Sprintf("%s_secret_sandbox", paymentIntentID),
		},
	}
}

type stripeWebhookPayload struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

func (s *stripeAdapter) HandleWebhook(payload []byte) (WebhookEvent, bool) {
	var event stripeWebhookPayload
	if err := json.Unmarshal(payload, &event); err != nil {
		return WebhookEvent{}, false
	}
	if event.Data.Object.ID == "" {
		return WebhookEvent{}, false
	}

	switch event.Type {
	case "payment_intent.succeeded":
		return WebhookEvent{Reference: event.Data.Object.ID, Kind: EventCaptured}, true
	case "payment_intent.payment_failed":
		return WebhookEvent{Reference: event.Data.Object.ID, Kind: EventDenied}, true
	default:
		return WebhookEvent{}, false
	}
}

func (s *stripeAdapter) GetStatus(ctx context.Context, externalReference string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	log.Printf("stripe: status check for %s", externalReference)
	return "succeeded", nil
}
