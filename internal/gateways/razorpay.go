package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// Providers quote amounts in minor units (cents, paise).
var minorUnitFactor = decimal.NewFromInt(100)

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

type razorpayAdapter struct {
	cfg RazorpayConfig
}

func NewRazorpayAdapter(cfg RazorpayConfig) Adapter {
	return &razorpayAdapter{cfg: cfg}
}

func (r *razorpayAdapter) Name() string { return GatewayRazorpay }

func (r *razorpayAdapter) CreatePayment(ctx context.Context, params PaymentParams) Outcome {
	if err := ctx.Err(); err != nil {
		return Outcome{Success: false, ErrorDetail: fmt.Sprintf("razorpay: %v", err)}
	}

	paymentID := fmt.Sprintf("razorpay_%d", time.Now().UnixNano())
	paymentURL := fmt.Sprintf("https://checkout.razorpay.com/v1/checkout.js?payment_id=%s", paymentID)

	log.Printf("razorpay: payment %s created (%s %s)",
		paymentID, params.Amount.StringFixed(2), params.Currency)

	return Outcome{
		Success:           true,
		ExternalReference: paymentID,
		PaymentURL:        paymentURL,
		RawResponse: map[string]interface{}{
			"id":          paymentID,
			"amount":      params.Amount.Mul(minorUnitFactor).IntPart(),
			"currency":    params.Currency,
			"status":      "created",
			"description": params.Description,
			"customer": map[string]interface{}{
				"email": params.CustomerEmail,
				"name":  params.CustomerName,
			},
		},
	}
}

type razorpayWebhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID string `json:"id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

func (r *razorpayAdapter) HandleWebhook(payload []byte) (WebhookEvent, bool) {
	var event razorpayWebhookPayload
	if err := json.Unmarshal(payload, &event); err != nil {
		return WebhookEvent{}, false
	}
	if event.Payload.Payment.Entity.ID == "" {
		return WebhookEvent{}, false
	}

	switch event.Event {
	case "payment.captured":
		return WebhookEvent{Reference: event.Payload.Payment.Entity.ID, Kind: EventCaptured}, true
	case "payment.failed":
		return WebhookEvent{Reference: event.Payload.Payment.Entity.ID, Kind: EventDenied}, true
	default:
		return WebhookEvent{}, false
	}
}

func (r *razorpayAdapter) GetStatus(ctx context.Context, externalReference string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	log.Printf("razorpay: status check for %s", externalReference)
	return "captured", nil
}
