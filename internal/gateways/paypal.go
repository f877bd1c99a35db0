package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type PaypalConfig struct {
	ClientID     string
	ClientSecret string
	Mode         string // "sandbox" or "live"
}

type paypalAdapter struct {
	cfg PaypalConfig
}

func NewPaypalAdapter(cfg PaypalConfig) Adapter {
	return &paypalAdapter{cfg: cfg}
}

func (p *paypalAdapter) Name() string { return GatewayPaypal }

func (p *paypalAdapter) CreatePayment(ctx context.Context, params PaymentParams) Outcome {
	if err := ctx.Err(); err != nil {
		return Outcome{Success: false, ErrorDetail: fmt.Sprintf("paypal: %v", err)}
	}

	paymentID := fmt.Sprintf("paypal_%d", time.Now().UnixNano())
	approvalURL := fmt.Sprintf(
		"https://www.sandbox.paypal.com/cgi-bin/webscr?cmd=_express-checkout&token=%s", paymentID)

	log.Printf("paypal: payment %s created (%s %s)",
		paymentID, params.Amount.StringFixed(2), params.Currency)

	return Outcome{
		Success:           true,
		ExternalReference: paymentID,
		PaymentURL:        approvalURL,
		RawResponse: map[string]interface{}{
			"id":     paymentID,
			"intent": "sale",
			"state":  "created",
			"payer": map[string]interface{}{
				"payment_method": "paypal",
			},
			"transactions": []interface{}{
				map[string]interface{}{
					"amount": map[string]interface{}{
						"total":    params.Amount.StringFixed(2),
						"currency": params.Currency,
					},
					"description": params.Description,
				},
			},
		},
	}
}

type paypalWebhookPayload struct {
	EventType string `json:"event_type"`
	Resource  struct {
		ID string `json:"id"`
	} `json:"resource"`
}

func (p *paypalAdapter) HandleWebhook(payload []byte) (WebhookEvent, bool) {
	var event paypalWebhookPayload
	if err := json.Unmarshal(payload, &event); err != nil {
		return WebhookEvent{}, false
	}
	if event.Resource.ID == "" {
		return WebhookEvent{}, false
	}

	switch event.EventType {
	case "PAYMENT.SALE.COMPLETED":
		return WebhookEvent{Reference: event.Resource.ID, Kind: EventCaptured}, true
	case "PAYMENT.SALE.DENIED":
		return WebhookEvent{Reference: event.Resource.ID, Kind: EventDenied}, true
	default:
		return WebhookEvent{}, false
	}
}

func (p *paypalAdapter) GetStatus(ctx context.Context, externalReference string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	log.Printf("paypal: status check for %s", externalReference)
	return "completed", nil
}
