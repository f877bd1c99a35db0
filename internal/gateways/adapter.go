package gateways

import (
	"context"

	"github.com/shopspring/decimal"
)

const (
	GatewayStripe   = "stripe"
	GatewayPaypal   = "paypal"
	GatewayRazorpay = "razorpay"
)

// PaymentParams is the uniform payment request every adapter accepts.
type PaymentParams struct {
	Amount        decimal.Decimal
	Currency      string
	Description   string
	CustomerEmail string
	CustomerName  string
	Metadata      map[string]interface{}
}

// Outcome is the result of a payment dispatch. Provider-side failures are
// reported as Success=false, never as an error or panic.
type Outcome struct {
	Success           bool
	ExternalReference string
	PaymentURL        string
	RawResponse       map[string]interface{}
	ErrorDetail       string
}

type EventKind string

const (
	EventCaptured EventKind = "captured"
	EventDenied   EventKind = "denied"
)

// WebhookEvent is a provider notification normalized to the reconciliation
// vocabulary: the external reference it concerns and whether the payment
// was captured or denied.
type WebhookEvent struct {
	Reference string
	Kind      EventKind
}

// Adapter translates between the uniform payment contract and one provider.
// HandleWebhook returns false for anything that is not one of the provider's
// recognized terminal events, including malformed payloads; it must not fault.
// GetStatus is advisory only, webhooks stay authoritative for reconciliation.
type Adapter interface {
	Name() string
	CreatePayment(ctx context.Context, params PaymentParams) Outcome
	HandleWebhook(payload []byte) (WebhookEvent, bool)
	GetStatus(ctx context.Context, externalReference string) (string, error)
}
