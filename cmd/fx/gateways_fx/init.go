package gateways_fx

import (
	"os"

	"go.uber.org/fx"

	"payhub/internal/gateways"
)

var Module = fx.Provide(provideRouter)

// The adapter set is closed at startup: adding a provider means adding an
// adapter here, nothing else changes.
func provideRouter() *gateways.Router {
	stripe := gateways.NewStripeAdapter(gateways.StripeConfig{
		SecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		PublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
	})

	paypal := gateways.NewPaypalAdapter(gateways.PaypalConfig{
		ClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		ClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
		Mode:         os.Getenv("PAYPAL_MODE"),
	})

	razorpay := gateways.NewRazorpayAdapter(gateways.RazorpayConfig{
		KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
	})

	return gateways.NewRouter(stripe, paypal, razorpay)
}
