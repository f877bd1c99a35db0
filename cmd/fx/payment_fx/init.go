package payment_fx

import (
	"go.uber.org/fx"

	"payhub/internal/api/controllers"
	"payhub/internal/repositories"
	"payhub/internal/services"
)

var Module = fx.Provide(
	repositories.NewTransactionRepository,
	services.NewPaymentService,
	services.NewWebhookService,
	controllers.NewPaymentController,
)
