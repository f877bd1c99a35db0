package payout_fx

import (
	"go.uber.org/fx"

	"payhub/internal/api/controllers"
	"payhub/internal/repositories"
	"payhub/internal/services"
)

var Module = fx.Provide(
	repositories.NewPayoutRepository,
	services.NewPayoutService,
	controllers.NewPayoutController,
)
