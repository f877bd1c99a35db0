package account_fx

import (
	"go.uber.org/fx"

	"payhub/internal/api/controllers"
	"payhub/internal/repositories"
	"payhub/internal/services"
)

var Module = fx.Provide(
	repositories.NewAccountRepository,
	services.NewAccountService,
	controllers.NewAccountController,
)
