package account_fx

import (
	"go.uber.org/fx"

	"travo/internal/api/controllers"
	"travo/internal/repositories"
	"travo/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideAccountService,
	provideAccountController)

func provideAccountRepo() repositories.AccountRepository {
	return repositories.NewAccountRepository()
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
