package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"seacatering/internal/config"
	"seacatering/internal/repositories"
	"seacatering/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService,
)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, cfg *config.Config) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, cfg)
}
