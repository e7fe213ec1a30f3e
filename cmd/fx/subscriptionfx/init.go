package subscriptionfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"seacatering/internal/repositories"
	"seacatering/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideSubscriptionService,
)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	catalogRepo repositories.CatalogRepository,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subscriptionRepo, catalogRepo)
}
