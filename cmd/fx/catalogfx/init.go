package catalogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"seacatering/internal/repositories"
	"seacatering/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo, provideCatalogService,
)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideCatalogService(catalogRepo repositories.CatalogRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(catalogRepo)
}
