package testimonialfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"seacatering/internal/repositories"
	"seacatering/internal/services"
)

var Module = fx.Provide(
	provideTestimonialRepo, provideTestimonialService,
)

func provideTestimonialRepo(db *gorm.DB) repositories.TestimonialRepositoryInterface {
	return repositories.NewTestimonialRepository(db)
}

func provideTestimonialService(testimonialRepo repositories.TestimonialRepositoryInterface) services.TestimonialServiceInterface {
	return services.NewTestimonialService(testimonialRepo)
}
