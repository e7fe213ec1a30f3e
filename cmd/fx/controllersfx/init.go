package controllersfx

import (
	"go.uber.org/fx"
	"seacatering/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewTestimonialController),
)
