package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"seacatering/cmd/fx/accountfx"
	"seacatering/cmd/fx/catalogfx"
	"seacatering/cmd/fx/configfx"
	"seacatering/cmd/fx/controllersfx"
	"seacatering/cmd/fx/dashboardfx"
	"seacatering/cmd/fx/dbfx"
	"seacatering/cmd/fx/subscriptionfx"
	"seacatering/cmd/fx/testimonialfx"
	"seacatering/internal/api/controllers"
	"seacatering/internal/config"
	"seacatering/internal/infra"
	"seacatering/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		configfx.Module,
		dbfx.Module,
		accountfx.Module,
		catalogfx.Module,
		subscriptionfx.Module,
		dashboardfx.Module,
		testimonialfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) error {
	return infra.Migrate(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.ServerPort)
				if err := engine.Run(":" + cfg.ServerPort); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	subscriptionController *controllers.SubscriptionController,
	dashboardController *controllers.DashboardController,
	testimonialController *controllers.TestimonialController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		catalogController,
		subscriptionController,
		dashboardController,
		testimonialController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	subscriptionController *controllers.SubscriptionController,
	dashboardController *controllers.DashboardController,
	testimonialController *controllers.TestimonialController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	menu := r.Group("/menu")
	menu.GET("/plans", catalogController.ListMealPlans)
	menu.GET("/meal-types", catalogController.ListMealTypes)
	menu.GET("/delivery-days", catalogController.ListDeliveryDays)

	subscriptions := r.Group("/subscriptions", middleware.JWTAuthMiddleware())
	subscriptions.POST("", subscriptionController.Create)
	subscriptions.GET("", subscriptionController.List)
	subscriptions.PUT("/:id/pause", subscriptionController.Pause)
	subscriptions.PUT("/:id/cancel", subscriptionController.Cancel)
	subscriptions.PUT("/:id/resume", subscriptionController.Resume)

	testimonials := r.Group("/testimonials")
	testimonials.GET("", testimonialController.ListTestimonials)
	testimonials.POST("", middleware.JWTAuthMiddleware(), testimonialController.AddTestimonial)

	// Role is enforced inside the dashboard service from the AuthContext.
	dashboard := r.Group("/dashboard", middleware.JWTAuthMiddleware())
	dashboard.GET("/metrics", dashboardController.GetMetrics)
	dashboard.GET("/charts", dashboardController.GetCharts)
}
