package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"anuncia/cmd/fx/auth_fx"
	"anuncia/cmd/fx/categories_fx"
	"anuncia/cmd/fx/coupons_fx"
	"anuncia/cmd/fx/db_fx"
	"anuncia/cmd/fx/favorites_fx"
	"anuncia/cmd/fx/listings_fx"
	"anuncia/cmd/fx/messages_fx"
	"anuncia/cmd/fx/plans_fx"
	"anuncia/cmd/fx/rotation_fx"
	"anuncia/internal/api/controllers"
	"anuncia/internal/infra"
	"anuncia/internal/services"
	"anuncia/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		fx.Provide(provideLogger),
		db_fx.Module,
		categories_fx.Module,
		listings_fx.Module,
		coupons_fx.Module,
		plans_fx.Module,
		favorites_fx.Module,
		messages_fx.Module,
		rotation_fx.Module,
		auth_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartRotation),
		fx.Invoke(StartCategoryListener),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	return logger
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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

func StartRotation(lc fx.Lifecycle, rotation services.FooterRotationService, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rotation.Start(ctx); err != nil {
				// An empty or unreachable sponsor table leaves the engine
				// idle; rotation resumes on the next reload.
				logger.Warn("footer rotation did not start", zap.Error(err))
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			rotation.Stop()
			return nil
		},
	})
}

func StartCategoryListener(lc fx.Lifecycle, listener *infra.CategoryListener) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return listener.Start()
		},
		OnStop: func(ctx context.Context) error {
			return listener.Stop()
		},
	})
}

func ProvideRouter(
	listingsController *controllers.ListingsController,
	categoriesController *controllers.CategoriesController,
	couponsController *controllers.CouponsController,
	plansController *controllers.PlansController,
	favoritesController *controllers.FavoritesController,
	messagesController *controllers.MessagesController,
	footerAdsController *controllers.FooterAdsController,
	authController *controllers.AuthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		listingsController, categoriesController, couponsController,
		plansController, favoritesController, messagesController,
		footerAdsController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	listingsController *controllers.ListingsController,
	categoriesController *controllers.CategoriesController,
	couponsController *controllers.CouponsController,
	plansController *controllers.PlansController,
	favoritesController *controllers.FavoritesController,
	messagesController *controllers.MessagesController,
	footerAdsController *controllers.FooterAdsController,
	authController *controllers.AuthController) {

	r.POST("/auth/login", authController.Login)

	listings := r.Group("/listings")
	listings.GET("", listingsController.Search)
	listings.GET("/featured", listingsController.Featured)
	listings.GET("/:id", listingsController.GetByID)
	listings.POST("/:id/view", listingsController.RegisterView)

	authed := listings.Group("", middleware.JWTAuthMiddleware())
	authed.POST("", listingsController.Create)
	authed.PUT("/:id", listingsController.Update)
	authed.DELETE("/:id", listingsController.Delete)
	authed.POST("/:id/toggle", listingsController.ToggleStatus)
	authed.POST("/:id/duplicate", listingsController.Duplicate)
	authed.POST("/:id/favorite", favoritesController.Add)
	authed.DELETE("/:id/favorite", favoritesController.Remove)

	r.GET("/categories", categoriesController.List)
	r.GET("/plans", plansController.List)

	footer := r.Group("/footer-ads")
	footer.GET("/current", footerAdsController.Current)
	footer.POST("/dismiss", footerAdsController.Dismiss)
	footer.POST("/contact", middleware.JWTAuthMiddleware(), footerAdsController.Contact)

	me := r.Group("/users/me", middleware.JWTAuthMiddleware())
	me.GET("/listings", listingsController.ListOwn)
	me.GET("/favorites", favoritesController.List)
	me.GET("/messages", messagesController.ListOwn)

	r.POST("/messages", middleware.JWTAuthMiddleware(), messagesController.Send)

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.POST("/categories", categoriesController.Create)
	admin.PUT("/categories/:id", categoriesController.Update)
	admin.DELETE("/categories/:id", categoriesController.Delete)
	admin.GET("/coupons", couponsController.List)
	admin.POST("/coupons", couponsController.Create)
	admin.PUT("/coupons/:id", couponsController.Update)
	admin.DELETE("/coupons/:id", couponsController.Delete)
	admin.POST("/plans", plansController.Create)
	admin.PUT("/plans/:id", plansController.Update)
	admin.DELETE("/plans/:id", plansController.Delete)
	admin.POST("/plans/:id/checkout-link", plansController.GenerateCheckoutLink)
	admin.POST("/footer-ads/reload", footerAdsController.Reload)
}
