package listings_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anuncia/internal/api/controllers"
	"anuncia/internal/repositories"
	"anuncia/internal/services"
)

var Module = fx.Provide(
	provideListingRepo, provideListingService, provideListingsController)

func provideListingRepo(db *gorm.DB) repositories.ListingRepository {
	return repositories.NewListingRepository(db)
}

func provideListingService(listingRepo repositories.ListingRepository, categories services.CategoryServiceInterface, logger *zap.Logger) services.ListingServiceInterface {
	return services.NewListingService(listingRepo, categories, logger)
}

func provideListingsController(listingService services.ListingServiceInterface, logger *zap.Logger) *controllers.ListingsController {
	return controllers.NewListingsController(listingService, logger)
}
