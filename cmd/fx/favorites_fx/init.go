package favorites_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anuncia/internal/api/controllers"
	"anuncia/internal/repositories"
	"anuncia/internal/services"
)

var Module = fx.Provide(
	provideFavoriteRepo, provideFavoriteService, provideFavoritesController)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(favoriteRepo repositories.FavoriteRepository, listingRepo repositories.ListingRepository, logger *zap.Logger) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo, listingRepo, logger)
}

func provideFavoritesController(favoriteService services.FavoriteServiceInterface, logger *zap.Logger) *controllers.FavoritesController {
	return controllers.NewFavoritesController(favoriteService, logger)
}
