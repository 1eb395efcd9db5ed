package rotation_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"anuncia/internal/api/controllers"
	"anuncia/internal/repositories"
	"anuncia/internal/services"
)

var Module = fx.Provide(
	provideRotationService, provideFooterAdsController)

func provideRotationService(listingRepo repositories.ListingRepository, logger *zap.Logger) services.FooterRotationService {
	return services.NewFooterRotationService(listingRepo, listingRepo, services.RotationConfigFromEnv(), logger)
}

func provideFooterAdsController(rotation services.FooterRotationService, messageService services.MessageServiceInterface, logger *zap.Logger) *controllers.FooterAdsController {
	return controllers.NewFooterAdsController(rotation, messageService, logger)
}
