package plans_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anuncia/internal/api/controllers"
	"anuncia/internal/repositories"
	"anuncia/internal/services"
)

var Module = fx.Provide(
	providePlanRepo, provideCheckoutService, providePlanService, providePlansController)

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideCheckoutService() services.CheckoutService {
	return services.NewCheckoutService(services.CheckoutConfigFromEnv())
}

func providePlanService(planRepo repositories.PlanRepository, checkout services.CheckoutService, logger *zap.Logger) services.PlanServiceInterface {
	return services.NewPlanService(planRepo, checkout, logger)
}

func providePlansController(planService services.PlanServiceInterface, logger *zap.Logger) *controllers.PlansController {
	return controllers.NewPlansController(planService, logger)
}
