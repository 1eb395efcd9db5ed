package coupons_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anuncia/internal/api/controllers"
	"anuncia/internal/repositories"
	"anuncia/internal/services"
)

var Module = fx.Provide(
	provideCouponRepo, provideCouponService, provideCouponsController)

func provideCouponRepo(db *gorm.DB) repositories.CouponRepository {
	return repositories.NewCouponRepository(db)
}

func provideCouponService(couponRepo repositories.CouponRepository, logger *zap.Logger) services.CouponServiceInterface {
	return services.NewCouponService(couponRepo, logger)
}

func provideCouponsController(couponService services.CouponServiceInterface, logger *zap.Logger) *controllers.CouponsController {
	return controllers.NewCouponsController(couponService, logger)
}
