package auth_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"anuncia/internal/api/controllers"
)

var Module = fx.Provide(
	provideAuthController)

func provideAuthController(logger *zap.Logger) *controllers.AuthController {
	return controllers.NewAuthController(logger)
}
