package messages_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anuncia/internal/api/controllers"
	"anuncia/internal/repositories"
	"anuncia/internal/services"
)

var Module = fx.Provide(
	provideMessageRepo, provideMessageService, provideMessagesController)

func provideMessageRepo(db *gorm.DB) repositories.MessageRepository {
	return repositories.NewMessageRepository(db)
}

func provideMessageService(messageRepo repositories.MessageRepository, listingRepo repositories.ListingRepository, logger *zap.Logger) services.MessageServiceInterface {
	return services.NewMessageService(messageRepo, listingRepo, logger)
}

func provideMessagesController(messageService services.MessageServiceInterface, logger *zap.Logger) *controllers.MessagesController {
	return controllers.NewMessagesController(messageService, logger)
}
