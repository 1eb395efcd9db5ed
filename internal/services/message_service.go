package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"anuncia/internal/models/db_models"
	"anuncia/internal/repositories"
	"anuncia/pkg/middleware"
	"anuncia/pkg/utils"
)

type MessageServiceInterface interface {
	Send(ctx context.Context, session middleware.Session, listingID uuid.UUID, body string) (*db_models.Message, error)
	ListOwn(ctx context.Context, session middleware.Session) ([]db_models.Message, error)
}

type MessageService struct {
	messageRepo repositories.MessageRepository
	listingRepo repositories.ListingRepository
	logger      *zap.Logger
}

func NewMessageService(messageRepo repositories.MessageRepository, listingRepo repositories.ListingRepository, logger *zap.Logger) MessageServiceInterface {
	return &MessageService{
		messageRepo: messageRepo,
		listingRepo: listingRepo,
		logger:      logger,
	}
}

// Send records the handoff; the recipient is always the listing owner.
func (s *MessageService) Send(ctx context.Context, session middleware.Session, listingID uuid.UUID, body string) (*db_models.Message, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if listing == nil {
		return nil, utils.ErrRecordNotFound
	}

	msg := &db_models.Message{
		ListingID:   listingID,
		SenderID:    session.UserID,
		RecipientID: listing.OwnerID,
		Body:        body,
	}
	if _, err := s.messageRepo.Create(ctx, msg); err != nil {
		s.logger.Error("message create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return msg, nil
}

func (s *MessageService) ListOwn(ctx context.Context, session middleware.Session) ([]db_models.Message, error) {
	messages, err := s.messageRepo.ListForUser(ctx, session.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return messages, nil
}
