package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anuncia/internal/models/db_models"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *db_models.Message) (uuid.UUID, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *db_models.Message) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return uuid.Nil, err
	}
	return msg.ID, nil
}

func (r *messageRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Message, error) {
	var messages []db_models.Message
	err := r.db.WithContext(ctx).
		Where("recipient_id = ? OR sender_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
