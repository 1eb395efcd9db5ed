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

type FavoriteServiceInterface interface {
	List(ctx context.Context, session middleware.Session) ([]db_models.Favorite, error)
	Add(ctx context.Context, session middleware.Session, listingID uuid.UUID) error
	Remove(ctx context.Context, session middleware.Session, listingID uuid.UUID) error
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	listingRepo  repositories.ListingRepository
	logger       *zap.Logger
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, listingRepo repositories.ListingRepository, logger *zap.Logger) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
		logger:       logger,
	}
}

func (s *FavoriteService) List(ctx context.Context, session middleware.Session) ([]db_models.Favorite, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, session.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return favorites, nil
}

func (s *FavoriteService) Add(ctx context.Context, session middleware.Session, listingID uuid.UUID) error {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if listing == nil {
		return utils.ErrRecordNotFound
	}

	fav := &db_models.Favorite{UserID: session.UserID, ListingID: listingID}
	if err := s.favoriteRepo.Add(ctx, fav); err != nil {
		if utils.IsDuplicateKey(err) {
			return utils.ErrDuplicateFavorite
		}
		s.logger.Error("favorite add failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *FavoriteService) Remove(ctx context.Context, session middleware.Session, listingID uuid.UUID) error {
	if err := s.favoriteRepo.Remove(ctx, session.UserID, listingID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
