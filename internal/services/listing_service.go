package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/internal/models/response_models"
	"anuncia/internal/repositories"
	"anuncia/pkg/middleware"
	"anuncia/pkg/utils"
)

// copySuffix marks duplicated listings; the owner renames before resubmit.
const copySuffix = " (cópia)"

type ListingServiceInterface interface {
	Search(ctx context.Context, filters request_models.ListingFilters) response_models.SearchResponse
	Featured(ctx context.Context, limit int) ([]db_models.Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Listing, error)
	RegisterView(ctx context.Context, id uuid.UUID) error

	ListOwn(ctx context.Context, session middleware.Session) ([]db_models.Listing, error)
	Create(ctx context.Context, session middleware.Session, req request_models.CreateListingRequest) (*db_models.Listing, error)
	Update(ctx context.Context, session middleware.Session, id uuid.UUID, req request_models.UpdateListingRequest) (*db_models.Listing, error)
	Delete(ctx context.Context, session middleware.Session, id uuid.UUID) error
	ToggleStatus(ctx context.Context, session middleware.Session, id uuid.UUID) (*db_models.Listing, error)
	Duplicate(ctx context.Context, session middleware.Session, id uuid.UUID) (*db_models.Listing, error)
}

type ListingService struct {
	listingRepo repositories.ListingRepository
	categories  CategoryServiceInterface
	logger      *zap.Logger
}

func NewListingService(listingRepo repositories.ListingRepository, categories CategoryServiceInterface, logger *zap.Logger) ListingServiceInterface {
	return &ListingService{
		listingRepo: listingRepo,
		categories:  categories,
		logger:      logger,
	}
}

// Search never propagates a backend failure: the screen gets an empty
// result set and the error is logged here. Zero rows with a healthy
// backend is the explicit "no results" state, not an error.
func (s *ListingService) Search(ctx context.Context, filters request_models.ListingFilters) response_models.SearchResponse {
	filters.Normalize()

	listings, err := s.listingRepo.Search(ctx, filters)
	if err != nil {
		s.logger.Error("listing search failed", zap.Error(err))
		listings = nil
	}

	return response_models.SearchResponse{
		Listings:   emptyIfNil(listings),
		Categories: s.categories.ListForDisplay(ctx, listings),
		Filters:    echoFilters(filters),
		NoResults:  err == nil && len(listings) == 0,
	}
}

func emptyIfNil(listings []db_models.Listing) []db_models.Listing {
	if listings == nil {
		return []db_models.Listing{}
	}
	return listings
}

func echoFilters(f request_models.ListingFilters) response_models.FilterEcho {
	return response_models.FilterEcho{
		Query:    f.Query,
		Category: f.CategoryID,
		Seller:   f.SellerID,
		State:    f.StateCode,
		City:     f.City,
		Location: f.Location,
		MinPrice: f.MinPrice,
		MaxPrice: f.MaxPrice,
		Kind:     string(f.Kind),
		Sort:     string(f.Sort),
	}
}

func (s *ListingService) Featured(ctx context.Context, limit int) ([]db_models.Listing, error) {
	if limit <= 0 || limit > 20 {
		limit = 10
	}
	listings, err := s.listingRepo.Featured(ctx, limit)
	if err != nil {
		s.logger.Error("featured strip fetch failed", zap.Error(err))
		return []db_models.Listing{}, nil
	}
	return emptyIfNil(listings), nil
}

func (s *ListingService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if listing == nil {
		return nil, utils.ErrRecordNotFound
	}
	return listing, nil
}

func (s *ListingService) RegisterView(ctx context.Context, id uuid.UUID) error {
	if err := s.listingRepo.IncrementView(ctx, id); err != nil {
		s.logger.Warn("view increment failed", zap.String("listing_id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ListingService) ListOwn(ctx context.Context, session middleware.Session) ([]db_models.Listing, error) {
	listings, err := s.listingRepo.ListByOwner(ctx, session.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return emptyIfNil(listings), nil
}

func (s *ListingService) Create(ctx context.Context, session middleware.Session, req request_models.CreateListingRequest) (*db_models.Listing, error) {
	listing := &db_models.Listing{
		OwnerID:     session.UserID,
		Type:        parseType(req.Type),
		Kind:        parseKind(req.Kind),
		Status:      db_models.ListingStatusPending,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		ValidFrom:   time.Now().Unix(),
		ValidUntil:  req.ValidUntil,
		Approved:    false,
	}
	if req.Contact != nil {
		listing.Contact = datatypes.JSON(req.Contact)
	}
	if id, err := uuid.Parse(req.CategoryID); err == nil {
		listing.CategoryID = &id
	}
	if id, err := uuid.Parse(req.PlanID); err == nil {
		listing.PlanID = &id
	}
	for i, url := range req.Photos {
		listing.Photos = append(listing.Photos, db_models.ListingPhoto{URL: url, Position: i})
	}

	if _, err := s.listingRepo.Create(ctx, listing); err != nil {
		s.logger.Error("listing create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return listing, nil
}

func parseType(t string) db_models.ListingType {
	switch db_models.ListingType(t) {
	case db_models.ListingTypeHeader:
		return db_models.ListingTypeHeader
	case db_models.ListingTypeFooter:
		return db_models.ListingTypeFooter
	default:
		return db_models.ListingTypeGrid
	}
}

func parseKind(k string) db_models.ListingKind {
	if db_models.ListingKind(k) == db_models.ListingKindRent {
		return db_models.ListingKindRent
	}
	return db_models.ListingKindSale
}

func (s *ListingService) ownedListing(ctx context.Context, session middleware.Session, id uuid.UUID) (*db_models.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if listing == nil {
		return nil, utils.ErrRecordNotFound
	}
	if listing.OwnerID != session.UserID && !session.IsAdmin() {
		return nil, utils.ErrNotOwner
	}
	return listing, nil
}

func (s *ListingService) Update(ctx context.Context, session middleware.Session, id uuid.UUID, req request_models.UpdateListingRequest) (*db_models.Listing, error) {
	listing, err := s.ownedListing(ctx, session, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Price != nil && *req.Price >= 0 {
		listing.Price = *req.Price
	}
	if req.Location != nil {
		listing.Location = *req.Location
	}
	if req.Contact != nil {
		listing.Contact = datatypes.JSON(*req.Contact)
	}
	if req.ValidUntil != nil {
		listing.ValidUntil = req.ValidUntil
	}
	if req.CategoryID != nil {
		if cid, err := uuid.Parse(*req.CategoryID); err == nil {
			listing.CategoryID = &cid
		}
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		s.logger.Error("listing update failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return listing, nil
}

func (s *ListingService) Delete(ctx context.Context, session middleware.Session, id uuid.UUID) error {
	if _, err := s.ownedListing(ctx, session, id); err != nil {
		return err
	}
	if err := s.listingRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ToggleStatus flips active listings to paused and paused back to active;
// listings in moderation states stay where they are.
func (s *ListingService) ToggleStatus(ctx context.Context, session middleware.Session, id uuid.UUID) (*db_models.Listing, error) {
	listing, err := s.ownedListing(ctx, session, id)
	if err != nil {
		return nil, err
	}

	switch listing.Status {
	case db_models.ListingStatusActive:
		listing.Status = db_models.ListingStatusPaused
	case db_models.ListingStatusPaused:
		listing.Status = db_models.ListingStatusActive
	default:
		return nil, utils.ErrListingNotEligible
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return listing, nil
}

// Duplicate produces a fresh pending copy awaiting moderation: same price,
// photos, location and contact, title tagged with the copy marker.
func (s *ListingService) Duplicate(ctx context.Context, session middleware.Session, id uuid.UUID) (*db_models.Listing, error) {
	original, err := s.ownedListing(ctx, session, id)
	if err != nil {
		return nil, err
	}

	copyListing := buildDuplicate(original)
	if _, err := s.listingRepo.Create(ctx, copyListing); err != nil {
		s.logger.Error("listing duplicate failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return copyListing, nil
}

func buildDuplicate(original *db_models.Listing) *db_models.Listing {
	dup := &db_models.Listing{
		OwnerID:        original.OwnerID,
		CategoryID:     original.CategoryID,
		Type:           original.Type,
		Kind:           original.Kind,
		Status:         db_models.ListingStatusPending,
		Title:          original.Title + copySuffix,
		Description:    original.Description,
		Price:          original.Price,
		Location:       original.Location,
		PlanID:         original.PlanID,
		ValidFrom:      time.Now().Unix(),
		ValidUntil:     original.ValidUntil,
		ExposureBudget: original.ExposureBudget,
		Approved:       false,
	}
	if original.Contact != nil {
		raw := json.RawMessage(original.Contact)
		dup.Contact = datatypes.JSON(raw)
	}
	for _, photo := range original.Photos {
		dup.Photos = append(dup.Photos, db_models.ListingPhoto{URL: photo.URL, Position: photo.Position})
	}
	return dup
}
