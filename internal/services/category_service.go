package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/internal/models/response_models"
	"anuncia/internal/repositories"
	"anuncia/pkg/memcache"
	"anuncia/pkg/utils"
)

type CategoryServiceInterface interface {
	GetAll(ctx context.Context) ([]db_models.Category, error)
	ListForDisplay(ctx context.Context, listings []db_models.Listing) []response_models.CategoryResponse
	Create(ctx context.Context, req request_models.CategoryRequest) (*db_models.Category, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.CategoryRequest) (*db_models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Invalidate()
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	cache        *memcache.CategoryCache
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, cache *memcache.CategoryCache, logger *zap.Logger) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]db_models.Category, error) {
	if cached, ok := s.cache.Get(); ok {
		return cached, nil
	}
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	s.cache.Set(categories)
	return categories, nil
}

// ListForDisplay is the two-tier category lookup for search responses:
// canonical rows always win; only when the reference table has none does it
// derive a display-only list from the categories embedded in the listings,
// deduplicated by id.
func (s *CategoryService) ListForDisplay(ctx context.Context, listings []db_models.Listing) []response_models.CategoryResponse {
	canonical, err := s.GetAll(ctx)
	if err != nil {
		s.logger.Warn("canonical category fetch failed, deriving from listings", zap.Error(err))
	}

	if len(canonical) > 0 {
		out := make([]response_models.CategoryResponse, 0, len(canonical))
		for _, c := range canonical {
			out = append(out, toCategoryResponse(c, false))
		}
		return out
	}

	seen := make(map[uuid.UUID]bool)
	out := []response_models.CategoryResponse{}
	for _, l := range listings {
		if l.Category == nil || seen[l.Category.ID] {
			continue
		}
		seen[l.Category.ID] = true
		out = append(out, toCategoryResponse(*l.Category, true))
	}
	return out
}

func toCategoryResponse(c db_models.Category, derived bool) response_models.CategoryResponse {
	resp := response_models.CategoryResponse{
		ID:      c.ID.String(),
		Name:    c.Name,
		Slug:    c.Slug,
		Icon:    c.Icon,
		Derived: derived,
	}
	if c.Description != nil {
		resp.Description = *c.Description
	}
	return resp
}

func (s *CategoryService) Create(ctx context.Context, req request_models.CategoryRequest) (*db_models.Category, error) {
	category := &db_models.Category{
		Name:        req.Name,
		Slug:        utils.Slugify(req.Name),
		Icon:        req.Icon,
		Description: req.Description,
	}
	if _, err := s.categoryRepo.Create(ctx, category); err != nil {
		s.logger.Error("category create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	s.cache.Invalidate()
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req request_models.CategoryRequest) (*db_models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrRecordNotFound
	}

	category.Name = req.Name
	category.Slug = utils.Slugify(req.Name)
	category.Icon = req.Icon
	category.Description = req.Description

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	s.cache.Invalidate()
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	s.cache.Invalidate()
	return nil
}

// Invalidate is wired to the postgres change notification so out-of-band
// edits (other instances, manual SQL) show up on the next read.
func (s *CategoryService) Invalidate() {
	s.cache.Invalidate()
}
