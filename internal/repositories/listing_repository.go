package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
)

// kindFilterEnabled gates the sale/rent filter. The control is live in the
// UI but intentionally inert until the listings table finishes its kind
// backfill; flipping this constant is the whole migration switch.
const kindFilterEnabled = false

type ListingRepository interface {
	Search(ctx context.Context, filters request_models.ListingFilters) ([]db_models.Listing, error)
	Featured(ctx context.Context, limit int) ([]db_models.Listing, error)
	EligibleFooterListings(ctx context.Context) ([]db_models.Listing, error)

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Listing, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Listing, error)
	Create(ctx context.Context, listing *db_models.Listing) (uuid.UUID, error)
	Update(ctx context.Context, listing *db_models.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error

	IncrementView(ctx context.Context, id uuid.UUID) error
	IncrementExposure(ctx context.Context, id uuid.UUID) error
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

// escapeLike neutralizes LIKE metacharacters in user input.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}

// StateLocationPatterns builds the LIKE alternation used to match a state
// code against the free-text location column. Locations follow loose
// conventions ("São Paulo - SP", "SP - Capital", "Santos (SP)"), so a fixed
// set of suffix/prefix/delimited patterns keeps false positives down
// without a real regex:
//
//	exact      "SP"
//	suffix     "%- SP"
//	prefix     "SP -%"
//	bracketed  "%(SP)%"
//	delimited  "% SP %"
func StateLocationPatterns(code string) []string {
	code = strings.ToUpper(strings.TrimSpace(escapeLike(code)))
	return []string{
		code,
		"%- " + code,
		code + " -%",
		"%(" + code + ")%",
		"% " + code + " %",
	}
}

func eligible(q *gorm.DB, now time.Time) *gorm.DB {
	return q.
		Where("status = ?", db_models.ListingStatusActive).
		Where("valid_until IS NULL OR valid_until > ?", now.Unix())
}

func withDetails(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Category")
}

// Search runs the ad-discovery query: the eligibility predicate is always
// applied, every set filter ANDs in, and the text/state alternations OR
// internally.
func (r *listingRepository) Search(ctx context.Context, f request_models.ListingFilters) ([]db_models.Listing, error) {
	f.Normalize()

	q := withDetails(r.db.WithContext(ctx).Model(&db_models.Listing{}))
	q = q.Where("type IN ?", []db_models.ListingType{db_models.ListingTypeGrid, db_models.ListingTypeHeader})
	q = eligible(q, time.Now())

	if f.Query != "" {
		pattern := "%" + escapeLike(f.Query) + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if f.CategoryID != "" {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.SellerID != "" {
		q = q.Where("owner_id = ?", f.SellerID)
	}
	if f.StateCode != "" {
		patterns := StateLocationPatterns(f.StateCode)
		clause := strings.TrimSuffix(strings.Repeat("location ILIKE ? OR ", len(patterns)), " OR ")
		args := make([]interface{}, len(patterns))
		for i, p := range patterns {
			args[i] = p
		}
		q = q.Where(clause, args...)
	}
	if f.City != "" {
		q = q.Where("location ILIKE ?", "%"+escapeLike(f.City)+"%")
	}
	if f.Location != "" {
		q = q.Where("location ILIKE ?", "%"+escapeLike(f.Location)+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if kindFilterEnabled && f.Kind != "" {
		q = q.Where("kind = ?", f.Kind)
	}

	switch f.Sort {
	case request_models.SortPriceAsc:
		q = q.Order("price ASC")
	case request_models.SortPriceDesc:
		q = q.Order("price DESC")
	default:
		q = q.Order("created_at DESC")
	}

	var listings []db_models.Listing
	if err := q.Limit(f.Limit).Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Featured(ctx context.Context, limit int) ([]db_models.Listing, error) {
	var listings []db_models.Listing
	q := withDetails(r.db.WithContext(ctx).Model(&db_models.Listing{}))
	q = eligible(q.Where("type = ?", db_models.ListingTypeHeader), time.Now())

	if err := q.Order("created_at DESC").Limit(limit).Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) EligibleFooterListings(ctx context.Context) ([]db_models.Listing, error) {
	var listings []db_models.Listing
	q := withDetails(r.db.WithContext(ctx).Model(&db_models.Listing{}))
	q = eligible(q, time.Now()).
		Where("type = ?", db_models.ListingTypeFooter).
		Where("approved = TRUE").
		Where("exposure_count < exposure_budget")

	if err := q.Order("created_at ASC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Listing, error) {
	var listing db_models.Listing
	err := withDetails(r.db.WithContext(ctx)).First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Listing, error) {
	var listings []db_models.Listing
	err := withDetails(r.db.WithContext(ctx)).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Create(ctx context.Context, listing *db_models.Listing) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(listing).Error; err != nil {
		return uuid.Nil, err
	}
	return listing.ID, nil
}

func (r *listingRepository) Update(ctx context.Context, listing *db_models.Listing) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(listing)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Listing{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *listingRepository) IncrementView(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.Listing{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// IncrementExposure is the single authoritative exposure bump: one call per
// display, applied atomically so concurrent rotations cannot lose counts.
func (r *listingRepository) IncrementExposure(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.Listing{}).
		Where("id = ?", id).
		UpdateColumn("exposure_count", gorm.Expr("exposure_count + 1")).Error
}
