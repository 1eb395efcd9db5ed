package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/pkg/memcache"
	"anuncia/pkg/middleware"
	"anuncia/pkg/utils"
)

type fakeListingRepo struct {
	searchResult []db_models.Listing
	searchErr    error
	byID         *db_models.Listing
	created      *db_models.Listing
	updated      *db_models.Listing
}

func (f *fakeListingRepo) Search(ctx context.Context, filters request_models.ListingFilters) ([]db_models.Listing, error) {
	return f.searchResult, f.searchErr
}

func (f *fakeListingRepo) Featured(ctx context.Context, limit int) ([]db_models.Listing, error) {
	return f.searchResult, f.searchErr
}

func (f *fakeListingRepo) EligibleFooterListings(ctx context.Context) ([]db_models.Listing, error) {
	return nil, nil
}

func (f *fakeListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Listing, error) {
	return f.byID, nil
}

func (f *fakeListingRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Listing, error) {
	return f.searchResult, nil
}

func (f *fakeListingRepo) Create(ctx context.Context, listing *db_models.Listing) (uuid.UUID, error) {
	f.created = listing
	return listing.ID, nil
}

func (f *fakeListingRepo) Update(ctx context.Context, listing *db_models.Listing) error {
	f.updated = listing
	return nil
}

func (f *fakeListingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeListingRepo) IncrementView(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeListingRepo) IncrementExposure(ctx context.Context, id uuid.UUID) error { return nil }

type fakeCategoryRepo struct {
	categories []db_models.Category
	err        error
}

func (f *fakeCategoryRepo) GetAll(ctx context.Context) ([]db_models.Category, error) {
	return f.categories, f.err
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *db_models.Category) (uuid.UUID, error) {
	return category.ID, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *db_models.Category) error {
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func newListingService(listingRepo *fakeListingRepo, categoryRepo *fakeCategoryRepo) ListingServiceInterface {
	categories := NewCategoryService(categoryRepo, memcache.NewCategoryCache(), zap.NewNop())
	return NewListingService(listingRepo, categories, zap.NewNop())
}

func activeListing(title string, owner uuid.UUID) db_models.Listing {
	return db_models.Listing{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		OwnerID:   owner,
		Type:      db_models.ListingTypeGrid,
		Status:    db_models.ListingStatusActive,
		Title:     title,
		ValidFrom: time.Now().Unix(),
	}
}

func TestSearchBackendFailureYieldsEmptyResultNotError(t *testing.T) {
	repo := &fakeListingRepo{searchErr: errors.New("connection reset")}
	svc := newListingService(repo, &fakeCategoryRepo{})

	result := svc.Search(context.Background(), request_models.DefaultListingFilters())

	assert.Empty(t, result.Listings)
	assert.False(t, result.NoResults, "a failed request is not the no-results state")
}

func TestSearchZeroRowsIsNoResultsState(t *testing.T) {
	svc := newListingService(&fakeListingRepo{}, &fakeCategoryRepo{})

	result := svc.Search(context.Background(), request_models.DefaultListingFilters())

	assert.Empty(t, result.Listings)
	assert.True(t, result.NoResults)
}

func TestSearchEchoesFiltersForURLMirror(t *testing.T) {
	svc := newListingService(&fakeListingRepo{}, &fakeCategoryRepo{})

	minPrice := 100.0
	filters := request_models.DefaultListingFilters()
	filters.Query = "bicicleta"
	filters.SellerID = "seller-1"
	filters.StateCode = "SP"
	filters.MinPrice = &minPrice

	result := svc.Search(context.Background(), filters)

	assert.Equal(t, "bicicleta", result.Filters.Query)
	assert.Equal(t, "seller-1", result.Filters.Seller)
	assert.Equal(t, "SP", result.Filters.State)
	require.NotNil(t, result.Filters.MinPrice)
	assert.Equal(t, 100.0, *result.Filters.MinPrice)
}

func TestSearchCategoriesPreferCanonicalTable(t *testing.T) {
	canonical := db_models.Category{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Veículos",
		Slug:      "veiculos",
	}
	embedded := db_models.Category{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Imóveis",
	}
	listing := activeListing("casa", uuid.New())
	listing.Category = &embedded

	repo := &fakeListingRepo{searchResult: []db_models.Listing{listing}}
	svc := newListingService(repo, &fakeCategoryRepo{categories: []db_models.Category{canonical}})

	result := svc.Search(context.Background(), request_models.DefaultListingFilters())

	require.Len(t, result.Categories, 1)
	assert.Equal(t, "Veículos", result.Categories[0].Name)
	assert.False(t, result.Categories[0].Derived)
}

func TestSearchCategoriesDerivedFromListingsWhenTableEmpty(t *testing.T) {
	shared := db_models.Category{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Imóveis",
	}
	first := activeListing("casa", uuid.New())
	first.Category = &shared
	second := activeListing("apartamento", uuid.New())
	second.Category = &shared
	third := activeListing("sem categoria", uuid.New())

	repo := &fakeListingRepo{searchResult: []db_models.Listing{first, second, third}}
	svc := newListingService(repo, &fakeCategoryRepo{})

	result := svc.Search(context.Background(), request_models.DefaultListingFilters())

	require.Len(t, result.Categories, 1, "derived list is deduplicated by id")
	assert.Equal(t, "Imóveis", result.Categories[0].Name)
	assert.True(t, result.Categories[0].Derived)
}

func TestDuplicateProducesPendingUnapprovedCopy(t *testing.T) {
	owner := uuid.New()
	until := time.Now().Add(48 * time.Hour).Unix()
	original := activeListing("Bicicleta aro 29", owner)
	original.Price = 1250.50
	original.Location = "Campinas - SP"
	original.Approved = true
	original.ValidUntil = &until
	original.Photos = []db_models.ListingPhoto{
		{URL: "https://cdn.example.com/1.jpg", Position: 0},
		{URL: "https://cdn.example.com/2.jpg", Position: 1},
	}

	repo := &fakeListingRepo{byID: &original}
	svc := newListingService(repo, &fakeCategoryRepo{})

	dup, err := svc.Duplicate(context.Background(), middleware.Session{UserID: owner}, original.ID)
	require.NoError(t, err)

	assert.Equal(t, "Bicicleta aro 29 (cópia)", dup.Title)
	assert.Equal(t, db_models.ListingStatusPending, dup.Status)
	assert.False(t, dup.Approved)
	assert.Equal(t, original.Price, dup.Price)
	assert.Equal(t, original.Location, dup.Location)
	require.Len(t, dup.Photos, 2)
	assert.Equal(t, original.Photos[0].URL, dup.Photos[0].URL)
	assert.NotEqual(t, original.ID, dup.ID)
}

func TestDuplicateRejectsNonOwner(t *testing.T) {
	original := activeListing("anúncio alheio", uuid.New())
	repo := &fakeListingRepo{byID: &original}
	svc := newListingService(repo, &fakeCategoryRepo{})

	_, err := svc.Duplicate(context.Background(), middleware.Session{UserID: uuid.New()}, original.ID)
	assert.ErrorIs(t, err, utils.ErrNotOwner)
}

func TestToggleStatusFlipsActiveAndPaused(t *testing.T) {
	owner := uuid.New()
	listing := activeListing("pausável", owner)
	repo := &fakeListingRepo{byID: &listing}
	svc := newListingService(repo, &fakeCategoryRepo{})
	session := middleware.Session{UserID: owner}

	toggled, err := svc.ToggleStatus(context.Background(), session, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.ListingStatusPaused, toggled.Status)

	toggled, err = svc.ToggleStatus(context.Background(), session, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.ListingStatusActive, toggled.Status)
}

func TestToggleStatusRefusesModerationStates(t *testing.T) {
	owner := uuid.New()
	listing := activeListing("em análise", owner)
	listing.Status = db_models.ListingStatusPending
	repo := &fakeListingRepo{byID: &listing}
	svc := newListingService(repo, &fakeCategoryRepo{})

	_, err := svc.ToggleStatus(context.Background(), middleware.Session{UserID: owner}, listing.ID)
	assert.ErrorIs(t, err, utils.ErrListingNotEligible)
}

func TestPublicVisibilityPredicate(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour).Unix()
	future := now.Add(time.Hour).Unix()

	cases := []struct {
		name    string
		listing db_models.Listing
		visible bool
	}{
		{"active open-ended", db_models.Listing{Status: db_models.ListingStatusActive}, true},
		{"active future window", db_models.Listing{Status: db_models.ListingStatusActive, ValidUntil: &future}, true},
		{"active expired window", db_models.Listing{Status: db_models.ListingStatusActive, ValidUntil: &past}, false},
		{"paused", db_models.Listing{Status: db_models.ListingStatusPaused}, false},
		{"pending", db_models.Listing{Status: db_models.ListingStatusPending}, false},
		{"rejected", db_models.Listing{Status: db_models.ListingStatusRejected}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.visible, tc.listing.PubliclyVisible(now))
		})
	}
}

func TestFooterEligibilityRequiresApprovalAndBudget(t *testing.T) {
	now := time.Now()

	eligible := footerListing("ok", 0, 5)
	assert.True(t, eligible.FooterEligible(now))

	unapproved := footerListing("unapproved", 0, 5)
	unapproved.Approved = false
	assert.False(t, unapproved.FooterEligible(now))

	exhausted := footerListing("spent", 5, 5)
	assert.False(t, exhausted.FooterEligible(now))

	wrongType := activeListing("grid", uuid.New())
	wrongType.Approved = true
	wrongType.ExposureBudget = 5
	assert.False(t, wrongType.FooterEligible(now))
}
