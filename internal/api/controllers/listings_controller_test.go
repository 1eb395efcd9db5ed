package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/internal/models/response_models"
	"anuncia/internal/services"
	"anuncia/pkg/middleware"
)

// MockListingService is a mock implementation of ListingServiceInterface
type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) Search(ctx context.Context, filters request_models.ListingFilters) response_models.SearchResponse {
	args := m.Called(ctx, filters)
	return args.Get(0).(response_models.SearchResponse)
}

func (m *MockListingService) Featured(ctx context.Context, limit int) ([]db_models.Listing, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Listing), args.Error(1)
}

func (m *MockListingService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Listing), args.Error(1)
}

func (m *MockListingService) RegisterView(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListingService) ListOwn(ctx context.Context, session middleware.Session) ([]db_models.Listing, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Listing), args.Error(1)
}

func (m *MockListingService) Create(ctx context.Context, session middleware.Session, req request_models.CreateListingRequest) (*db_models.Listing, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Listing), args.Error(1)
}

func (m *MockListingService) Update(ctx context.Context, session middleware.Session, id uuid.UUID, req request_models.UpdateListingRequest) (*db_models.Listing, error) {
	args := m.Called(ctx, session, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Listing), args.Error(1)
}

func (m *MockListingService) Delete(ctx context.Context, session middleware.Session, id uuid.UUID) error {
	args := m.Called(ctx, session, id)
	return args.Error(0)
}

func (m *MockListingService) ToggleStatus(ctx context.Context, session middleware.Session, id uuid.UUID) (*db_models.Listing, error) {
	args := m.Called(ctx, session, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Listing), args.Error(1)
}

func (m *MockListingService) Duplicate(ctx context.Context, session middleware.Session, id uuid.UUID) (*db_models.Listing, error) {
	args := m.Called(ctx, session, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Listing), args.Error(1)
}

var _ services.ListingServiceInterface = (*MockListingService)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestSearchMirrorsQueryStringIntoFilters(t *testing.T) {
	mockService := new(MockListingService)
	ctl := NewListingsController(mockService, zap.NewNop())

	router := setupTestRouter()
	router.GET("/listings", ctl.Search)

	var captured request_models.ListingFilters
	mockService.On("Search", mock.Anything, mock.MatchedBy(func(f request_models.ListingFilters) bool {
		captured = f
		return true
	})).Return(response_models.SearchResponse{
		Listings:   []db_models.Listing{},
		Categories: []response_models.CategoryResponse{},
		NoResults:  true,
	})

	req := httptest.NewRequest(http.MethodGet,
		"/listings?q=bicicleta&category=cat-1&seller=user-9&state=SP&city=Campinas&min_price=50&max_price=900&sort=price_asc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bicicleta", captured.Query)
	assert.Equal(t, "cat-1", captured.CategoryID)
	assert.Equal(t, "user-9", captured.SellerID)
	assert.Equal(t, "SP", captured.StateCode)
	assert.Equal(t, "Campinas", captured.City)
	require.NotNil(t, captured.MinPrice)
	assert.Equal(t, 50.0, *captured.MinPrice)
	require.NotNil(t, captured.MaxPrice)
	assert.Equal(t, 900.0, *captured.MaxPrice)
	assert.Equal(t, request_models.SortPriceAsc, captured.Sort)

	mockService.AssertExpectations(t)
}

func TestSearchAbsentParamsMeanNoFilter(t *testing.T) {
	mockService := new(MockListingService)
	ctl := NewListingsController(mockService, zap.NewNop())

	router := setupTestRouter()
	router.GET("/listings", ctl.Search)

	var captured request_models.ListingFilters
	mockService.On("Search", mock.Anything, mock.MatchedBy(func(f request_models.ListingFilters) bool {
		captured = f
		return true
	})).Return(response_models.SearchResponse{})

	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, captured.Query)
	assert.Empty(t, captured.StateCode)
	assert.Nil(t, captured.MinPrice)
	assert.Equal(t, request_models.SortNewest, captured.Sort)
}

func TestSearchNoResultsIsSuccessNotError(t *testing.T) {
	mockService := new(MockListingService)
	ctl := NewListingsController(mockService, zap.NewNop())

	router := setupTestRouter()
	router.GET("/listings", ctl.Search)

	mockService.On("Search", mock.Anything, mock.Anything).Return(response_models.SearchResponse{
		Listings:   []db_models.Listing{},
		Categories: []response_models.CategoryResponse{},
		NoResults:  true,
	})

	req := httptest.NewRequest(http.MethodGet, "/listings?q=nada", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Listings  []json.RawMessage `json:"listings"`
			NoResults bool              `json:"no_results"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Empty(t, body.Data.Listings)
	assert.True(t, body.Data.NoResults)
}

func TestDuplicateRequiresSession(t *testing.T) {
	mockService := new(MockListingService)
	ctl := NewListingsController(mockService, zap.NewNop())

	router := setupTestRouter()
	router.POST("/listings/:id/duplicate", ctl.Duplicate)

	req := httptest.NewRequest(http.MethodPost, "/listings/"+uuid.NewString()+"/duplicate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "Duplicate")
}

func TestDuplicateForwardsSessionAndID(t *testing.T) {
	mockService := new(MockListingService)
	ctl := NewListingsController(mockService, zap.NewNop())

	userID := uuid.New()
	listingID := uuid.New()
	session := middleware.Session{UserID: userID}

	router := setupTestRouter()
	router.POST("/listings/:id/duplicate", func(c *gin.Context) {
		c.Set("session", session)
		ctl.Duplicate(c)
	})

	dup := &db_models.Listing{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Status:    db_models.ListingStatusPending,
		Title:     "anúncio (cópia)",
	}
	mockService.On("Duplicate", mock.Anything, session, listingID).Return(dup, nil)

	req := httptest.NewRequest(http.MethodPost, "/listings/"+listingID.String()+"/duplicate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}
