package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/pkg/utils"
)

type fakePlanRepo struct {
	plans       map[uuid.UUID]*db_models.Plan
	setURLCalls int
	lastURL     string
	setURLErr   error
}

func newFakePlanRepo(plans ...*db_models.Plan) *fakePlanRepo {
	f := &fakePlanRepo{plans: map[uuid.UUID]*db_models.Plan{}}
	for _, p := range plans {
		f.plans[p.ID] = p
	}
	return f
}

func (f *fakePlanRepo) GetAll(ctx context.Context) ([]db_models.Plan, error) {
	out := make([]db_models.Plan, 0, len(f.plans))
	for _, p := range f.plans {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePlanRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	if p, ok := f.plans[id]; ok {
		found := *p
		return &found, nil
	}
	return nil, nil
}

func (f *fakePlanRepo) Create(ctx context.Context, plan *db_models.Plan) (uuid.UUID, error) {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans[plan.ID] = plan
	return plan.ID, nil
}

func (f *fakePlanRepo) Update(ctx context.Context, plan *db_models.Plan) error {
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakePlanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.plans, id)
	return nil
}

func (f *fakePlanRepo) SetCheckoutURL(ctx context.Context, id uuid.UUID, url string) error {
	if f.setURLErr != nil {
		return f.setURLErr
	}
	f.setURLCalls++
	f.lastURL = url
	if p, ok := f.plans[id]; ok {
		p.CheckoutURL = &url
	}
	return nil
}

type fakeCheckout struct {
	url   string
	err   error
	calls int
}

func (f *fakeCheckout) CreatePlanCheckoutLink(plan *db_models.Plan) (string, error) {
	f.calls++
	return f.url, f.err
}

func TestGenerateCheckoutLinkPersistsURL(t *testing.T) {
	plan := &db_models.Plan{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		Name:       "Plano Destaque",
		PriceMinor: 4990,
	}
	repo := newFakePlanRepo(plan)
	checkout := &fakeCheckout{url: "https://pay.example/abc123"}
	svc := NewPlanService(repo, checkout, zap.NewNop())

	resp, err := svc.GenerateCheckoutLink(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/abc123", resp.CheckoutURL)
	assert.Equal(t, 1, repo.setURLCalls)
	assert.Equal(t, "https://pay.example/abc123", repo.lastURL)
}

func TestGenerateCheckoutLinkProviderFailurePersistsNothing(t *testing.T) {
	plan := &db_models.Plan{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		Name:       "Plano Básico",
		PriceMinor: 990,
	}
	repo := newFakePlanRepo(plan)
	checkout := &fakeCheckout{err: errors.New("gateway timeout")}
	svc := NewPlanService(repo, checkout, zap.NewNop())

	_, err := svc.GenerateCheckoutLink(context.Background(), plan.ID)
	assert.ErrorIs(t, err, utils.ErrCheckoutFailed)
	assert.Equal(t, 0, repo.setURLCalls)
	assert.Nil(t, repo.plans[plan.ID].CheckoutURL)
}

func TestGenerateCheckoutLinkUnknownPlan(t *testing.T) {
	repo := newFakePlanRepo()
	checkout := &fakeCheckout{url: "https://pay.example/unused"}
	svc := NewPlanService(repo, checkout, zap.NewNop())

	_, err := svc.GenerateCheckoutLink(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
	assert.Equal(t, 0, checkout.calls)
}

func TestPlanCreateAppliesDefaults(t *testing.T) {
	repo := newFakePlanRepo()
	svc := NewPlanService(repo, &fakeCheckout{}, zap.NewNop())

	plan, err := svc.Create(context.Background(), request_models.PlanRequest{
		Name:       "Plano Grátis",
		PriceMinor: 0,
	})
	require.NoError(t, err)
	assert.True(t, plan.Active)
	assert.Equal(t, 30, plan.DurationDays)
	assert.Equal(t, 1, plan.PhotoAllowance)
	assert.Equal(t, "plano-gratis", plan.Slug)
}
