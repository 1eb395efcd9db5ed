package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/internal/models/response_models"
	"anuncia/internal/repositories"
	"anuncia/pkg/utils"
)

type PlanServiceInterface interface {
	GetAll(ctx context.Context) ([]db_models.Plan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error)
	Create(ctx context.Context, req request_models.PlanRequest) (*db_models.Plan, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.PlanRequest) (*db_models.Plan, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GenerateCheckoutLink(ctx context.Context, id uuid.UUID) (*response_models.CheckoutLinkResponse, error)
}

type PlanService struct {
	planRepo repositories.PlanRepository
	checkout CheckoutService
	logger   *zap.Logger
}

func NewPlanService(planRepo repositories.PlanRepository, checkout CheckoutService, logger *zap.Logger) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
		checkout: checkout,
		logger:   logger,
	}
}

func (s *PlanService) GetAll(ctx context.Context) ([]db_models.Plan, error) {
	plans, err := s.planRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

func (s *PlanService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrRecordNotFound
	}
	return plan, nil
}

func (s *PlanService) Create(ctx context.Context, req request_models.PlanRequest) (*db_models.Plan, error) {
	plan := &db_models.Plan{
		Name:           req.Name,
		Slug:           utils.Slugify(req.Name),
		Description:    req.Description,
		PriceMinor:     req.PriceMinor,
		DurationDays:   req.DurationDays,
		PhotoAllowance: req.PhotoAllowance,
		DirectContact:  req.DirectContact,
		Featured:       req.Featured,
		Active:         true,
	}
	if req.Active != nil {
		plan.Active = *req.Active
	}
	if plan.DurationDays <= 0 {
		plan.DurationDays = 30
	}
	if plan.PhotoAllowance <= 0 {
		plan.PhotoAllowance = 1
	}

	if _, err := s.planRepo.Create(ctx, plan); err != nil {
		s.logger.Error("plan create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (s *PlanService) Update(ctx context.Context, id uuid.UUID, req request_models.PlanRequest) (*db_models.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrRecordNotFound
	}

	plan.Name = req.Name
	plan.Slug = utils.Slugify(req.Name)
	plan.Description = req.Description
	plan.PriceMinor = req.PriceMinor
	if req.DurationDays > 0 {
		plan.DurationDays = req.DurationDays
	}
	if req.PhotoAllowance > 0 {
		plan.PhotoAllowance = req.PhotoAllowance
	}
	plan.DirectContact = req.DirectContact
	plan.Featured = req.Featured
	if req.Active != nil {
		plan.Active = *req.Active
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (s *PlanService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.planRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// GenerateCheckoutLink asks the payment provider for a hosted URL and
// persists it on the plan. A provider failure persists nothing.
func (s *PlanService) GenerateCheckoutLink(ctx context.Context, id uuid.UUID) (*response_models.CheckoutLinkResponse, error) {
	plan, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.checkout.CreatePlanCheckoutLink(plan)
	if err != nil {
		s.logger.Error("checkout link generation failed",
			zap.String("plan_id", id.String()), zap.Error(err))
		return nil, utils.ErrCheckoutFailed
	}

	if err := s.planRepo.SetCheckoutURL(ctx, id, url); err != nil {
		s.logger.Error("checkout url persist failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CheckoutLinkResponse{
		PlanID:      id.String(),
		CheckoutURL: url,
	}, nil
}
