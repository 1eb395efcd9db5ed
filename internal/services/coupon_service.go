package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/internal/repositories"
	"anuncia/pkg/utils"
)

type CouponServiceInterface interface {
	GetAll(ctx context.Context) ([]db_models.Coupon, error)
	Create(ctx context.Context, req request_models.CouponRequest) (*db_models.Coupon, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.CouponRequest) (*db_models.Coupon, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CouponService struct {
	couponRepo repositories.CouponRepository
	logger     *zap.Logger
}

func NewCouponService(couponRepo repositories.CouponRepository, logger *zap.Logger) CouponServiceInterface {
	return &CouponService{couponRepo: couponRepo, logger: logger}
}

func (s *CouponService) GetAll(ctx context.Context) ([]db_models.Coupon, error) {
	coupons, err := s.couponRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return coupons, nil
}

// validateCoupon rejects bad input before any store call is made.
func validateCoupon(req request_models.CouponRequest, usedCount int) error {
	if req.DiscountPercent <= 0 || req.DiscountPercent > 100 {
		return utils.ErrInvalidPercent
	}
	if req.UsageLimit != nil && *req.UsageLimit < usedCount {
		return utils.ErrInvalidUsageLimit
	}
	return nil
}

func (s *CouponService) Create(ctx context.Context, req request_models.CouponRequest) (*db_models.Coupon, error) {
	if err := validateCoupon(req, 0); err != nil {
		return nil, err
	}

	coupon := &db_models.Coupon{
		Code:            strings.ToUpper(strings.TrimSpace(req.Code)),
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		UsageLimit:      req.UsageLimit,
		ExpiresAt:       req.ExpiresAt,
		Active:          true,
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}

	if _, err := s.couponRepo.Create(ctx, coupon); err != nil {
		if utils.IsDuplicateKey(err) {
			return nil, utils.ErrDuplicateCoupon
		}
		s.logger.Error("coupon create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return coupon, nil
}

func (s *CouponService) Update(ctx context.Context, id uuid.UUID, req request_models.CouponRequest) (*db_models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if coupon == nil {
		return nil, utils.ErrRecordNotFound
	}

	if err := validateCoupon(req, coupon.UsedCount); err != nil {
		return nil, err
	}

	coupon.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	coupon.Description = req.Description
	coupon.DiscountPercent = req.DiscountPercent
	coupon.UsageLimit = req.UsageLimit
	coupon.ExpiresAt = req.ExpiresAt
	if req.Active != nil {
		coupon.Active = *req.Active
	}

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		if utils.IsDuplicateKey(err) {
			return nil, utils.ErrDuplicateCoupon
		}
		return nil, utils.ErrDatabaseError
	}
	return coupon, nil
}

func (s *CouponService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.couponRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
