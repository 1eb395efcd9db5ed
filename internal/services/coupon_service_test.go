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

type fakeCouponRepo struct {
	coupons   []db_models.Coupon
	createErr error
	updateErr error
	byID      *db_models.Coupon
}

func (f *fakeCouponRepo) GetAll(ctx context.Context) ([]db_models.Coupon, error) {
	return f.coupons, nil
}

func (f *fakeCouponRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Coupon, error) {
	return f.byID, nil
}

func (f *fakeCouponRepo) Create(ctx context.Context, coupon *db_models.Coupon) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.coupons = append(f.coupons, *coupon)
	return coupon.ID, nil
}

func (f *fakeCouponRepo) Update(ctx context.Context, coupon *db_models.Coupon) error {
	return f.updateErr
}

func (f *fakeCouponRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestCouponCreateRejectsOutOfRangePercent(t *testing.T) {
	svc := NewCouponService(&fakeCouponRepo{}, zap.NewNop())

	for _, percent := range []int{0, -5, 101, 150} {
		_, err := svc.Create(context.Background(), request_models.CouponRequest{
			Code:            "PROMO",
			DiscountPercent: percent,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidPercent, "percent %d must be rejected", percent)
	}
}

func TestCouponCreateAcceptsFullPercentRange(t *testing.T) {
	repo := &fakeCouponRepo{}
	svc := NewCouponService(repo, zap.NewNop())

	for _, percent := range []int{1, 50, 100} {
		coupon, err := svc.Create(context.Background(), request_models.CouponRequest{
			Code:            "PROMO",
			DiscountPercent: percent,
		})
		require.NoError(t, err, "percent %d must be accepted", percent)
		assert.Equal(t, percent, coupon.DiscountPercent)
	}
}

func TestCouponCodeIsUpperNormalized(t *testing.T) {
	svc := NewCouponService(&fakeCouponRepo{}, zap.NewNop())

	coupon, err := svc.Create(context.Background(), request_models.CouponRequest{
		Code:            "  desconto10 ",
		DiscountPercent: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "DESCONTO10", coupon.Code)
}

func TestCouponDuplicateCodeIsTranslated(t *testing.T) {
	repo := &fakeCouponRepo{
		createErr: errors.New(`ERROR: duplicate key value violates unique constraint "idx_coupons_code" (SQLSTATE 23505)`),
	}
	svc := NewCouponService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), request_models.CouponRequest{
		Code:            "PROMO",
		DiscountPercent: 10,
	})
	assert.ErrorIs(t, err, utils.ErrDuplicateCoupon)
}

func TestCouponCreateOtherErrorsBecomeGeneric(t *testing.T) {
	repo := &fakeCouponRepo{createErr: errors.New("connection refused")}
	svc := NewCouponService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), request_models.CouponRequest{
		Code:            "PROMO",
		DiscountPercent: 10,
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestCouponUpdateRejectsLimitBelowUsedCount(t *testing.T) {
	used := db_models.Coupon{
		BaseModel:       db_models.BaseModel{ID: uuid.New()},
		Code:            "PROMO",
		DiscountPercent: 10,
		UsedCount:       7,
	}
	svc := NewCouponService(&fakeCouponRepo{byID: &used}, zap.NewNop())

	limit := 3
	_, err := svc.Update(context.Background(), used.ID, request_models.CouponRequest{
		Code:            "PROMO",
		DiscountPercent: 10,
		UsageLimit:      &limit,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidUsageLimit)
}
