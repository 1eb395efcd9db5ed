package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anuncia/internal/models/db_models"
)

type CouponRepository interface {
	GetAll(ctx context.Context) ([]db_models.Coupon, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Coupon, error)
	Create(ctx context.Context, coupon *db_models.Coupon) (uuid.UUID, error)
	Update(ctx context.Context, coupon *db_models.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) GetAll(ctx context.Context) ([]db_models.Coupon, error) {
	var coupons []db_models.Coupon
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *couponRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Coupon, error) {
	var coupon db_models.Coupon
	err := r.db.WithContext(ctx).First(&coupon, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) Create(ctx context.Context, coupon *db_models.Coupon) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(coupon).Error; err != nil {
		return uuid.Nil, err
	}
	return coupon.ID, nil
}

func (r *couponRepository) Update(ctx context.Context, coupon *db_models.Coupon) error {
	result := r.db.WithContext(ctx).Save(coupon)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Coupon{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
