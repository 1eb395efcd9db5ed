package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anuncia/internal/models/db_models"
)

type PlanRepository interface {
	GetAll(ctx context.Context) ([]db_models.Plan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error)
	Create(ctx context.Context, plan *db_models.Plan) (uuid.UUID, error)
	Update(ctx context.Context, plan *db_models.Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetCheckoutURL(ctx context.Context, id uuid.UUID, url string) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetAll(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	if err := r.db.WithContext(ctx).Order("price_minor ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) Create(ctx context.Context, plan *db_models.Plan) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return uuid.Nil, err
	}
	return plan.ID, nil
}

func (r *planRepository) Update(ctx context.Context, plan *db_models.Plan) error {
	result := r.db.WithContext(ctx).Save(plan)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *planRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Plan{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *planRepository) SetCheckoutURL(ctx context.Context, id uuid.UUID, url string) error {
	return r.db.WithContext(ctx).Model(&db_models.Plan{}).
		Where("id = ?", id).
		Update("checkout_url", url).Error
}
