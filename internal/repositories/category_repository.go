package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anuncia/internal/models/db_models"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]db_models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error)
	Create(ctx context.Context, category *db_models.Category) (uuid.UUID, error)
	Update(ctx context.Context, category *db_models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *db_models.Category) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return uuid.Nil, err
	}
	return category.ID, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *db_models.Category) error {
	result := r.db.WithContext(ctx).Save(category)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete is uncoordinated with listings that reference the category; their
// category_id keeps pointing at the removed row and rendering falls back to
// the derived list.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Category{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
