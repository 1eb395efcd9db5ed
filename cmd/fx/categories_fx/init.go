package categories_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anuncia/internal/api/controllers"
	"anuncia/internal/infra"
	"anuncia/internal/repositories"
	"anuncia/internal/services"
	"anuncia/pkg/memcache"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryCache, provideCategoryService,
	provideCategoriesController, provideCategoryListener)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryCache() *memcache.CategoryCache {
	return memcache.NewCategoryCache()
}

func provideCategoryService(categoryRepo repositories.CategoryRepository, cache *memcache.CategoryCache, logger *zap.Logger) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, cache, logger)
}

func provideCategoriesController(categoryService services.CategoryServiceInterface, logger *zap.Logger) *controllers.CategoriesController {
	return controllers.NewCategoriesController(categoryService, logger)
}

func provideCategoryListener(categoryService services.CategoryServiceInterface, logger *zap.Logger) *infra.CategoryListener {
	return infra.NewCategoryListener(logger, categoryService.Invalidate)
}
