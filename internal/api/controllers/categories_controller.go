package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"anuncia/internal/models/request_models"
	"anuncia/internal/services"
	"anuncia/pkg/utils"
)

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
	logger          *zap.Logger
}

func NewCategoriesController(categoryService services.CategoryServiceInterface, logger *zap.Logger) *CategoriesController {
	return &CategoriesController{categoryService: categoryService, logger: logger}
}

func (ctl *CategoriesController) List(c *gin.Context) {
	categories, err := ctl.categoryService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, categories, "Categories fetched")
}

func (ctl *CategoriesController) Create(c *gin.Context) {
	var req request_models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name is required")
		return
	}

	category, err := ctl.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondCreated(c, category, "Category created")
}

func (ctl *CategoriesController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req request_models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name is required")
		return
	}

	category, err := ctl.categoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, category, "Category updated")
}

func (ctl *CategoriesController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := ctl.categoryService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Category deleted")
}
