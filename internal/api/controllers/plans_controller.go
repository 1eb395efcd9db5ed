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

type PlansController struct {
	planService services.PlanServiceInterface
	logger      *zap.Logger
}

func NewPlansController(planService services.PlanServiceInterface, logger *zap.Logger) *PlansController {
	return &PlansController{planService: planService, logger: logger}
}

func (ctl *PlansController) List(c *gin.Context) {
	plans, err := ctl.planService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, plans, "Plans fetched")
}

func (ctl *PlansController) Create(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name is required and price must be non-negative")
		return
	}

	plan, err := ctl.planService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondCreated(c, plan, "Plan created")
}

func (ctl *PlansController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan ID")
		return
	}

	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name is required and price must be non-negative")
		return
	}

	plan, err := ctl.planService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, plan, "Plan updated")
}

func (ctl *PlansController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan ID")
		return
	}

	if err := ctl.planService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Plan deleted")
}

func (ctl *PlansController) GenerateCheckoutLink(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan ID")
		return
	}

	link, err := ctl.planService.GenerateCheckoutLink(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, link, "Checkout link generated")
}
