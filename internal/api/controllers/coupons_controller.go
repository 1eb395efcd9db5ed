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

type CouponsController struct {
	couponService services.CouponServiceInterface
	logger        *zap.Logger
}

func NewCouponsController(couponService services.CouponServiceInterface, logger *zap.Logger) *CouponsController {
	return &CouponsController{couponService: couponService, logger: logger}
}

func (ctl *CouponsController) List(c *gin.Context) {
	coupons, err := ctl.couponService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, coupons, "Coupons fetched")
}

func (ctl *CouponsController) Create(c *gin.Context) {
	var req request_models.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Code and discount percent are required")
		return
	}

	coupon, err := ctl.couponService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondCreated(c, coupon, "Coupon created")
}

func (ctl *CouponsController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid coupon ID")
		return
	}

	var req request_models.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Code and discount percent are required")
		return
	}

	coupon, err := ctl.couponService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, coupon, "Coupon updated")
}

func (ctl *CouponsController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid coupon ID")
		return
	}

	if err := ctl.couponService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Coupon deleted")
}
