package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"anuncia/internal/services"
	"anuncia/pkg/middleware"
	"anuncia/pkg/utils"
)

type FooterAdsController struct {
	rotation       services.FooterRotationService
	messageService services.MessageServiceInterface
	logger         *zap.Logger
}

func NewFooterAdsController(rotation services.FooterRotationService, messageService services.MessageServiceInterface, logger *zap.Logger) *FooterAdsController {
	return &FooterAdsController{
		rotation:       rotation,
		messageService: messageService,
		logger:         logger,
	}
}

// Current returns the sponsor slot; 204 when nothing is showing.
func (ctl *FooterAdsController) Current(c *gin.Context) {
	slot := ctl.rotation.Current()
	if slot.Listing == nil {
		c.Status(http.StatusNoContent)
		return
	}
	utils.RespondSuccess(c, slot, "Footer ad fetched")
}

func (ctl *FooterAdsController) Dismiss(c *gin.Context) {
	ctl.rotation.Dismiss()
	utils.RespondSuccess(c, nil, "Footer ad dismissed")
}

type footerContactRequest struct {
	Body string `json:"body" binding:"required"`
}

// Contact hides the sponsor slot immediately and hands the conversation
// off to the messaging collaborator.
func (ctl *FooterAdsController) Contact(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	slot := ctl.rotation.Current()
	if slot.Listing == nil {
		utils.RespondError(c, http.StatusConflict, "No footer ad is currently showing")
		return
	}

	var req footerContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message body is required")
		return
	}

	listingID := slot.Listing.ID
	ctl.rotation.DismissShowing(listingID)

	msg, err := ctl.messageService.Send(c.Request.Context(), session, listingID, req.Body)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondCreated(c, msg, "Contact message sent")
}

// Reload refetches the eligible sponsor list; admin only.
func (ctl *FooterAdsController) Reload(c *gin.Context) {
	if err := ctl.rotation.Reload(c.Request.Context()); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not reload footer ads")
		return
	}
	utils.RespondSuccess(c, nil, "Footer ads reloaded")
}
