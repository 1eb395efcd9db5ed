package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"anuncia/internal/models/request_models"
	"anuncia/internal/services"
	"anuncia/pkg/middleware"
	"anuncia/pkg/utils"
)

type MessagesController struct {
	messageService services.MessageServiceInterface
	logger         *zap.Logger
}

func NewMessagesController(messageService services.MessageServiceInterface, logger *zap.Logger) *MessagesController {
	return &MessagesController{messageService: messageService, logger: logger}
}

func (ctl *MessagesController) Send(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Listing ID and body are required")
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	msg, err := ctl.messageService.Send(c.Request.Context(), session, listingID, req.Body)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondCreated(c, msg, "Message sent")
}

func (ctl *MessagesController) ListOwn(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	messages, err := ctl.messageService.ListOwn(c.Request.Context(), session)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, messages, "Messages fetched")
}
