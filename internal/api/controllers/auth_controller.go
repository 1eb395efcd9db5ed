package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"anuncia/internal/models/request_models"
	"anuncia/pkg/utils"
)

// AuthController issues admin tokens. End-user identity lives with the
// external session provider; only the admin screens authenticate here.
type AuthController struct {
	logger *zap.Logger
}

func NewAuthController(logger *zap.Logger) *AuthController {
	return &AuthController{logger: logger}
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if req.Email != adminEmail || !utils.CheckPasswordHash(req.Password, adminHash) {
		utils.HandleServiceError(c, ctl.logger, utils.ErrInvalidCredentials)
		return
	}

	token, err := utils.CreateToken(uuid.New(), "admin")
	if err != nil {
		ctl.logger.Error("token creation failed", zap.Error(err))
		utils.RespondError(c, http.StatusInternalServerError, "Could not create token")
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Logged in")
}
