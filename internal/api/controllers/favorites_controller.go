package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"anuncia/internal/services"
	"anuncia/pkg/middleware"
	"anuncia/pkg/utils"
)

type FavoritesController struct {
	favoriteService services.FavoriteServiceInterface
	logger          *zap.Logger
}

func NewFavoritesController(favoriteService services.FavoriteServiceInterface, logger *zap.Logger) *FavoritesController {
	return &FavoritesController{favoriteService: favoriteService, logger: logger}
}

func (ctl *FavoritesController) List(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	favorites, err := ctl.favoriteService.List(c.Request.Context(), session)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, favorites, "Favorites fetched")
}

func (ctl *FavoritesController) Add(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	if err := ctl.favoriteService.Add(c.Request.Context(), session, listingID); err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondCreated(c, nil, "Listing favorited")
}

func (ctl *FavoritesController) Remove(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	if err := ctl.favoriteService.Remove(c.Request.Context(), session, listingID); err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Favorite removed")
}
