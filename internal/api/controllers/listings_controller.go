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

type ListingsController struct {
	listingService services.ListingServiceInterface
	logger         *zap.Logger
}

func NewListingsController(listingService services.ListingServiceInterface, logger *zap.Logger) *ListingsController {
	return &ListingsController{listingService: listingService, logger: logger}
}

// Search binds the URL query string straight into the filter set; an absent
// parameter means "no filter". Responses never fail on backend errors (the
// service swallows and logs them), and concurrent searches are not ordered
// against each other: a slow older response can reach the client after a
// newer one.
func (ctl *ListingsController) Search(c *gin.Context) {
	filters := request_models.DefaultListingFilters()
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result := ctl.listingService.Search(c.Request.Context(), filters)
	utils.RespondSuccess(c, result, "Listings fetched")
}

func (ctl *ListingsController) Featured(c *gin.Context) {
	listings, err := ctl.listingService.Featured(c.Request.Context(), 10)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, listings, "Featured listings fetched")
}

func (ctl *ListingsController) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	listing, err := ctl.listingService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, listing, "Listing fetched")
}

func (ctl *ListingsController) RegisterView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	if err := ctl.listingService.RegisterView(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "View registered")
}

func (ctl *ListingsController) ListOwn(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	listings, err := ctl.listingService.ListOwn(c.Request.Context(), session)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, listings, "Own listings fetched")
}

func (ctl *ListingsController) Create(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing payload: "+err.Error())
		return
	}

	listing, err := ctl.listingService.Create(c.Request.Context(), session, req)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondCreated(c, listing, "Listing created")
}

func (ctl *ListingsController) Update(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	var req request_models.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing payload: "+err.Error())
		return
	}

	listing, err := ctl.listingService.Update(c.Request.Context(), session, id, req)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, listing, "Listing updated")
}

func (ctl *ListingsController) Delete(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	if err := ctl.listingService.Delete(c.Request.Context(), session, id); err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Listing deleted")
}

func (ctl *ListingsController) ToggleStatus(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	listing, err := ctl.listingService.ToggleStatus(c.Request.Context(), session, id)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondSuccess(c, listing, "Listing status toggled")
}

func (ctl *ListingsController) Duplicate(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	listing, err := ctl.listingService.Duplicate(c.Request.Context(), session, id)
	if err != nil {
		utils.HandleServiceError(c, ctl.logger, err)
		return
	}
	utils.RespondCreated(c, listing, "Listing duplicated")
}
