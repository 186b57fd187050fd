package controllers

import (
	"net/http"

	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/services"
	"github.com/findjobsyria/api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SavedOpportunityController handles bookmarks
type SavedOpportunityController struct {
	savedService services.SavedOpportunityService
}

// NewSavedOpportunityController creates a new SavedOpportunityController
func NewSavedOpportunityController(savedService services.SavedOpportunityService) *SavedOpportunityController {
	return &SavedOpportunityController{savedService: savedService}
}

// ListSaved lists the caller's bookmarks
// @Summary List saved opportunities
// @Tags saved
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.APIResponse{data=[]models.SavedOpportunity} "Bookmarks"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /saved [get]
func (c *SavedOpportunityController) ListSaved(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	saved, err := c.savedService.ListSaved(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(saved))
}

// IsSaved reports whether the caller bookmarked an opportunity
// @Summary Check bookmark
// @Tags saved
// @Produce json
// @Security SessionCookie
// @Param opportunityId path string true "Opportunity ID"
// @Success 200 {object} dto.APIResponse{data=dto.SavedStatusResponse} "Bookmark state"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /saved/{opportunityId} [get]
func (c *SavedOpportunityController) IsSaved(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	saved, err := c.savedService.IsSaved(ctx.Request.Context(), ctx.Param("opportunityId"), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SavedStatusResponse{IsSaved: saved}))
}

// Save bookmarks an opportunity. Saving twice is a no-op.
// @Summary Save opportunity
// @Tags saved
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.SaveOpportunityRequest true "Opportunity to save"
// @Success 201 {object} dto.APIResponse{data=models.SavedOpportunity} "Bookmark"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /saved [post]
func (c *SavedOpportunityController) Save(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.SaveOpportunityRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	saved, err := c.savedService.Save(ctx.Request.Context(), req.OpportunityID, identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(saved))
}

// Unsave removes a bookmark
// @Summary Unsave opportunity
// @Tags saved
// @Produce json
// @Security SessionCookie
// @Param opportunityId path string true "Opportunity ID"
// @Success 200 {object} dto.SuccessResponse "Bookmark removed"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /saved/{opportunityId} [delete]
func (c *SavedOpportunityController) Unsave(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	if err := c.savedService.Unsave(ctx.Request.Context(), ctx.Param("opportunityId"), identity); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
