package controllers

import (
	"net/http"

	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/services"
	"github.com/findjobsyria/api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// OpportunityController handles job, training and volunteer listings
type OpportunityController struct {
	opportunityService services.OpportunityService
}

// NewOpportunityController creates a new OpportunityController
func NewOpportunityController(opportunityService services.OpportunityService) *OpportunityController {
	return &OpportunityController{opportunityService: opportunityService}
}

// ListOpportunities lists opportunities matching every given filter
// @Summary List opportunities
// @Description Newest first. search matches title, titleEn and description case-insensitively.
// @Tags opportunities
// @Produce json
// @Param type query string false "job, training or volunteer"
// @Param province query string false "Province code"
// @Param category query string false "Category"
// @Param search query string false "Free text"
// @Param status query string false "pending, approved, rejected or expired"
// @Param companyId query string false "Company ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Opportunity} "Opportunities"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /opportunities [get]
func (c *OpportunityController) ListOpportunities(ctx *gin.Context) {
	var query dto.OpportunityListQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	opportunities, err := c.opportunityService.ListOpportunities(ctx.Request.Context(), query.ToFilter())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(opportunities))
}

// GetOpportunity retrieves one opportunity and counts the view
// @Summary Get opportunity
// @Tags opportunities
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {object} dto.APIResponse{data=models.Opportunity} "Opportunity"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /opportunities/{id} [get]
func (c *OpportunityController) GetOpportunity(ctx *gin.Context) {
	opportunity, err := c.opportunityService.GetOpportunity(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(opportunity))
}

// CreateOpportunity publishes a listing for moderation
// @Summary Create opportunity
// @Description The listing is stored as pending until an admin approves it
// @Tags opportunities
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.CreateOpportunityRequest true "Listing"
// @Success 201 {object} dto.APIResponse{data=models.Opportunity} "Opportunity created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the company owner"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /opportunities [post]
func (c *OpportunityController) CreateOpportunity(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateOpportunityRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	opportunity, err := c.opportunityService.CreateOpportunity(ctx.Request.Context(), req.ToModel(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(opportunity))
}

// UpdateOpportunity lets the owning company edit a listing
// @Summary Update opportunity
// @Description Partially updates a listing. The only status change allowed is closing an approved listing.
// @Tags opportunities
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Opportunity ID"
// @Param request body dto.UpdateOpportunityRequest true "Listing fields"
// @Success 200 {object} dto.APIResponse{data=models.Opportunity} "Updated opportunity"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or status change"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the company owner"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /opportunities/{id} [patch]
func (c *OpportunityController) UpdateOpportunity(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.UpdateOpportunityRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	opportunity, err := c.opportunityService.UpdateOpportunity(ctx.Request.Context(), ctx.Param("id"), req.ToModel(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(opportunity))
}

// ModerateOpportunity changes the moderation status of a listing
// @Summary Moderate opportunity
// @Description Admin only. pending to approved or rejected, approved to expired or rejected, rejected to pending.
// @Tags opportunities
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Opportunity ID"
// @Param request body dto.ModerateOpportunityRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Opportunity} "Moderated opportunity"
// @Failure 400 {object} dto.ErrorResponse "Invalid status transition"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admins only"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /opportunities/{id}/status [patch]
func (c *OpportunityController) ModerateOpportunity(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.ModerateOpportunityRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	opportunity, err := c.opportunityService.ModerateOpportunity(ctx.Request.Context(), ctx.Param("id"), req.Status, identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(opportunity))
}
