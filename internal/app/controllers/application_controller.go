package controllers

import (
	"net/http"

	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/services"
	"github.com/findjobsyria/api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ApplicationController handles job applications
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// ListApplications lists applications of a user or of an opportunity
// @Summary List applications
// @Description opportunityId lists the applicants of a listing the caller owns; userId lists the caller's own applications.
// @Tags applications
// @Produce json
// @Security SessionCookie
// @Param userId query string false "Applicant user ID (must be the caller)"
// @Param opportunityId query string false "Opportunity ID (caller must own its company)"
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications"
// @Failure 400 {object} dto.ErrorResponse "Neither userId nor opportunityId"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not allowed"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	var query dto.ApplicationListQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	applications, err := c.applicationService.ListApplications(ctx.Request.Context(), query, identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// GetApplication retrieves one application
// @Summary Get application
// @Description Visible to the applicant and to the owner of the opportunity's company
// @Tags applications
// @Produce json
// @Security SessionCookie
// @Param id path string true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not allowed"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id} [get]
func (c *ApplicationController) GetApplication(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	application, err := c.applicationService.GetApplication(ctx.Request.Context(), ctx.Param("id"), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}

// CreateApplication applies the caller to an opportunity
// @Summary Apply to an opportunity
// @Tags applications
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.CreateApplicationRequest true "Application"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "CV belongs to someone else"
// @Failure 404 {object} dto.ErrorResponse "Opportunity or CV not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	application, err := c.applicationService.CreateApplication(ctx.Request.Context(), &req, identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(application))
}

// UpdateApplication changes the review status of an application
// @Summary Review application
// @Description Only the owner of the opportunity's company may change the status
// @Tags applications
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Updated application"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the company owner"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id} [patch]
func (c *ApplicationController) UpdateApplication(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	application, err := c.applicationService.UpdateApplicationStatus(ctx.Request.Context(), ctx.Param("id"), req.Status, identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}
