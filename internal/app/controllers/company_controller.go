package controllers

import (
	"net/http"

	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/services"
	"github.com/findjobsyria/api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CompanyController handles company profiles
type CompanyController struct {
	companyService services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// ListCompanies lists the companies owned by a user
// @Summary List companies
// @Description Lists the companies owned by userId. Without userId the list is empty.
// @Tags companies
// @Produce json
// @Param userId query string false "Owner user ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Company} "Companies"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [get]
func (c *CompanyController) ListCompanies(ctx *gin.Context) {
	var query dto.CompanyListQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	companies, err := c.companyService.ListCompanies(ctx.Request.Context(), query.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(companies))
}

// GetCompany retrieves one company
// @Summary Get company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} dto.APIResponse{data=models.Company} "Company"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [get]
func (c *CompanyController) GetCompany(ctx *gin.Context) {
	company, err := c.companyService.GetCompany(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(company))
}

// CreateCompany creates a company owned by the caller
// @Summary Create company
// @Tags companies
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.CreateCompanyRequest true "Company profile"
// @Success 201 {object} dto.APIResponse{data=models.Company} "Company created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [post]
func (c *CompanyController) CreateCompany(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	company, err := c.companyService.CreateCompany(ctx.Request.Context(), req.ToModel(identity.ID), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(company))
}

// UpdateCompany updates a company profile
// @Summary Update company
// @Description Partially updates a company. Only the owner may update it.
// @Tags companies
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Company ID"
// @Param request body dto.UpdateCompanyRequest true "Company fields"
// @Success 200 {object} dto.APIResponse{data=models.Company} "Updated company"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [patch]
func (c *CompanyController) UpdateCompany(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	company, err := c.companyService.UpdateCompany(ctx.Request.Context(), ctx.Param("id"), req.ToModel(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(company))
}
