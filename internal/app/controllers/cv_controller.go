package controllers

import (
	"net/http"

	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/services"
	"github.com/findjobsyria/api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CvController handles the caller's CVs. Every route is owner-only.
type CvController struct {
	cvService services.CvService
}

// NewCvController creates a new CvController
func NewCvController(cvService services.CvService) *CvController {
	return &CvController{cvService: cvService}
}

// ListCvs lists the caller's CVs
// @Summary List my CVs
// @Tags cvs
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.APIResponse{data=[]models.Cv} "CVs"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cvs [get]
func (c *CvController) ListCvs(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	cvs, err := c.cvService.ListCvs(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(cvs))
}

// GetCv retrieves one of the caller's CVs
// @Summary Get CV
// @Tags cvs
// @Produce json
// @Security SessionCookie
// @Param id path string true "CV ID"
// @Success 200 {object} dto.APIResponse{data=models.Cv} "CV"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not your CV"
// @Failure 404 {object} dto.ErrorResponse "CV not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cvs/{id} [get]
func (c *CvController) GetCv(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	cv, err := c.cvService.GetCv(ctx.Request.Context(), ctx.Param("id"), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(cv))
}

// CreateCv stores a CV for the caller
// @Summary Create CV
// @Tags cvs
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.CreateCvRequest true "CV"
// @Success 201 {object} dto.APIResponse{data=models.Cv} "CV created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cvs [post]
func (c *CvController) CreateCv(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateCvRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	cv, err := c.cvService.CreateCv(ctx.Request.Context(), req.ToModel(identity.ID), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(cv))
}

// UpdateCv updates one of the caller's CVs
// @Summary Update CV
// @Tags cvs
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "CV ID"
// @Param request body dto.UpdateCvRequest true "CV fields"
// @Success 200 {object} dto.APIResponse{data=models.Cv} "Updated CV"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not your CV"
// @Failure 404 {object} dto.ErrorResponse "CV not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cvs/{id} [patch]
func (c *CvController) UpdateCv(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCvRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	cv, err := c.cvService.UpdateCv(ctx.Request.Context(), ctx.Param("id"), req.ToModel(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(cv))
}

// DeleteCv deletes one of the caller's CVs
// @Summary Delete CV
// @Tags cvs
// @Produce json
// @Security SessionCookie
// @Param id path string true "CV ID"
// @Success 200 {object} dto.SuccessResponse "CV deleted"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not your CV"
// @Failure 404 {object} dto.ErrorResponse "CV not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cvs/{id} [delete]
func (c *CvController) DeleteCv(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	if err := c.cvService.DeleteCv(ctx.Request.Context(), ctx.Param("id"), identity); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
