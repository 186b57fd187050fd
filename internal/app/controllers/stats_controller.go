package controllers

import (
	"net/http"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/services"
	"github.com/findjobsyria/api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// StatsController serves the public counters of the home page
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// GetStats counts approved opportunities by type
// @Summary Opportunity counters
// @Tags stats
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StatsResponse} "Counters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats [get]
func (c *StatsController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// GetProvinceStats counts approved opportunities per province
// @Summary Opportunity counters per province
// @Description Every province is listed, including those without opportunities
// @Tags stats
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ProvinceStat} "Counters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats/provinces [get]
func (c *StatsController) GetProvinceStats(ctx *gin.Context) {
	stats, err := c.statsService.GetProvinceStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// ListProvinces returns the province codes
// @Summary List provinces
// @Tags stats
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Province codes"
// @Router /provinces [get]
func (c *StatsController) ListProvinces(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(models.Provinces))
}
