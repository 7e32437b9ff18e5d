package controller

import (
	"github.com/Rndynt/WealthWiseApp-sub001/internal/service"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary Workspace dashboard
// @Description Aggregate balances, trailing income and spending, goal progress, and suggestions
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Success 200 {object} util.Response
// @Router /api/workspaces/{workspaceId}/dashboard [get]
func (c *DashboardController) Summary(ctx *gin.Context) {
	summary, err := c.DashboardService.Summary(ctx.Request.Context(), ctx.GetUint("workspaceId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
