package controller

import (
	"errors"
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/service"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

type GoalRequest struct {
	Name            string             `json:"name" binding:"required"`
	Description     string             `json:"description"`
	Type            model.GoalType     `json:"type" binding:"required,oneof=savings debt_payment investment emergency_fund retirement vacation house education"`
	TargetAmount    decimal.Decimal    `json:"targetAmount" binding:"required"`
	TargetDate      time.Time          `json:"targetDate" binding:"required"`
	Priority        model.GoalPriority `json:"priority"`
	Status          model.GoalStatus   `json:"status"`
	IsAutoTracking  bool               `json:"isAutoTracking"`
	LinkedAccountID *uint              `json:"linkedAccountId"`
	LinkedDebtID    *uint              `json:"linkedDebtId"`
}

type AddProgressRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Note   string          `json:"note"`
}

// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Param body body GoalRequest true "goal"
// @Success 201 {object} util.Response
// @Router /api/workspaces/{workspaceId}/goals [post]
func (c *GoalController) Create(ctx *gin.Context) {
	var req GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal := &model.Goal{
		WorkspaceID:     ctx.GetUint("workspaceId"),
		Name:            req.Name,
		Description:     req.Description,
		Type:            req.Type,
		TargetAmount:    req.TargetAmount,
		TargetDate:      req.TargetDate,
		Priority:        req.Priority,
		Status:          req.Status,
		IsAutoTracking:  req.IsAutoTracking,
		LinkedAccountID: req.LinkedAccountID,
		LinkedDebtID:    req.LinkedDebtID,
	}
	if err := c.GoalService.CreateGoal(goal); err != nil {
		if errors.Is(err, util.ErrInvalidAmount) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, goal)
}

// @Summary List goals
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Success 200 {object} util.Response
// @Router /api/workspaces/{workspaceId}/goals [get]
func (c *GoalController) List(ctx *gin.Context) {
	goals, err := c.GoalService.ListGoals(ctx.GetUint("workspaceId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goals)
}

func (c *GoalController) Get(ctx *gin.Context) {
	goal, err := c.GoalService.GetGoal(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goal)
}

func (c *GoalController) Update(ctx *gin.Context) {
	var req GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.UpdateGoal(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"), &model.Goal{
		Name:            req.Name,
		Description:     req.Description,
		Type:            req.Type,
		TargetAmount:    req.TargetAmount,
		TargetDate:      req.TargetDate,
		Priority:        req.Priority,
		Status:          req.Status,
		IsAutoTracking:  req.IsAutoTracking,
		LinkedAccountID: req.LinkedAccountID,
		LinkedDebtID:    req.LinkedDebtID,
	})
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goal)
}

func (c *GoalController) Delete(ctx *gin.Context) {
	err := c.GoalService.DeleteGoal(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Add manual progress
// @Description Records a manual contribution against the goal and recomputes its progress
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Param id path int true "goal id"
// @Param body body AddProgressRequest true "contribution"
// @Success 200 {object} util.Response
// @Router /api/workspaces/{workspaceId}/goals/{id}/progress [post]
func (c *GoalController) AddProgress(ctx *gin.Context) {
	var req AddProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.AddProgress(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"), req.Amount, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrGoalNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrGoalNotActive), errors.Is(err, util.ErrInvalidAmount):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, goal)
}

// @Summary Recompute goal progress
// @Description Recomputes the goal's current amount from its contribution ledger (or linked debt)
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Param id path int true "goal id"
// @Success 200 {object} util.Response
// @Router /api/workspaces/{workspaceId}/goals/{id}/recompute [post]
func (c *GoalController) Recompute(ctx *gin.Context) {
	goalID := util.MustParseUint(ctx.Param("id"))
	if err := c.GoalService.UpdateGoalProgress(goalID, ctx.GetUint("workspaceId")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	goal, err := c.GoalService.GetGoal(goalID, ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goal)
}

// @Summary Mark a goal completed
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Param id path int true "goal id"
// @Success 200 {object} util.Response
// @Router /api/workspaces/{workspaceId}/goals/{id}/complete [post]
func (c *GoalController) Complete(ctx *gin.Context) {
	goal, err := c.GoalService.CompleteGoal(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goal)
}

// @Summary Generate smart milestones
// @Description Replaces the goal's milestones with a generated quarterly schedule
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Param id path int true "goal id"
// @Success 201 {object} util.Response
// @Router /api/workspaces/{workspaceId}/goals/{id}/milestones/generate [post]
func (c *GoalController) GenerateMilestones(ctx *gin.Context) {
	milestones, err := c.GoalService.CreateSmartMilestones(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, milestones)
}

func (c *GoalController) ListMilestones(ctx *gin.Context) {
	milestones, err := c.GoalService.ListMilestones(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, milestones)
}

func (c *GoalController) ListContributions(ctx *gin.Context) {
	contributions, err := c.GoalService.ListContributions(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, contributions)
}

// @Summary Generate insights for a goal
// @Description Evaluates progress against deadline and contribution pace, persisting any findings
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Param id path int true "goal id"
// @Success 200 {object} util.Response
// @Router /api/workspaces/{workspaceId}/goals/{id}/insights [post]
func (c *GoalController) GenerateInsights(ctx *gin.Context) {
	insights, err := c.GoalService.GenerateGoalInsights(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if insights == nil {
		insights = []model.GoalInsight{}
	}
	util.Success(ctx, insights)
}

// @Summary List workspace insights
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Param limit query int false "max results"
// @Success 200 {object} util.Response
// @Router /api/workspaces/{workspaceId}/insights [get]
func (c *GoalController) ListInsights(ctx *gin.Context) {
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "50")))
	insights, err := c.GoalService.ListInsights(ctx.GetUint("workspaceId"), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, insights)
}

// @Summary Suggest new goals
// @Description Proposes goals from trailing spending and income aggregates
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Success 200 {object} util.Response
// @Router /api/workspaces/{workspaceId}/goals/suggestions [get]
func (c *GoalController) Suggestions(ctx *gin.Context) {
	suggestions, err := c.GoalService.GenerateGoalSuggestions(ctx.Request.Context(), ctx.GetUint("workspaceId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if suggestions == nil {
		suggestions = []service.GoalSuggestion{}
	}
	util.Success(ctx, suggestions)
}

// @Summary Financial health score
// @Description Weighted goal coverage across emergency, debt, savings, and investment pillars
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Success 200 {object} util.Response
// @Router /api/workspaces/{workspaceId}/goals/health [get]
func (c *GoalController) Health(ctx *gin.Context) {
	report, err := c.GoalService.CalculateGoalImpactOnFinancialHealth(ctx.GetUint("workspaceId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
