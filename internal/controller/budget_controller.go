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

type BudgetController struct {
	BudgetService *service.BudgetService
}

func NewBudgetController(budgetService *service.BudgetService) *BudgetController {
	return &BudgetController{BudgetService: budgetService}
}

type BudgetRequest struct {
	CategoryID uint               `json:"categoryId" binding:"required"`
	Amount     decimal.Decimal    `json:"amount" binding:"required"`
	Period     model.BudgetPeriod `json:"period"`
	StartDate  time.Time          `json:"startDate"`
}

func (c *BudgetController) Create(ctx *gin.Context) {
	var req BudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	budget := &model.Budget{
		WorkspaceID: ctx.GetUint("workspaceId"),
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Period:      req.Period,
		StartDate:   req.StartDate,
	}
	if err := c.BudgetService.Create(budget); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, budget)
}

func (c *BudgetController) List(ctx *gin.Context) {
	budgets, err := c.BudgetService.List(ctx.GetUint("workspaceId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, budgets)
}

func (c *BudgetController) Update(ctx *gin.Context) {
	var req BudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	budget, err := c.BudgetService.Update(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"), &model.Budget{
		Amount:    req.Amount,
		Period:    req.Period,
		StartDate: req.StartDate,
	})
	if err != nil {
		if errors.Is(err, util.ErrBudgetNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, budget)
}

func (c *BudgetController) Delete(ctx *gin.Context) {
	err := c.BudgetService.Delete(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrBudgetNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
