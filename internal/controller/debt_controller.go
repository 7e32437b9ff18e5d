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

type DebtController struct {
	DebtService *service.DebtService
}

func NewDebtController(debtService *service.DebtService) *DebtController {
	return &DebtController{DebtService: debtService}
}

type DebtRequest struct {
	Name           string          `json:"name" binding:"required"`
	Type           string          `json:"type"`
	TotalAmount    decimal.Decimal `json:"totalAmount" binding:"required"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	DueDate        *time.Time      `json:"dueDate"`
}

// @Summary Create a debt
// @Tags debts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Param body body DebtRequest true "debt"
// @Success 201 {object} util.Response
// @Router /api/workspaces/{workspaceId}/debts [post]
func (c *DebtController) Create(ctx *gin.Context) {
	var req DebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	debt := &model.Debt{
		WorkspaceID:    ctx.GetUint("workspaceId"),
		Name:           req.Name,
		Type:           req.Type,
		TotalAmount:    req.TotalAmount,
		InterestRate:   req.InterestRate,
		MonthlyPayment: req.MonthlyPayment,
		DueDate:        req.DueDate,
	}
	if err := c.DebtService.Create(debt); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, debt)
}

func (c *DebtController) List(ctx *gin.Context) {
	debts, err := c.DebtService.List(ctx.GetUint("workspaceId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, debts)
}

func (c *DebtController) Get(ctx *gin.Context) {
	debt, err := c.DebtService.Get(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrDebtNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, debt)
}

func (c *DebtController) Update(ctx *gin.Context) {
	var req DebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	debt, err := c.DebtService.Update(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"), &model.Debt{
		Name:           req.Name,
		InterestRate:   req.InterestRate,
		MonthlyPayment: req.MonthlyPayment,
		DueDate:        req.DueDate,
	})
	if err != nil {
		if errors.Is(err, util.ErrDebtNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, debt)
}

func (c *DebtController) Delete(ctx *gin.Context) {
	err := c.DebtService.Delete(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrDebtNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
