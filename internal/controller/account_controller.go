package controller

import (
	"errors"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/service"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AccountController struct {
	AccountService *service.AccountService
}

func NewAccountController(accountService *service.AccountService) *AccountController {
	return &AccountController{AccountService: accountService}
}

type AccountRequest struct {
	Name     string            `json:"name" binding:"required"`
	Type     model.AccountType `json:"type" binding:"required"`
	Currency string            `json:"currency"`
	Balance  decimal.Decimal   `json:"balance"`
}

// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Param body body AccountRequest true "account"
// @Success 201 {object} util.Response
// @Router /api/workspaces/{workspaceId}/accounts [post]
func (c *AccountController) Create(ctx *gin.Context) {
	var req AccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	account := &model.Account{
		WorkspaceID: ctx.GetUint("workspaceId"),
		Name:        req.Name,
		Type:        req.Type,
		Currency:    req.Currency,
		Balance:     req.Balance,
	}
	if err := c.AccountService.Create(account); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, account)
}

// @Summary List accounts
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Success 200 {object} util.Response
// @Router /api/workspaces/{workspaceId}/accounts [get]
func (c *AccountController) List(ctx *gin.Context) {
	accounts, err := c.AccountService.List(ctx.GetUint("workspaceId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, accounts)
}

func (c *AccountController) Update(ctx *gin.Context) {
	var req AccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	account, err := c.AccountService.Update(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"), &model.Account{
		Name:     req.Name,
		Type:     req.Type,
		Currency: req.Currency,
	})
	if err != nil {
		if errors.Is(err, util.ErrAccountNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, account)
}

func (c *AccountController) Delete(ctx *gin.Context) {
	err := c.AccountService.Delete(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrAccountNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
