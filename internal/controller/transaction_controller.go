package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/service"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionController struct {
	TransactionService *service.TransactionService
	StorageService     *service.StorageService
}

func NewTransactionController(transactionService *service.TransactionService, storageService *service.StorageService) *TransactionController {
	return &TransactionController{
		TransactionService: transactionService,
		StorageService:     storageService,
	}
}

type TransactionRequest struct {
	AccountID   uint                  `json:"accountId" binding:"required"`
	CategoryID  *uint                 `json:"categoryId"`
	DebtID      *uint                 `json:"debtId"`
	Type        model.TransactionType `json:"type" binding:"required,oneof=income expense saving transfer repayment debt"`
	Amount      decimal.Decimal       `json:"amount" binding:"required"`
	Description string                `json:"description"`
	Date        time.Time             `json:"date"`
}

// @Summary Record a transaction
// @Description Persists the transaction, adjusts balances, and runs goal auto-tracking. The response includes which goals the transaction was tracked against.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Param body body TransactionRequest true "transaction"
// @Success 201 {object} util.Response
// @Router /api/workspaces/{workspaceId}/transactions [post]
func (c *TransactionController) Create(ctx *gin.Context) {
	var req TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tx := &model.Transaction{
		WorkspaceID: ctx.GetUint("workspaceId"),
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		DebtID:      req.DebtID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}

	tracked, err := c.TransactionService.Create(ctx.Request.Context(), tx)
	if err != nil {
		if errors.Is(err, util.ErrInvalidAmount) || errors.Is(err, util.ErrAccountNotFound) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"transaction": tx, "goalTracking": tracked})
}

// @Summary List transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Param type query string false "transaction type"
// @Param categoryId query int false "category filter"
// @Param accountId query int false "account filter"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/workspaces/{workspaceId}/transactions [get]
func (c *TransactionController) List(ctx *gin.Context) {
	filter := repository.TransactionFilter{
		Type: model.TransactionType(ctx.Query("type")),
	}
	if v := ctx.Query("categoryId"); v != "" {
		filter.CategoryID = util.MustParseUint(v)
	}
	if v := ctx.Query("accountId"); v != "" {
		filter.AccountID = util.MustParseUint(v)
	}
	if v := ctx.Query("from"); v != "" {
		if t, err := time.Parse(util.DateFormat, v); err == nil {
			filter.From = &t
		}
	}
	if v := ctx.Query("to"); v != "" {
		if t, err := time.Parse(util.DateFormat, v); err == nil {
			filter.To = &t
		}
	}

	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))

	transactions, total, err := c.TransactionService.List(ctx.GetUint("workspaceId"), filter, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: transactions, Total: total, Page: page, Limit: limit})
}

func (c *TransactionController) Get(ctx *gin.Context) {
	tx, err := c.TransactionService.Get(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrTransactionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tx)
}

func (c *TransactionController) Update(ctx *gin.Context) {
	var req TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tx, err := c.TransactionService.Update(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"), &model.Transaction{
		Amount:      req.Amount,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Date:        req.Date,
	})
	if err != nil {
		if errors.Is(err, util.ErrTransactionNotFound) {
			util.NotFound(ctx)
			return
		}
		if errors.Is(err, util.ErrInvalidAmount) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tx)
}

func (c *TransactionController) Delete(ctx *gin.Context) {
	err := c.TransactionService.Delete(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrTransactionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Upload a receipt
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Param id path int true "transaction id"
// @Param file formData file true "receipt image or PDF"
// @Success 200 {object} util.Response
// @Router /api/workspaces/{workspaceId}/transactions/{id}/receipt [post]
func (c *TransactionController) UploadReceipt(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	allowed := false
	for _, candidate := range util.AllowedReceiptExtensions {
		if ext == candidate {
			allowed = true
			break
		}
	}
	if !allowed {
		util.BadRequest(ctx, "unsupported file type")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("receipts/%s%s", uuid.NewString(), ext)
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, fileHeader.Size,
		fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	tx, err := c.TransactionService.AttachReceipt(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"), url)
	if err != nil {
		if errors.Is(err, util.ErrTransactionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tx)
}
