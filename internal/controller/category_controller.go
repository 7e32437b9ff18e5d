package controller

import (
	"errors"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/service"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

type CategoryRequest struct {
	Name string             `json:"name" binding:"required"`
	Type model.CategoryType `json:"type" binding:"required,oneof=income expense"`
	Icon string             `json:"icon"`
}

func (c *CategoryController) Create(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category := &model.Category{
		WorkspaceID: ctx.GetUint("workspaceId"),
		Name:        req.Name,
		Type:        req.Type,
		Icon:        req.Icon,
	}
	if err := c.CategoryService.Create(category); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.CategoryService.List(ctx.GetUint("workspaceId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

func (c *CategoryController) Update(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Update(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"), &model.Category{
		Name: req.Name,
		Type: req.Type,
		Icon: req.Icon,
	})
	if err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

func (c *CategoryController) Delete(ctx *gin.Context) {
	err := c.CategoryService.Delete(util.MustParseUint(ctx.Param("id")), ctx.GetUint("workspaceId"))
	if err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
