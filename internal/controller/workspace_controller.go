package controller

import (
	"errors"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/service"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type WorkspaceController struct {
	WorkspaceService *service.WorkspaceService
}

func NewWorkspaceController(workspaceService *service.WorkspaceService) *WorkspaceController {
	return &WorkspaceController{WorkspaceService: workspaceService}
}

type CreateWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

type InviteMemberRequest struct {
	Email string           `json:"email" binding:"required,email"`
	Role  model.MemberRole `json:"role" binding:"required,oneof=owner editor viewer"`
}

// @Summary Create a shared workspace
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateWorkspaceRequest true "workspace"
// @Success 201 {object} util.Response
// @Router /api/workspaces [post]
func (c *WorkspaceController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateWorkspaceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	workspace, err := c.WorkspaceService.Create(req.Name, user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, workspace)
}

// @Summary List the caller's workspaces
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/workspaces [get]
func (c *WorkspaceController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	workspaces, err := c.WorkspaceService.ListForUser(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, workspaces)
}

// @Summary List workspace members
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Success 200 {object} util.Response
// @Router /api/workspaces/{workspaceId}/members [get]
func (c *WorkspaceController) Members(ctx *gin.Context) {
	members, err := c.WorkspaceService.Members(ctx.GetUint("workspaceId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, members)
}

// @Summary Invite a member
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path int true "workspace id"
// @Param body body InviteMemberRequest true "invitation"
// @Success 201 {object} util.Response
// @Router /api/workspaces/{workspaceId}/members [post]
func (c *WorkspaceController) Invite(ctx *gin.Context) {
	var req InviteMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	member, err := c.WorkspaceService.Invite(ctx.GetUint("workspaceId"), req.Email, req.Role)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, member)
}
