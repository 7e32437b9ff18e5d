package controller

import (
	"github.com/Rndynt/WealthWiseApp-sub001/internal/service"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

func (c *NotificationController) List(ctx *gin.Context) {
	unreadOnly := ctx.Query("unread") == "true"
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "50")))

	notifications, err := c.NotificationService.List(ctx.GetUint("workspaceId"), unreadOnly, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, notifications)
}

func (c *NotificationController) MarkRead(ctx *gin.Context) {
	if err := c.NotificationService.MarkRead(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	if err := c.NotificationService.MarkAllRead(ctx.GetUint("workspaceId")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
