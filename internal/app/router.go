package app

import (
	"github.com/Rndynt/WealthWiseApp-sub001/docs"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/middleware"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", func(ctx *gin.Context) {
		sqlDB, err := a.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx.Request.Context())
		}
		if err != nil {
			ctx.JSON(503, gin.H{"status": "degraded", "database": "down"})
			return
		}
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", c.auth.Register)
		auth.POST("/login", c.auth.Login)
		auth.GET("/me", middleware.AuthMiddleware(), c.auth.Me)
	}

	authorized := api.Group("")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.POST("/workspaces", c.workspace.Create)
		authorized.GET("/workspaces", c.workspace.List)
	}

	workspace := api.Group("/workspaces/:workspaceId")
	workspace.Use(middleware.AuthMiddleware(), middleware.WorkspaceMiddleware(s.workspace))
	{
		workspace.GET("/members", c.workspace.Members)
		workspace.POST("/members", middleware.OwnerOnly(), c.workspace.Invite)

		workspace.GET("/dashboard", c.dashboard.Summary)

		workspace.POST("/accounts", c.account.Create)
		workspace.GET("/accounts", c.account.List)
		workspace.PUT("/accounts/:id", c.account.Update)
		workspace.DELETE("/accounts/:id", c.account.Delete)

		workspace.POST("/categories", c.category.Create)
		workspace.GET("/categories", c.category.List)
		workspace.PUT("/categories/:id", c.category.Update)
		workspace.DELETE("/categories/:id", c.category.Delete)

		workspace.POST("/transactions", c.transaction.Create)
		workspace.GET("/transactions", c.transaction.List)
		workspace.GET("/transactions/:id", c.transaction.Get)
		workspace.PUT("/transactions/:id", c.transaction.Update)
		workspace.DELETE("/transactions/:id", c.transaction.Delete)
		workspace.POST("/transactions/:id/receipt", c.transaction.UploadReceipt)

		workspace.POST("/debts", c.debt.Create)
		workspace.GET("/debts", c.debt.List)
		workspace.GET("/debts/:id", c.debt.Get)
		workspace.PUT("/debts/:id", c.debt.Update)
		workspace.DELETE("/debts/:id", c.debt.Delete)

		workspace.POST("/budgets", c.budget.Create)
		workspace.GET("/budgets", c.budget.List)
		workspace.PUT("/budgets/:id", c.budget.Update)
		workspace.DELETE("/budgets/:id", c.budget.Delete)

		workspace.POST("/goals", c.goal.Create)
		workspace.GET("/goals", c.goal.List)
		workspace.GET("/goals/suggestions", c.goal.Suggestions)
		workspace.GET("/goals/health", c.goal.Health)
		workspace.GET("/goals/:id", c.goal.Get)
		workspace.PUT("/goals/:id", c.goal.Update)
		workspace.DELETE("/goals/:id", c.goal.Delete)
		workspace.POST("/goals/:id/progress", c.goal.AddProgress)
		workspace.POST("/goals/:id/recompute", c.goal.Recompute)
		workspace.POST("/goals/:id/complete", c.goal.Complete)
		workspace.GET("/goals/:id/milestones", c.goal.ListMilestones)
		workspace.POST("/goals/:id/milestones/generate", c.goal.GenerateMilestones)
		workspace.GET("/goals/:id/contributions", c.goal.ListContributions)
		workspace.POST("/goals/:id/insights", c.goal.GenerateInsights)
		workspace.GET("/insights", c.goal.ListInsights)

		workspace.GET("/notifications", c.notification.List)
		workspace.PATCH("/notifications/:id/read", c.notification.MarkRead)
		workspace.PATCH("/notifications/read-all", c.notification.MarkAllRead)
	}
}
