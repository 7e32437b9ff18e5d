package middleware

import (
	"strings"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/config"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/service"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		cfg := c.MustGet("config").(*config.Config)
		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// WorkspaceMiddleware resolves the :workspaceId route param, verifies the
// caller is a member, and blocks viewers from mutating requests. The
// membership is stored under "member" for downstream handlers.
func WorkspaceMiddleware(workspaces *service.WorkspaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		workspaceID := util.MustParseUint(c.Param("workspaceId"))
		if workspaceID == 0 {
			util.BadRequest(c, "invalid workspace id")
			c.Abort()
			return
		}

		member, err := workspaces.Membership(workspaceID, user.UserID)
		if err != nil {
			util.Forbidden(c)
			c.Abort()
			return
		}

		if member.Role == model.RoleViewer && c.Request.Method != "GET" {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Set("member", member)
		c.Set("workspaceId", workspaceID)
		c.Next()
	}
}

// OwnerOnly restricts a route to the workspace owner. Must run after
// WorkspaceMiddleware.
func OwnerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		member, ok := c.MustGet("member").(*model.WorkspaceMember)
		if !ok || member.Role != model.RoleOwner {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
