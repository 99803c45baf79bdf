package rbac

import (
	"iakwe-hr/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/check", handler.Check)
		group.GET("/permissions", handler.Permissions)
	}
}
