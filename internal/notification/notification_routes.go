package notification

import (
	"iakwe-hr/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, logger *zap.Logger) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	notifications.Use(middleware.ContextLogger(logger))
	notifications.Use(middleware.RBACAuthorize(rbacService, "notification", "read"))
	{
		notifications.GET("", handler.GetMine)
		notifications.POST("/:id/read", handler.MarkRead)
	}
}
