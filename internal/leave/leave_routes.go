package leave

import (
	"iakwe-hr/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	writeLimit := middleware.RateLimitByUser(rate.Limit(2), 10)

	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetAll)
		leaves.GET("/mine", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetMine)
		leaves.GET("/employees/:employee_id", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetByEmployee)
		leaves.GET("/options", handler.Options)
		leaves.POST("/preview", handler.Preview)
		leaves.GET("/export", middleware.RBACAuthorize(rbacService, "leave", "export"), handler.Export)
		leaves.POST("",
			middleware.RBACAuthorize(rbacService, "leave", "create"),
			writeLimit,
			middleware.Idempotency(rdb),
			handler.Create,
		)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetById)
		leaves.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "approve"), writeLimit, handler.Approve)
		leaves.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "leave", "reject"), writeLimit, handler.Reject)
		leaves.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "leave", "create"), writeLimit, handler.Cancel)
		leaves.GET("/:id/comments", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.ListComments)
		leaves.POST("/:id/comments", middleware.RBACAuthorize(rbacService, "leave", "comment"), writeLimit, handler.AddComment)
	}
}
