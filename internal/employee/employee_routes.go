package employee

import (
	"iakwe-hr/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	readLimit := middleware.RateLimitByUser(rate.Limit(3), 10)
	// the leave form loads options on every open
	optionsLimit := middleware.RateLimitByUser(rate.Limit(5), 20)
	writeLimit := middleware.RateLimitByUser(rate.Limit(0.5), 2)
	can := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, "employee", action)
	}

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(), middleware.ContextLogger(logger))
	{
		employees.GET("", readLimit, can("read"), handler.GetAll)
		employees.GET("/options", optionsLimit, can("read"), handler.GetOptions)
		employees.GET("/:id", readLimit, can("read"), handler.GetById)
		employees.POST("", writeLimit, can("create"), handler.Create)
		employees.PUT("/:id", writeLimit, can("update"), handler.Update)
		employees.DELETE("/:id", writeLimit, can("delete"), handler.Delete)
	}
}
