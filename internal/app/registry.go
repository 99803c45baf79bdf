package app

import (
	"database/sql"

	"iakwe-hr/internal/bootstrap"
	"iakwe-hr/internal/config"
	"iakwe-hr/internal/employee"
	"iakwe-hr/internal/leave"
	"iakwe-hr/internal/messaging/kafka"
	"iakwe-hr/internal/middleware"
	"iakwe-hr/internal/notification"
	"iakwe-hr/internal/rbac"
	"iakwe-hr/internal/session"
	"iakwe-hr/internal/shared/counter"
	"iakwe-hr/internal/shared/entitystore"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) error {
	logger := zap.L()

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, counterRepo, rdb, logger)
	leaveService := leave.NewService(db, leaveRepo, leave.Dependencies{
		Counter:   counterRepo,
		Outbox:    outboxRepo,
		Policy:    leave.NewPolicy(rbacService),
		Snapshots: entitystore.NewSnapshotCache(rdb, cfg.Leave.ListCacheTTL),
		Audit:     bootstrap.NewStdoutAuditLogger(logger),
	}, logger)
	notificationService := notification.NewService(notificationRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, rdb, logger)
	notificationHandler := notification.NewHandler(notificationService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	sessionHandler := session.NewHandler()

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		session.RegisterRoutes(api, sessionHandler, middleware.AuthMiddleware())
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb, logger)
		notification.RegisterRoutes(api, notificationHandler, rbacService, logger)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
