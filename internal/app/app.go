package app

import (
	"iakwe-hr/internal/config"
	"iakwe-hr/internal/middleware"
	"iakwe-hr/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure and mounts every module on router. The
// returned cleanup closes the connections it opened.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	var rdb *redis.Client
	rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		// Lists fall back to the database alone; idempotency and the options
		// cache are skipped while redis is down.
		logger.Warn("redis unavailable, continuing without cache", zap.Error(err))
		rdb = nil
	} else {
		logger.Info("redis connection established")
	}

	middleware.SetJWTSecret(cfg.JWT.Secret)
	router.Use(middleware.RequestID())

	if err := registerModules(router, sqlDB, gormDB, rdb, cfg); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = sqlDB.Close()
	}, nil
}
