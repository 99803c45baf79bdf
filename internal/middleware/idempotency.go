package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"iakwe-hr/internal/session"
	"iakwe-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

// storedResult is what a completed idempotent request leaves behind.
type storedResult struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Idempotency replays the stored result of a POST carrying an
// Idempotency-Key and rejects concurrent duplicates while the first is running.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")

	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString(session.KeyUserID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var stored storedResult
			if jsonErr := json.Unmarshal([]byte(val), &stored); jsonErr != nil || stored.Status == 0 || len(stored.Data) == 0 {
				stored = storedResult{Status: http.StatusOK, Data: json.RawMessage(val)}
			}
			log.Debug("idempotent replay", zap.String("key", cacheKey), zap.Int("status", stored.Status))
			response.Success(c, stored.Status, stored.Data, nil)
			c.Abort()
			return
		}

		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock unavailable, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "The same request is still being processed", nil)
			c.Abort()
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}

// ReleaseIdempotency stores result and the status already written under the
// request's idempotency key (when non-nil) and drops the in-flight lock.
// Handlers defer it around creation.
func ReleaseIdempotency(c *gin.Context, rdb *redis.Client, result any) {
	if rdb == nil {
		return
	}
	ctx := context.WithoutCancel(c.Request.Context())

	if result != nil {
		if ck := c.GetString(IdempotencyCacheKey); ck != "" {
			if data, err := json.Marshal(result); err == nil {
				payload, _ := json.Marshal(storedResult{Status: c.Writer.Status(), Data: data})
				_ = rdb.Set(ctx, ck, string(payload), idempotencyResultTTL).Err()
			}
		}
	}
	if lk := c.GetString(IdempotencyLockKey); lk != "" {
		_ = rdb.Del(ctx, lk).Err()
	}
}
