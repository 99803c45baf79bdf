package entitystore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type snapshotEnvelope struct {
	SavedAt time.Time       `json:"saved_at"`
	Data    json.RawMessage `json:"data"`
}

// SnapshotCache keeps the last successful list result per key in redis so a
// read can still be served, flagged as degraded, while the database is down.
// A nil client turns every call into a no-op.
type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SnapshotCache{rdb: rdb, ttl: ttl}
}

func (c *SnapshotCache) Save(ctx context.Context, key string, v any) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(snapshotEnvelope{SavedAt: time.Now().UTC(), Data: data})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, string(payload), c.ttl).Err()
}

// Load decodes the snapshot into v. found is false when nothing is cached.
func (c *SnapshotCache) Load(ctx context.Context, key string, v any) (savedAt time.Time, found bool, err error) {
	if c == nil || c.rdb == nil {
		return time.Time{}, false, nil
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}

	var env snapshotEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return time.Time{}, false, err
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return time.Time{}, false, err
	}
	return env.SavedAt, true, nil
}

func (c *SnapshotCache) Invalidate(ctx context.Context, keys ...string) error {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
