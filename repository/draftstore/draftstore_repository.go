package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	redisclient "github.com/openmarket/listing-service/cmd/redis"
	"github.com/openmarket/listing-service/model"
	"github.com/openmarket/listing-service/utils/logger"
)

// KV is the durable key-value port the adapter persists snapshots through.
// Get returns "" with a nil error for a missing key.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

type redisKV struct{}

// NewRedisKV returns the redis-backed KV implementation. All operations
// degrade to no-ops when the client was never initialized.
func NewRedisKV() KV {
	return &redisKV{}
}

func (r *redisKV) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

func (r *redisKV) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

func (r *redisKV) Exists(ctx context.Context, key string) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return false, nil
	}
	n, err := client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Adapter persists one draft's snapshot under its caller-supplied key.
// An absent key turns every operation into a no-op returning false/nil, and
// storage failures never propagate as errors — a draft that could not be
// saved degrades silently, it does not interrupt editing.
type Adapter struct {
	kv  KV
	key string
	ttl time.Duration
}

func NewAdapter(kv KV, key string, ttl time.Duration) *Adapter {
	return &Adapter{kv: kv, key: key, ttl: ttl}
}

// Save serializes the snapshot into the durable slot. Returns false when
// the key is absent or the write failed.
func (a *Adapter) Save(ctx context.Context, snap *model.DraftSnapshot) bool {
	if a.key == "" || snap == nil {
		return false
	}
	body, err := json.Marshal(snap)
	if err != nil {
		logger.Error("[DraftSave] marshal snapshot", zap.String("key", a.key), zap.String("error", err.Error()))
		return false
	}
	if err := a.kv.Set(ctx, a.key, string(body), a.ttl); err != nil {
		logger.Error("[DraftSave] write snapshot", zap.String("key", a.key), zap.String("error", err.Error()))
		return false
	}
	return true
}

// Load returns the saved snapshot, or nil when none exists or it cannot be
// decoded (a corrupt slot counts as no saved draft).
func (a *Adapter) Load(ctx context.Context) *model.DraftSnapshot {
	if a.key == "" {
		return nil
	}
	raw, err := a.kv.Get(ctx, a.key)
	if err != nil {
		logger.Error("[DraftLoad] read snapshot", zap.String("key", a.key), zap.String("error", err.Error()))
		return nil
	}
	if raw == "" {
		return nil
	}
	var snap model.DraftSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		logger.Error("[DraftLoad] decode snapshot", zap.String("key", a.key), zap.String("error", err.Error()))
		return nil
	}
	return &snap
}

func (a *Adapter) Clear(ctx context.Context) {
	if a.key == "" {
		return
	}
	if err := a.kv.Delete(ctx, a.key); err != nil {
		logger.Error("[DraftClear] delete snapshot", zap.String("key", a.key), zap.String("error", err.Error()))
	}
}

func (a *Adapter) Exists(ctx context.Context) bool {
	if a.key == "" {
		return false
	}
	ok, err := a.kv.Exists(ctx, a.key)
	if err != nil {
		logger.Error("[DraftExists] check snapshot", zap.String("key", a.key), zap.String("error", err.Error()))
		return false
	}
	return ok
}
