package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync/atomic"
	"time"

	"github.com/waruna834/skills-project-manager/internal/config"
	"github.com/waruna834/skills-project-manager/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultTTL = 600 * time.Second

// Redis is a JSON cache that degrades to a no-op when the server is not
// configured or unreachable. Read and write failures are returned but never
// required for correctness.
type Redis struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, ttl time.Duration, l *zap.Logger) *Redis {
	l = logger.OrNop(l)
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if !cfg.Enabled() {
		l.Info("cache disabled", zap.String("reason", "REDIS_HOST not set"))
		return &Redis{logger: l, ttl: ttl}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		l.Warn("redis unavailable, bypassing cache", zap.Error(err))
		_ = client.Close()
		return &Redis{logger: l, ttl: ttl}
	}

	return NewRedisFromClient(client, ttl, l)
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *redis.Client, ttl time.Duration, l *zap.Logger) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Redis{client: client, logger: logger.OrNop(l), ttl: ttl}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warn("redis unavailable, bypassing cache", zap.Error(err))
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value under key; ttl <= 0 uses the configured default.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.isUnavailable() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}
