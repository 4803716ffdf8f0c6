package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sourabh020820033/learning-path/internal/application/service"
	"github.com/sourabh020820033/learning-path/internal/config"
	"github.com/sourabh020820033/learning-path/internal/domain/analysis"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

func NewRedisClient(ctx context.Context, cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.", zap.String("addr", cfg.Redis.Addr))
	return rdb, nil
}

type redisResultCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisResultCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) service.ResultCache {
	return &redisResultCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *redisResultCache) Get(ctx context.Context, key string) (*analysis.Result, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var res analysis.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		c.logger.Warn("Dropping undecodable cached result", zap.String("key", key), zap.Error(err))
		c.rdb.Del(ctx, key)
		return nil, nil
	}
	return &res, nil
}

func (c *redisResultCache) Set(ctx context.Context, key string, res *analysis.Result) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
