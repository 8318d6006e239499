package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

const keyPrefix = "whois:"

// RedisWhoisCache 快取成功的 WHOIS 結果，減少上游 API 額度消耗
type RedisWhoisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisWhoisCache(ctx context.Context, redisURL string, ttl time.Duration) (*RedisWhoisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 2 * time.Second
	opts.WriteTimeout = 2 * time.Second

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisWhoisCache{rdb: rdb, ttl: ttl}, nil
}

func Key(name string) string {
	return keyPrefix + name
}

// Get 快取錯誤一律視為 miss
func (c *RedisWhoisCache) Get(ctx context.Context, name string) (domain.WhoisRecord, bool) {
	var rec domain.WhoisRecord
	b, err := c.rdb.Get(ctx, Key(name)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.Warnf("⚠️ [Cache] 讀取 %s 失敗: %v", name, err)
		}
		return rec, false
	}
	if err := json.Unmarshal(b, &rec); err != nil {
		return rec, false
	}
	return rec, true
}

func (c *RedisWhoisCache) Set(ctx context.Context, rec domain.WhoisRecord) {
	b, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, Key(rec.Domain), b, c.ttl).Err(); err != nil {
		logrus.Warnf("⚠️ [Cache] 寫入 %s 失敗: %v", rec.Domain, err)
	}
}

func (c *RedisWhoisCache) Close() error {
	return c.rdb.Close()
}
