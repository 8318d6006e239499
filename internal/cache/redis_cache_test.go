package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "whois:example.com", Key("example.com"))
}

func TestNewRedisWhoisCacheRejectsBadURL(t *testing.T) {
	_, err := NewRedisWhoisCache(context.Background(), "not-a-redis-url", time.Hour)
	assert.ErrorContains(t, err, "parse redis url")
}

// 連不上 Redis 時讀取視為 miss，寫入只記錄 log
func TestUnreachableRedisIsMiss(t *testing.T) {
	c := &RedisWhoisCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 100 * time.Millisecond,
			MaxRetries:  -1,
		}),
		ttl: time.Minute,
	}
	defer c.Close()

	ctx := context.Background()
	assert.NotPanics(t, func() {
		c.Set(ctx, domain.WhoisRecord{Domain: "example.com", Success: true})
	})

	_, ok := c.Get(ctx, "example.com")
	assert.False(t, ok)
}
