//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

type RedisCacheSuite struct {
	suite.Suite

	container *tcredis.RedisContainer
	cache     *RedisWhoisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	url, err := container.ConnectionString(ctx)
	s.Require().NoError(err)

	s.cache, err = NewRedisWhoisCache(ctx, url, time.Minute)
	s.Require().NoError(err)
}

func (s *RedisCacheSuite) TearDownSuite() {
	if s.cache != nil {
		_ = s.cache.Close()
	}
	if s.container != nil {
		_ = testcontainers.TerminateContainer(s.container)
	}
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.cache.rdb.FlushAll(context.Background()).Err())
}

func (s *RedisCacheSuite) TestRoundTrip() {
	ctx := context.Background()
	rec := domain.WhoisRecord{
		Domain:           "example.com",
		Success:          true,
		Registered:       domain.Bool(true),
		RegistrationDate: "2020-01-01",
		ExpiryDate:       "2030-01-01",
		Registrar:        &domain.Registrar{Name: "Acme", URL: "https://acme.test"},
		Nameservers:      []string{"ns1.acme.test", "ns2.acme.test"},
		Status:           []string{"clientTransferProhibited"},
		Raw:              map[string]any{"registrar": "Acme", "age": float64(10)},
		Provider:         "whoisjson",
	}
	s.cache.Set(ctx, rec)

	got, ok := s.cache.Get(ctx, "example.com")
	s.Require().True(ok)
	s.Equal(rec, got)

	ttl, err := s.cache.rdb.TTL(ctx, Key("example.com")).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}

func (s *RedisCacheSuite) TestRawTextSurvives() {
	ctx := context.Background()
	s.cache.Set(ctx, domain.WhoisRecord{Domain: "foo.qzz.io", Success: true, Raw: "Creation Date: 2024-02-01"})

	got, ok := s.cache.Get(ctx, "foo.qzz.io")
	s.Require().True(ok)
	s.Equal("Creation Date: 2024-02-01", got.Raw)
}

func (s *RedisCacheSuite) TestMissingKeyIsMiss() {
	_, ok := s.cache.Get(context.Background(), "absent.com")
	s.False(ok)
}

func (s *RedisCacheSuite) TestCorruptValueIsMiss() {
	ctx := context.Background()
	s.Require().NoError(s.cache.rdb.Set(ctx, Key("bad.com"), "{not json", time.Minute).Err())

	_, ok := s.cache.Get(ctx, "bad.com")
	s.False(ok)
}
