package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
	"github.com/jy02739244/Domain-AutoCheck/internal/metrics"
	"github.com/jy02739244/Domain-AutoCheck/internal/whois"
)

const defaultBatchLimit = 5

// WhoisCache 只快取成功的結果
type WhoisCache interface {
	Get(ctx context.Context, name string) (domain.WhoisRecord, bool)
	Set(ctx context.Context, rec domain.WhoisRecord)
}

type inflightLookup struct {
	id     uint64
	name   string
	cancel context.CancelFunc
}

// WhoisService 使用者發起的 WHOIS 查詢
// 同一個 client 查詢新的域名時，會取消尚未完成的舊查詢
type WhoisService struct {
	Router     *whois.Router
	Cache      WhoisCache
	Metrics    *metrics.Metrics
	BatchLimit int

	mu       sync.Mutex
	seq      uint64
	inflight map[string]*inflightLookup
}

func NewWhoisService(router *whois.Router, cache WhoisCache, m *metrics.Metrics, batchLimit int) *WhoisService {
	if batchLimit <= 0 {
		batchLimit = defaultBatchLimit
	}
	return &WhoisService{
		Router:     router,
		Cache:      cache,
		Metrics:    m,
		BatchLimit: batchLimit,
		inflight:   make(map[string]*inflightLookup),
	}
}

// Lookup 只有輸入驗證失敗會回傳 error；上游失敗放在 record.Error
func (s *WhoisService) Lookup(ctx context.Context, name string) (domain.WhoisRecord, error) {
	name, provider, err := s.Router.Route(name)
	if err != nil {
		return domain.WhoisRecord{}, err
	}

	if s.Cache != nil {
		if rec, ok := s.Cache.Get(ctx, name); ok {
			s.Metrics.IncCache(true)
			return rec, nil
		}
		s.Metrics.IncCache(false)
	}

	start := time.Now()
	rec := provider.Resolve(ctx, name)
	s.Metrics.ObserveWhois(provider.Name(), rec.Success, time.Since(start))

	if !rec.Success {
		logrus.Warnf("⚠️ [Whois] %s 查詢失敗 (%s): %s", name, provider.Name(), rec.Error)
		return rec, nil
	}
	if s.Cache != nil {
		s.Cache.Set(ctx, rec)
	}
	return rec, nil
}

// LookupFor 以 clientKey 追蹤進行中的查詢，新域名會取代舊查詢
func (s *WhoisService) LookupFor(ctx context.Context, clientKey, name string) (domain.WhoisRecord, error) {
	if clientKey == "" {
		return s.Lookup(ctx, name)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	id := s.begin(clientKey, name, cancel)
	defer s.finish(clientKey, id)

	return s.Lookup(ctx, name)
}

// Cancel 取消 clientKey 目前的查詢
func (s *WhoisService) Cancel(clientKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.inflight[clientKey]
	if !ok {
		return false
	}
	cur.cancel()
	delete(s.inflight, clientKey)
	return true
}

func (s *WhoisService) begin(clientKey, name string, cancel context.CancelFunc) uint64 {
	name = strings.ToLower(strings.TrimSpace(name))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	if prev, ok := s.inflight[clientKey]; ok && prev.name != name {
		logrus.Debugf("[Whois] %s 的查詢 %s 被 %s 取代", clientKey, prev.name, name)
		prev.cancel()
	}
	s.inflight[clientKey] = &inflightLookup{id: s.seq, name: name, cancel: cancel}
	return s.seq
}

func (s *WhoisService) finish(clientKey string, id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.inflight[clientKey]; ok && cur.id == id {
		delete(s.inflight, clientKey)
	}
}

// LookupMany 並行查詢多個域名，結果順序與輸入相同
// 驗證失敗的域名以 Success=false 表示
func (s *WhoisService) LookupMany(ctx context.Context, names []string) []domain.WhoisRecord {
	results := make([]domain.WhoisRecord, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.BatchLimit)
	for i, name := range names {
		g.Go(func() error {
			rec, err := s.Lookup(gctx, name)
			if err != nil {
				rec = domain.FailedWhois(name, "", err)
			}
			results[i] = rec
			return nil
		})
	}
	_ = g.Wait()
	return results
}
