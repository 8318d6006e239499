package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics WHOIS 查詢、排程與通知的觀測指標
// 所有方法對 nil receiver 安全，測試可直接傳 nil
type Metrics struct {
	WhoisLookups     *prometheus.CounterVec
	WhoisLatency     *prometheus.HistogramVec
	SchedulerRuns    *prometheus.CounterVec
	BatchDomains     *prometheus.GaugeVec
	TelegramDispatch *prometheus.CounterVec
	CacheResults     *prometheus.CounterVec
}

// New 註冊到指定的 Registerer (main 用 DefaultRegisterer，測試用獨立 registry)
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		WhoisLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_autocheck_whois_lookups_total",
			Help: "WHOIS lookups by provider and outcome",
		}, []string{"provider", "outcome"}), // outcome: "success", "failure"

		WhoisLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "domain_autocheck_whois_lookup_duration_seconds",
			Help:    "Duration of WHOIS lookups by provider",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}, []string{"provider"}),

		SchedulerRuns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_autocheck_scheduler_runs_total",
			Help: "Scheduled expiry checks by outcome",
		}, []string{"outcome"}), // "notified", "nothing_due", "disabled", "swallowed"

		BatchDomains: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "domain_autocheck_batch_domains",
			Help: "Domains in the last notification batch by bucket",
		}, []string{"bucket"}),

		TelegramDispatch: f.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_autocheck_telegram_dispatch_total",
			Help: "Telegram sendMessage calls by outcome",
		}, []string{"outcome"}),

		CacheResults: f.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_autocheck_whois_cache_total",
			Help: "WHOIS cache lookups by result",
		}, []string{"result"}), // "hit", "miss"
	}
}

func (m *Metrics) ObserveWhois(provider string, success bool, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.WhoisLookups.WithLabelValues(provider, outcome).Inc()
	m.WhoisLatency.WithLabelValues(provider).Observe(d.Seconds())
}

func (m *Metrics) IncSchedulerRun(outcome string) {
	if m != nil {
		m.SchedulerRuns.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) SetBatchSize(expiring, expired int) {
	if m != nil {
		m.BatchDomains.WithLabelValues("expiring").Set(float64(expiring))
		m.BatchDomains.WithLabelValues("expired").Set(float64(expired))
	}
}

func (m *Metrics) IncDispatch(success bool) {
	if m == nil {
		return
	}
	if success {
		m.TelegramDispatch.WithLabelValues("success").Inc()
	} else {
		m.TelegramDispatch.WithLabelValues("failure").Inc()
	}
}

func (m *Metrics) IncCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheResults.WithLabelValues("hit").Inc()
	} else {
		m.CacheResults.WithLabelValues("miss").Inc()
	}
}
