package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
	"github.com/jy02739244/Domain-AutoCheck/internal/metrics"
	"github.com/jy02739244/Domain-AutoCheck/internal/repository"
)

const expiryCheckJob = "expiry-check"

// 排程結果
const (
	OutcomeNotified   = "notified"
	OutcomeNothingDue = "nothing_due"
	OutcomeDisabled   = "disabled"
	OutcomeSwallowed  = "swallowed"
)

// RunReport 排程執行摘要
// Outcome=swallowed 代表有錯誤但刻意不往上拋，下一次排程照常執行
type RunReport struct {
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`
	Checked   int       `json:"checked"`
	Expiring  int       `json:"expiring"`
	Expired   int       `json:"expired"`
	Outcome   string    `json:"outcome"`
	Error     string    `json:"error,omitempty"`
}

type CronService struct {
	Cron     *cron.Cron
	Repo     repository.DomainRepository
	Notifier *NotifierService
	Metrics  *metrics.Metrics
	EntryIDs map[string]cron.EntryID

	now func() time.Time
}

func NewCronService(repo repository.DomainRepository, notify *NotifierService, m *metrics.Metrics) *CronService {
	return &CronService{
		Cron:     cron.New(),
		Repo:     repo,
		Notifier: notify,
		Metrics:  m,
		EntryIDs: make(map[string]cron.EntryID),
		now:      time.Now,
	}
}

// Start 註冊每日到期檢查並啟動排程
func (s *CronService) Start(schedule string) error {
	if err := s.registerJob(expiryCheckJob, schedule, func() {
		s.CheckExpiringDomains(context.Background())
	}); err != nil {
		return err
	}
	s.Cron.Start()
	return nil
}

// Stop 回傳的 context 在執行中的任務結束後關閉
func (s *CronService) Stop() context.Context {
	return s.Cron.Stop()
}

// registerJob 封裝註冊邏輯
func (s *CronService) registerJob(name, schedule string, cmd func()) error {
	if id, ok := s.EntryIDs[name]; ok {
		s.Cron.Remove(id)
	}
	id, err := s.Cron.AddFunc(schedule, cmd)
	if err != nil {
		logrus.Errorf("排程註冊失敗 [%s]: %v", name, err)
		return err
	}
	s.EntryIDs[name] = id
	logrus.Infof("已排程自動任務 [%s]: %s", name, schedule)
	return nil
}

// CheckExpiringDomains 每日到期檢查
// 一旦開始就不可取消；任何錯誤只記錄，不重試也不中斷下次排程
func (s *CronService) CheckExpiringDomains(ctx context.Context) RunReport {
	ctx = context.WithoutCancel(ctx)
	began := time.Now()
	start := s.now()
	report := RunReport{StartedAt: start}

	logrus.Info("⏰ [Cron] 開始檢查即將到期的域名...")

	finish := func(outcome string, err error) RunReport {
		report.Outcome = outcome
		report.Duration = time.Since(began).String()
		if err != nil {
			report.Error = err.Error()
			logrus.Errorf("❌ [Cron] 到期檢查發生錯誤 (已略過): %v", err)
		}
		s.Metrics.IncSchedulerRun(outcome)
		logrus.Infof("🏁 [Cron] 檢查完成: 共 %d 個，即將到期 %d，已過期 %d，結果 %s",
			report.Checked, report.Expiring, report.Expired, outcome)
		return report
	}

	// 1. 讀取域名
	domains, err := s.Repo.ListDomains(ctx)
	if err != nil {
		return finish(OutcomeSwallowed, err)
	}
	report.Checked = len(domains)

	// 2. 讀取 Telegram 設定 (失敗時用預設值繼續判斷)
	stored, err := s.Repo.GetTelegramConfig(ctx)
	if err != nil {
		logrus.Warnf("⚠️ [Cron] 無法讀取 Telegram 設定，使用預設值: %v", err)
		stored = domain.TelegramConfig{}
	}
	cfg := s.Notifier.Credentials(stored)

	// 3. 分類
	batch := Evaluate(domains, cfg.NotifyDays, start)
	report.Expiring, report.Expired = len(batch.Expiring), len(batch.Expired)
	s.Metrics.SetBatchSize(report.Expiring, report.Expired)

	if batch.Empty() {
		return finish(OutcomeNothingDue, nil)
	}
	if !cfg.Enabled {
		logrus.Info("🔕 [Cron] Telegram 通知未啟用，略過發送")
		return finish(OutcomeDisabled, nil)
	}

	// 4. 合併成一則訊息發送
	message, err := FormatBatch(batch)
	if err != nil {
		return finish(OutcomeSwallowed, err)
	}
	if result := s.Notifier.SendResolved(ctx, cfg, message); !result.Success {
		return finish(OutcomeSwallowed, result.Err)
	}
	return finish(OutcomeNotified, nil)
}
