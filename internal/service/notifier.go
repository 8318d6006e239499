package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
	"github.com/jy02739244/Domain-AutoCheck/internal/metrics"
)

const (
	defaultTelegramAPI  = "https://api.telegram.org"
	defaultSendInterval = 1100 * time.Millisecond // Telegram 單一聊天約每秒一則
	telegramProvider    = "telegram"
)

// DispatchResult 發送結果，錯誤不往上拋，由呼叫端檢查
type DispatchResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Err     error  `json:"-"`
}

func failedDispatch(err error) DispatchResult {
	return DispatchResult{Success: false, Error: err.Error(), Err: err}
}

type NotifierService struct {
	apiBase     string
	client      *http.Client
	limiter     *rate.Limiter
	credentials *CredentialChain
	metrics     *metrics.Metrics
}

type NotifierOption func(*NotifierService)

func WithTelegramAPIBase(base string) NotifierOption {
	return func(n *NotifierService) { n.apiBase = base }
}

func WithNotifierHTTPClient(c *http.Client) NotifierOption {
	return func(n *NotifierService) { n.client = c }
}

// WithSendInterval 兩則訊息之間的最小間隔，<=0 表示不限速
func WithSendInterval(d time.Duration) NotifierOption {
	return func(n *NotifierService) {
		if d <= 0 {
			n.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		n.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

func WithNotifierMetrics(m *metrics.Metrics) NotifierOption {
	return func(n *NotifierService) { n.metrics = m }
}

func NewNotifierService(chain *CredentialChain, opts ...NotifierOption) *NotifierService {
	n := &NotifierService{
		apiBase:     defaultTelegramAPI,
		client:      &http.Client{Timeout: 10 * time.Second},
		limiter:     rate.NewLimiter(rate.Every(defaultSendInterval), 1),
		credentials: chain,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Credentials 解析本次請求使用的 Telegram 設定
func (n *NotifierService) Credentials(stored domain.TelegramConfig) ResolvedTelegram {
	return n.credentials.Resolve(stored)
}

// Send 依優先序解析憑證後發送
func (n *NotifierService) Send(ctx context.Context, stored domain.TelegramConfig, message string) DispatchResult {
	return n.SendResolved(ctx, n.Credentials(stored), message)
}

// SendResolved 每次呼叫只發一個 POST，不重試
func (n *NotifierService) SendResolved(ctx context.Context, cfg ResolvedTelegram, message string) DispatchResult {
	if err := cfg.Validate(); err != nil {
		n.metrics.IncDispatch(false)
		return failedDispatch(err)
	}
	if err := n.limiter.Wait(ctx); err != nil {
		n.metrics.IncDispatch(false)
		return failedDispatch(err)
	}
	if err := n.sendTelegram(ctx, cfg.BotToken, cfg.ChatID, message); err != nil {
		logrus.Errorf("[Notifier] Telegram 發送失敗: %v", err)
		n.metrics.IncDispatch(false)
		return failedDispatch(err)
	}

	logrus.Info("📨 [Notifier] Telegram 訊息已送出")
	n.metrics.IncDispatch(true)
	return DispatchResult{Success: true}
}

// SendTest 發送測試訊息，需啟用 Telegram
func (n *NotifierService) SendTest(ctx context.Context, stored domain.TelegramConfig) DispatchResult {
	cfg := n.Credentials(stored)
	if !cfg.Enabled {
		return failedDispatch(domain.ErrTelegramOff)
	}
	return n.SendResolved(ctx, cfg, testMessage)
}

// 底層邏輯：Telegram
func (n *NotifierService) sendTelegram(ctx context.Context, token, chatID, message string) error {
	apiURL := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, token)
	payload := map[string]string{
		"chat_id":    chatID,
		"text":       message,
		"parse_mode": "HTML", // 支援粗體等格式
	}
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(jsonBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		// url.Error 內含帶 token 的網址，只保留底層錯誤
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return &domain.UpstreamError{Provider: telegramProvider, Description: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			Description string `json:"description"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)
		if body.Description == "" {
			body.Description = "unknown error"
		}
		return &domain.UpstreamError{
			Provider:    telegramProvider,
			StatusCode:  resp.StatusCode,
			Description: body.Description,
		}
	}
	return nil
}
