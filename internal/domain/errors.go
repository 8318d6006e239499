package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDefaultCategory   = errors.New("default category cannot be modified")
	ErrDuplicateCategory = errors.New("category name already exists")
	ErrDuplicateDomain   = errors.New("domain already tracked")
)

// 輸入驗證錯誤，在任何網路請求前回報
var (
	ErrValidation          = errors.New("invalid domain")
	ErrEmptyDomain         = fmt.Errorf("%w: domain cannot be empty", ErrValidation)
	ErrMalformedDomain     = fmt.Errorf("%w: malformed domain name", ErrValidation)
	ErrIncompleteDomain    = fmt.Errorf("%w: please enter a full domain including its suffix", ErrValidation)
	ErrSubdomainNotAllowed = fmt.Errorf("%w: only apex domains can be queried", ErrValidation)
)

// 缺少憑證，直接失敗不發請求
var (
	ErrConfig          = errors.New("configuration error")
	ErrMissingAPIKey   = fmt.Errorf("%w: API key not configured", ErrConfig)
	ErrMissingBotToken = fmt.Errorf("%w: telegram bot token not configured", ErrConfig)
	ErrMissingChatID   = fmt.Errorf("%w: telegram chat id not configured", ErrConfig)
	ErrTelegramOff     = fmt.Errorf("%w: telegram notifications are disabled", ErrConfig)
)

var ErrUpstream = errors.New("upstream error")

// UpstreamError 上游 (WHOIS provider / Telegram) 回應非 2xx 或連線失敗
type UpstreamError struct {
	Provider    string
	StatusCode  int
	Description string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s request failed: %s", e.Provider, e.Description)
	}
	return fmt.Sprintf("%s request failed: %d %s", e.Provider, e.StatusCode, e.Description)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }
