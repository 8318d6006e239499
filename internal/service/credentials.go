package service

import "github.com/jy02739244/Domain-AutoCheck/internal/domain"

// 憑證來源名稱
const (
	SourceStored   = "stored"
	SourcePlatform = "platform"
	SourceDefault  = "default"
)

// CredentialSource 一層 Telegram 憑證來源
type CredentialSource struct {
	Name     string
	BotToken string
	ChatID   string
}

// CredentialChain 依序解析：資料庫設定 > 平台密鑰 (TG_TOKEN/TG_ID) > 編譯預設值
// bot token 與 chat id 各自獨立往下找
type CredentialChain struct {
	fallbacks []CredentialSource
}

func NewCredentialChain(fallbacks ...CredentialSource) *CredentialChain {
	return &CredentialChain{fallbacks: fallbacks}
}

// ResolvedTelegram 單次請求內不可變的 Telegram 設定
type ResolvedTelegram struct {
	Enabled     bool
	BotToken    string
	ChatID      string
	NotifyDays  int
	TokenSource string
	ChatSource  string
}

func (c *CredentialChain) Resolve(stored domain.TelegramConfig) ResolvedTelegram {
	r := ResolvedTelegram{
		Enabled:    stored.Enabled,
		NotifyDays: stored.GlobalNotifyDays(),
	}

	sources := []CredentialSource{{Name: SourceStored, BotToken: stored.BotToken, ChatID: stored.ChatID}}
	if c != nil {
		sources = append(sources, c.fallbacks...)
	}
	for _, s := range sources {
		if r.BotToken == "" && s.BotToken != "" {
			r.BotToken, r.TokenSource = s.BotToken, s.Name
		}
		if r.ChatID == "" && s.ChatID != "" {
			r.ChatID, r.ChatSource = s.ChatID, s.Name
		}
	}
	return r
}

// Validate 缺少任一憑證就不發送
func (r ResolvedTelegram) Validate() error {
	if r.BotToken == "" {
		return domain.ErrMissingBotToken
	}
	if r.ChatID == "" {
		return domain.ErrMissingChatID
	}
	return nil
}
