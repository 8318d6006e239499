package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
	"github.com/jy02739244/Domain-AutoCheck/internal/repository"
	"github.com/jy02739244/Domain-AutoCheck/internal/service"
)

const tokenMask = "****"

type TelegramHandler struct {
	Repo     repository.DomainRepository
	Notifier *service.NotifierService
}

func NewTelegramHandler(r repository.DomainRepository, n *service.NotifierService) *TelegramHandler {
	return &TelegramHandler{Repo: r, Notifier: n}
}

// telegramView 回傳給前端的設定，token 一律遮罩
type telegramView struct {
	Enabled       bool   `json:"enabled"`
	BotToken      string `json:"bot_token"`
	ChatID        string `json:"chat_id"`
	NotifyDays    int    `json:"notify_days"`
	HasToken      bool   `json:"has_token"`
	TokenFromEnv  bool   `json:"token_from_env"`
	ChatIDFromEnv bool   `json:"chat_id_from_env"`
}

type telegramRequest struct {
	Enabled    bool   `json:"enabled"`
	BotToken   string `json:"bot_token" validate:"max=200"`
	ChatID     string `json:"chat_id" validate:"max=100"`
	NotifyDays int    `json:"notify_days" validate:"gte=0,lte=3650"`
}

func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return tokenMask
	}
	return token[:4] + tokenMask + token[len(token)-4:]
}

func fromFallback(source string) bool {
	return source != "" && source != service.SourceStored
}

func (h *TelegramHandler) Get(c *gin.Context) {
	stored, err := h.Repo.GetTelegramConfig(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resolved := h.Notifier.Credentials(stored)

	chatID := stored.ChatID
	if fromFallback(resolved.ChatSource) {
		chatID = ""
	}
	c.JSON(http.StatusOK, gin.H{"data": telegramView{
		Enabled:       stored.Enabled,
		BotToken:      maskToken(stored.BotToken),
		ChatID:        chatID,
		NotifyDays:    resolved.NotifyDays,
		HasToken:      resolved.BotToken != "",
		TokenFromEnv:  fromFallback(resolved.TokenSource),
		ChatIDFromEnv: fromFallback(resolved.ChatSource),
	}})
}

// Save 前端回傳遮罩後的 token 時保留原值
func (h *TelegramHandler) Save(c *gin.Context) {
	var req telegramRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	stored, err := h.Repo.GetTelegramConfig(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	cfg := domain.TelegramConfig{
		Enabled:    req.Enabled,
		BotToken:   strings.TrimSpace(req.BotToken),
		ChatID:     strings.TrimSpace(req.ChatID),
		NotifyDays: req.NotifyDays,
	}
	if strings.Contains(cfg.BotToken, tokenMask) {
		cfg.BotToken = stored.BotToken
	}
	if cfg.NotifyDays == 0 {
		cfg.NotifyDays = domain.DefaultNotifyDays
	}

	if err := h.Repo.SaveTelegramConfig(ctx, cfg); err != nil {
		respondError(c, err)
		return
	}
	logrus.Infof("💾 [Telegram] 設定已更新 (enabled=%v)", cfg.Enabled)
	c.JSON(http.StatusOK, gin.H{"message": "設定已儲存"})
}

// Test 以目前儲存的設定發送測試訊息
func (h *TelegramHandler) Test(c *gin.Context) {
	stored, err := h.Repo.GetTelegramConfig(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondDispatch(c, h.Notifier.SendTest(c.Request.Context(), stored))
}
