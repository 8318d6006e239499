package domain

// TelegramConfig 資料庫中儲存的 Telegram 設定 (settings collection 單一文件)
type TelegramConfig struct {
	Enabled    bool   `bson:"enabled" json:"enabled"`
	BotToken   string `bson:"bot_token" json:"bot_token"`
	ChatID     string `bson:"chat_id" json:"chat_id"`
	NotifyDays int    `bson:"notify_days" json:"notify_days" validate:"gte=0,lte=3650"`
}

// GlobalNotifyDays 未啟用 Telegram 時固定 30 天
func (c TelegramConfig) GlobalNotifyDays() int {
	if !c.Enabled || c.NotifyDays <= 0 {
		return DefaultNotifyDays
	}
	return c.NotifyDays
}
