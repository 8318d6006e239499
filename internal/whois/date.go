package whois

import (
	"strings"
	"time"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

// 各家 WHOIS 常見的日期格式
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05", // '2026-06-17 13:11:45'
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 MST",
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"02-Jan-2006",
	"02-January-2006",
	"02.01.2006",
	"January 2 2006",
	"Mon Jan 2 15:04:05 MST 2006",
	"20060102",
}

// ParseDate 嘗試多種格式解析時間
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	// 去掉 "(UTC+8)" 之類的註記
	if i := strings.Index(s, " ("); i > 0 {
		s = s[:i]
	}
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeDate 轉成 YYYY-MM-DD (UTC)，無法解析回傳空字串
func NormalizeDate(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return ""
	}
	return t.UTC().Format(domain.DateLayout)
}
