package domain

type DashboardStats struct {
	TotalDomains   int            `json:"total_domains"`
	ActiveCount    int            `json:"active_count"`
	WarningCount   int            `json:"warning_count"`
	ExpiredCount   int            `json:"expired_count"`
	MutedCount     int            `json:"muted_count"`     // 關閉通知的域名
	CategoryCounts map[string]int `json:"category_counts"` // category_id -> 數量
	ExpiryCounts   map[string]int `json:"expiry_counts"`   // e.g. "<7": 1, "<30": 5
}
