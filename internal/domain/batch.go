package domain

// BatchEntry 單一待通知域名
type BatchEntry struct {
	Name       string `json:"name"`
	Registrar  string `json:"registrar"`
	DaysLeft   int    `json:"days_left"`
	ExpiryDate string `json:"expiry_date"`
	RenewLink  string `json:"renew_link"`
}

// NotificationBatch 每次排程執行時建立，不落地
type NotificationBatch struct {
	Expiring []BatchEntry `json:"expiring"`
	Expired  []BatchEntry `json:"expired"`
}

func (b NotificationBatch) Empty() bool {
	return len(b.Expiring) == 0 && len(b.Expired) == 0
}
