package service

import (
	"time"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
	"github.com/jy02739244/Domain-AutoCheck/internal/renewal"
)

type Classification int

const (
	Silent Classification = iota
	Expiring
	Expired
)

func (c Classification) String() string {
	switch c {
	case Expiring:
		return "expiring"
	case Expired:
		return "expired"
	default:
		return "silent"
	}
}

// Classify <=0 已過期；(0, threshold] 即將到期；其餘不通知
func Classify(daysLeft, threshold int) Classification {
	switch {
	case daysLeft <= 0:
		return Expired
	case daysLeft <= threshold:
		return Expiring
	default:
		return Silent
	}
}

// Evaluate 將域名分類成待通知批次
// 沒有「已通知」狀態，門檻內的域名每次排程都會再通知，直到續費或調整設定
func Evaluate(domains []domain.DomainRecord, globalNotifyDays int, now time.Time) domain.NotificationBatch {
	batch := domain.NotificationBatch{
		Expiring: []domain.BatchEntry{},
		Expired:  []domain.BatchEntry{},
	}

	for _, d := range domains {
		settings := d.Notify()
		if !settings.Enabled {
			continue
		}

		threshold := globalNotifyDays
		if !settings.UseGlobalSettings {
			threshold = settings.NotifyDays
		}

		daysLeft := renewal.DaysLeft(d.ExpiryDate, now)
		switch Classify(daysLeft, threshold) {
		case Expired:
			batch.Expired = append(batch.Expired, toBatchEntry(d, daysLeft))
		case Expiring:
			batch.Expiring = append(batch.Expiring, toBatchEntry(d, daysLeft))
		}
	}
	return batch
}

func toBatchEntry(d domain.DomainRecord, daysLeft int) domain.BatchEntry {
	return domain.BatchEntry{
		Name:       d.Name,
		Registrar:  d.Registrar,
		DaysLeft:   daysLeft,
		ExpiryDate: d.ExpiryDate.Format(domain.DateLayout),
		RenewLink:  d.RenewLink,
	}
}
