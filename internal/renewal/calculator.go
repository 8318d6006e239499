// Package renewal 域名續費週期與到期日的純計算，不做任何 I/O
package renewal

import (
	"math"
	"time"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

const (
	day          = 24 * time.Hour
	daysPerYear  = 365 // 不做閏年修正
	defaultCycle = daysPerYear
	warningDays  = 30
)

// roundHalfUp 0.5 進位 (往較大的週期靠)
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// CycleDays 週期換算為天數
// month 以 anchor 起算實際跨越的天數；year 固定 365
func CycleDays(c *domain.RenewCycle, anchor time.Time) int {
	if c == nil || c.Value <= 0 {
		return defaultCycle
	}
	switch c.Unit {
	case domain.UnitYear:
		return c.Value * daysPerYear
	case domain.UnitMonth:
		start := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, c.Value, 0)
		return roundHalfUp(end.Sub(start).Hours() / 24)
	case domain.UnitDay:
		return c.Value
	default:
		return defaultCycle
	}
}

// DaysLeft 距到期日的天數 (無條件進位，可為負)
func DaysLeft(expiry, now time.Time) int {
	return int(math.Ceil(float64(expiry.Sub(now)) / float64(day)))
}

// ProgressPercent 剩餘天數佔週期的百分比，範圍 [0,100]
func ProgressPercent(daysLeft, cycleDays int) int {
	if daysLeft <= 0 || cycleDays <= 0 {
		return 0
	}
	if daysLeft >= cycleDays {
		return 100
	}
	p := roundHalfUp(float64(daysLeft) / float64(cycleDays) * 100)
	return max(0, min(100, p))
}

// Progress 域名的週期進度
// daysLeft 可能是列表載入時算的舊值；過期後續費過的要依新到期日重算
func Progress(d domain.DomainRecord, daysLeft int, now time.Time) int {
	cycle := CycleDays(d.RenewCycle, d.ExpiryDate)
	if daysLeft <= 0 {
		if d.LastRenewed == nil {
			return 0
		}
		daysLeft = DaysLeft(d.ExpiryDate, now)
	}
	return ProgressPercent(daysLeft, cycle)
}

// InferCycle 從註冊日與到期日推測續費週期 (啟發式，非精確反推)
func InferCycle(registration, expiry time.Time) domain.RenewCycle {
	days := roundHalfUp(expiry.Sub(registration).Hours() / 24)

	switch {
	case days >= 360:
		return domain.RenewCycle{Value: 1, Unit: domain.UnitYear}
	case days >= 28 && days <= 31:
		return domain.RenewCycle{Value: 1, Unit: domain.UnitMonth}
	case days >= 85 && days <= 95:
		return domain.RenewCycle{Value: 3, Unit: domain.UnitMonth}
	case days >= 175 && days <= 185:
		return domain.RenewCycle{Value: 6, Unit: domain.UnitMonth}
	}

	if months := roundHalfUp(float64(days) / 30); months >= 1 {
		return domain.RenewCycle{Value: months, Unit: domain.UnitMonth}
	}
	return domain.RenewCycle{Value: 1, Unit: domain.UnitYear}
}

// NextExpiry 依週期推算續費後的到期日
func NextExpiry(expiry time.Time, c domain.RenewCycle) time.Time {
	if c.Value <= 0 {
		c.Value = 1
	}
	switch c.Unit {
	case domain.UnitMonth:
		return expiry.AddDate(0, c.Value, 0)
	case domain.UnitDay:
		return expiry.AddDate(0, 0, c.Value)
	default:
		return expiry.AddDate(c.Value, 0, 0)
	}
}

// Status 儀表板狀態：<=0 過期、<=30 警告、其餘正常
func Status(daysLeft int) string {
	switch {
	case daysLeft <= 0:
		return domain.StatusExpired
	case daysLeft <= warningDays:
		return domain.StatusWarning
	default:
		return domain.StatusActive
	}
}
