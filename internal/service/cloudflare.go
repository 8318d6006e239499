package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudflare/cloudflare-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/publicsuffix"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
	"github.com/jy02739244/Domain-AutoCheck/internal/whois"
)

// ImportStats Cloudflare 匯入結果
type ImportStats struct {
	Zones    int      `json:"zones"`
	Imported []string `json:"imported"`
	Skipped  []string `json:"skipped"`
	Failed   []string `json:"failed"`
}

// CloudflareService 把 Cloudflare 帳號下的 Zone 匯入為追蹤域名
type CloudflareService struct {
	APIToken string
	Domains  *DomainService
	Whois    *WhoisService

	apiOptions []cloudflare.Option
}

func NewCloudflareService(token string, domains *DomainService, lookup *WhoisService, opts ...cloudflare.Option) *CloudflareService {
	return &CloudflareService{APIToken: token, Domains: domains, Whois: lookup, apiOptions: opts}
}

// ImportZones 已追蹤的域名略過；查不到到期日的記為失敗
func (s *CloudflareService) ImportZones(ctx context.Context) (ImportStats, error) {
	stats := ImportStats{Imported: []string{}, Skipped: []string{}, Failed: []string{}}
	if s.APIToken == "" {
		return stats, fmt.Errorf("%w: cloudflare api token is not set", domain.ErrConfig)
	}

	api, err := cloudflare.NewWithAPIToken(s.APIToken, s.apiOptions...)
	if err != nil {
		return stats, err
	}

	// 1. 獲取所有 Zones
	zones, err := api.ListZones(ctx)
	if err != nil {
		return stats, &domain.UpstreamError{Provider: "cloudflare", Description: err.Error()}
	}
	stats.Zones = len(zones)

	for _, zone := range zones {
		name := apexName(zone.Name)
		logrus.Infof("☁️ [Cloudflare] 正在處理 Zone: %s", name)

		// 2. 已存在的略過
		if _, err := s.Domains.Repo.FindDomainByName(ctx, name); err == nil {
			stats.Skipped = append(stats.Skipped, name)
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			return stats, err
		}

		// 3. WHOIS 補齊日期與註冊商
		rec, err := s.recordFromWhois(ctx, name)
		if err != nil {
			logrus.Warnf("⚠️ [Cloudflare] %s 無法取得 WHOIS: %v", name, err)
			stats.Failed = append(stats.Failed, name)
			continue
		}

		if _, err := s.Domains.Create(ctx, rec); err != nil {
			if errors.Is(err, domain.ErrDuplicateDomain) {
				stats.Skipped = append(stats.Skipped, name)
				continue
			}
			return stats, err
		}
		stats.Imported = append(stats.Imported, name)
	}

	logrus.Infof("✅ [Cloudflare] 匯入完成: 新增 %d, 略過 %d, 失敗 %d",
		len(stats.Imported), len(stats.Skipped), len(stats.Failed))
	return stats, nil
}

func (s *CloudflareService) recordFromWhois(ctx context.Context, name string) (domain.DomainRecord, error) {
	res, err := s.Whois.Lookup(ctx, name)
	if err != nil {
		return domain.DomainRecord{}, err
	}
	if !res.Success {
		return domain.DomainRecord{}, errors.New(res.Error)
	}

	expiry, ok := whois.ParseDate(res.ExpiryDate)
	if !ok {
		return domain.DomainRecord{}, errors.New("expiry date not available")
	}
	rec := domain.DomainRecord{Name: name, ExpiryDate: expiry}
	if reg, ok := whois.ParseDate(res.RegistrationDate); ok {
		rec.RegistrationDate = reg
	}
	if res.Registrar != nil {
		rec.Registrar = res.Registrar.Name
		rec.RenewLink = res.Registrar.URL
	}
	return rec, nil
}

// apexName 取 eTLD+1，無法判斷時原樣回傳
func apexName(zone string) string {
	zone = strings.ToLower(strings.TrimSuffix(zone, "."))
	if apex, err := publicsuffix.EffectiveTLDPlusOne(zone); err == nil {
		return apex
	}
	return zone
}
