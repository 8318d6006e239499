package whois

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

const (
	relayNotFoundMarker   = "Domain not found"
	relayDefaultRegistrar = "DigitalPlat"
)

// DigitalPlat 文字欄位
var (
	creationDateRe       = fieldPattern("Creation Date")
	registryExpiryDateRe = fieldPattern("Registry Expiry Date")
	registrarRe          = fieldPattern("Registrar")
	registrarURLRe       = fieldPattern("Registrar URL")
	domainStatusRe       = fieldPattern("Domain Status")
)

// RelayProvider DigitalPlat 免費域名，經 corsproxy 轉發 (直連 TLS 不穩定)
type RelayProvider struct {
	relayURL  string
	originURL string
	client    *http.Client
}

func NewRelayProvider(relayURL, originURL string, client *http.Client) *RelayProvider {
	return &RelayProvider{relayURL: relayURL, originURL: originURL, client: client}
}

func (p *RelayProvider) Name() string { return ProviderRelay }

func (p *RelayProvider) Resolve(ctx context.Context, name string) domain.WhoisRecord {
	target := p.originURL + "?name=" + url.QueryEscape(name)
	endpoint := p.relayURL + "?url=" + url.QueryEscape(target)

	body, err := fetch(ctx, p.client, p.Name(), endpoint, nil)
	if err != nil {
		return domain.FailedWhois(name, p.Name(), err)
	}
	text := string(body)

	// 查無此域名 = 可註冊，不是錯誤
	if strings.Contains(text, relayNotFoundMarker) {
		return domain.WhoisRecord{
			Domain:     name,
			Success:    true,
			Registered: domain.Bool(false),
			Raw:        text,
			Provider:   p.Name(),
		}
	}

	// 沒有建立日期 (例如 relay 回傳錯誤頁) 不視為已註冊
	createdRaw := firstField(creationDateRe, text)
	registrar := firstField(registrarRe, text)
	if registrar == "" {
		registrar = relayDefaultRegistrar
	}

	return domain.WhoisRecord{
		Domain:           name,
		Success:          true,
		Registered:       domain.Bool(createdRaw != ""),
		RegistrationDate: NormalizeDate(createdRaw),
		ExpiryDate:       NormalizeDate(firstField(registryExpiryDateRe, text)),
		Registrar:        &domain.Registrar{Name: registrar, URL: firstField(registrarURLRe, text)},
		Nameservers:      allFields(nameServerRe, text),
		Status:           allFields(domainStatusRe, text),
		Raw:              text,
		Provider:         p.Name(),
	}
}
