package whois

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

const envelopeRegistrarURL = "https://nic.ua"

var errEnvelopeFlag = errors.New("registry returned an error for this domain")

// nic.ua 文字欄位
var (
	createdOnRe           = fieldPattern("Created On")
	expirationDateRe      = fieldPattern("Expiration Date")
	lastUpdatedOnRe       = fieldPattern("Last Updated On")
	sponsoringRegistrarRe = fieldPattern("Sponsoring Registrar")
	statusRe              = fieldPattern("Status")
	nameServerRe          = fieldPattern("Name Server")
)

// EnvelopeProvider nic.ua: JSON 外殼包一段純文字 WHOIS (.pp.ua)
type EnvelopeProvider struct {
	baseURL string
	client  *http.Client
}

func NewEnvelopeProvider(baseURL string, client *http.Client) *EnvelopeProvider {
	return &EnvelopeProvider{baseURL: baseURL, client: client}
}

func (p *EnvelopeProvider) Name() string { return ProviderEnvelope }

type envelopeResponse struct {
	IsError   bool   `json:"is_error"`
	WhoisInfo string `json:"whois_info"`
}

func (p *EnvelopeProvider) Resolve(ctx context.Context, name string) domain.WhoisRecord {
	endpoint := p.baseURL + "?domain_name=" + url.QueryEscape(name)
	header := http.Header{}
	header.Set("Accept", "*/*")
	header.Set("X-Requested-With", "XMLHttpRequest")

	body, err := fetch(ctx, p.client, p.Name(), endpoint, header)
	if err != nil {
		return domain.FailedWhois(name, p.Name(), err)
	}

	var env envelopeResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.FailedWhois(name, p.Name(), fmt.Errorf("decode %s response: %w", p.Name(), err))
	}
	if env.IsError {
		return domain.FailedWhois(name, p.Name(), errEnvelopeFlag)
	}

	blob := env.WhoisInfo
	createdRaw := firstField(createdOnRe, blob)

	rec := domain.WhoisRecord{
		Domain:           name,
		Success:          true,
		Registered:       domain.Bool(createdRaw != ""),
		RegistrationDate: NormalizeDate(createdRaw),
		ExpiryDate:       NormalizeDate(firstField(expirationDateRe, blob)),
		LastUpdated:      NormalizeDate(firstField(lastUpdatedOnRe, blob)),
		Nameservers:      allFields(nameServerRe, blob),
		Status:           allFields(statusRe, blob),
		Raw:              env,
		Provider:         p.Name(),
	}
	if registrar := firstField(sponsoringRegistrarRe, blob); registrar != "" {
		rec.Registrar = &domain.Registrar{Name: registrar, URL: envelopeRegistrarURL}
	}
	return rec
}
