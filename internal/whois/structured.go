package whois

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

// StructuredProvider whoisjson.com 的結構化 JSON API
type StructuredProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewStructuredProvider(baseURL, apiKey string, client *http.Client) *StructuredProvider {
	return &StructuredProvider{baseURL: baseURL, apiKey: apiKey, client: client}
}

func (p *StructuredProvider) Name() string { return ProviderStructured }

type structuredResponse struct {
	Name       string `json:"name"`
	Registered bool   `json:"registered"`
	Created    string `json:"created"`
	Expires    string `json:"expires"`
	Changed    string `json:"changed"`
	Registrar  *struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"registrar"`
	Nameserver flexStrings `json:"nameserver"`
	Status     flexStrings `json:"status"`
	DNSSEC     flexString  `json:"dnssec"`
}

func (p *StructuredProvider) Resolve(ctx context.Context, name string) domain.WhoisRecord {
	if p.apiKey == "" {
		return domain.FailedWhois(name, p.Name(), domain.ErrMissingAPIKey)
	}

	endpoint := p.baseURL + "?domain=" + url.QueryEscape(name)
	header := http.Header{}
	header.Set("Authorization", "Token="+p.apiKey)

	body, err := fetch(ctx, p.client, p.Name(), endpoint, header)
	if err != nil {
		return domain.FailedWhois(name, p.Name(), err)
	}

	var resp structuredResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.FailedWhois(name, p.Name(), fmt.Errorf("decode %s response: %w", p.Name(), err))
	}

	rec := domain.WhoisRecord{
		Domain:           name,
		Success:          true,
		Registered:       domain.Bool(resp.Registered),
		RegistrationDate: NormalizeDate(resp.Created),
		ExpiryDate:       NormalizeDate(resp.Expires),
		LastUpdated:      NormalizeDate(resp.Changed),
		Nameservers:      resp.Nameserver,
		Status:           resp.Status,
		DNSSEC:           string(resp.DNSSEC),
		Raw:              json.RawMessage(body),
		Provider:         p.Name(),
	}
	if resp.Name != "" {
		rec.Domain = resp.Name
	}
	if resp.Registrar != nil && resp.Registrar.Name != "" {
		rec.Registrar = &domain.Registrar{Name: resp.Registrar.Name, URL: resp.Registrar.URL}
	}
	return rec
}

// flexStrings 上游有時回傳字串、有時回傳陣列
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*f = list
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err == nil && one != "" {
		*f = []string{one}
	}
	return nil
}

// flexString dnssec 可能是字串或布林
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var signed bool
	if err := json.Unmarshal(b, &signed); err == nil {
		if signed {
			*f = "signedDelegation"
		} else {
			*f = "unsigned"
		}
	}
	return nil
}
