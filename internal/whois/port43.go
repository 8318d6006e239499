package whois

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"golang.org/x/net/publicsuffix"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

// LookupFunc 取得原始 WHOIS 文字
type LookupFunc func(ctx context.Context, name string) (string, error)

// Port43Provider 直接走 WHOIS 協定 (port 43)，用於設定檔指定的後綴
type Port43Provider struct {
	lookup LookupFunc
}

func NewPort43Provider(timeout time.Duration) *Port43Provider {
	client := whois.NewClient()
	client.SetTimeout(timeout)

	return &Port43Provider{lookup: func(ctx context.Context, name string) (string, error) {
		type result struct {
			raw string
			err error
		}
		// whois client 不支援 context，用 goroutine 包一層
		ch := make(chan result, 1)
		go func() {
			raw, err := client.Whois(name)
			ch <- result{raw: raw, err: err}
		}()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case r := <-ch:
			return r.raw, r.err
		}
	}}
}

func (p *Port43Provider) Name() string { return ProviderPort43 }

func (p *Port43Provider) Resolve(ctx context.Context, name string) domain.WhoisRecord {
	query := name
	if apex, err := publicsuffix.EffectiveTLDPlusOne(name); err == nil {
		query = apex
	}

	raw, err := p.lookup(ctx, query)
	if err != nil {
		if ctx.Err() != nil {
			return domain.FailedWhois(name, p.Name(), ctx.Err())
		}
		return domain.FailedWhois(name, p.Name(), &domain.UpstreamError{Provider: p.Name(), Description: err.Error()})
	}

	info, err := whoisparser.Parse(raw)
	if errors.Is(err, whoisparser.ErrNotFoundDomain) {
		return domain.WhoisRecord{
			Domain:     name,
			Success:    true,
			Registered: domain.Bool(false),
			Raw:        raw,
			Provider:   p.Name(),
		}
	}
	if err != nil {
		return domain.FailedWhois(name, p.Name(), fmt.Errorf("parse whois: %w", err))
	}

	rec := domain.WhoisRecord{
		Domain:     name,
		Success:    true,
		Registered: domain.Bool(true),
		Raw:        raw,
		Provider:   p.Name(),
	}
	if d := info.Domain; d != nil {
		rec.RegistrationDate = NormalizeDate(d.CreatedDate)
		rec.ExpiryDate = NormalizeDate(d.ExpirationDate)
		rec.LastUpdated = NormalizeDate(d.UpdatedDate)
		rec.Nameservers = d.NameServers
		rec.Status = d.Status
		if d.DNSSec {
			rec.DNSSEC = "signedDelegation"
		} else {
			rec.DNSSEC = "unsigned"
		}
	}
	if r := info.Registrar; r != nil && r.Name != "" {
		rec.Registrar = &domain.Registrar{Name: r.Name, URL: r.ReferralURL}
	}
	return rec
}
