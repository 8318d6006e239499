package whois

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

// 標準 DNS label 語法
var domainGrammar = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?)*$`)

type route struct {
	suffix   string
	provider Provider
}

// Router 依後綴選擇 provider，未匹配者走 fallback
type Router struct {
	routes     []route
	fallback   Provider
	extraLabel map[string]bool // 可在其下註冊的多段後綴 (e.g. foo.pp.ua、example.co.uk)
}

func NewRouter(fallback Provider) *Router {
	return &Router{fallback: fallback, extraLabel: make(map[string]bool)}
}

// Handle 註冊後綴路由，最長後綴優先
func (r *Router) Handle(suffix string, p Provider, allowExtraLabel bool) {
	suffix = strings.Trim(strings.ToLower(suffix), ".")
	r.routes = append(r.routes, route{suffix: suffix, provider: p})
	sort.SliceStable(r.routes, func(i, j int) bool {
		return len(r.routes[i].suffix) > len(r.routes[j].suffix)
	})
	if allowExtraLabel {
		r.extraLabel[suffix] = true
	}
}

// Validate 正規化並檢查域名，必須在任何網路請求之前
func (r *Router) Validate(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", domain.ErrEmptyDomain
	}
	if !domainGrammar.MatchString(name) {
		return "", domain.ErrMalformedDomain
	}

	// N 段後綴只接受 N+1 段的域名
	switch dots := strings.Count(name, "."); {
	case dots == 0:
		return "", domain.ErrIncompleteDomain
	case dots == 1:
		return name, nil
	case r.extraLabel[name[strings.Index(name, ".")+1:]]:
		return name, nil
	default:
		return "", domain.ErrSubdomainNotAllowed
	}
}

// Route 驗證後回傳正規化的域名與對應 provider
func (r *Router) Route(name string) (string, Provider, error) {
	name, err := r.Validate(name)
	if err != nil {
		return "", nil, err
	}
	for _, rt := range r.routes {
		if strings.HasSuffix(name, "."+rt.suffix) {
			return name, rt.provider, nil
		}
	}
	return name, r.fallback, nil
}

// Resolve 只有驗證失敗會回傳 error，其餘結果都在 record 內
func (r *Router) Resolve(ctx context.Context, name string) (domain.WhoisRecord, error) {
	name, p, err := r.Route(name)
	if err != nil {
		return domain.WhoisRecord{}, err
	}
	return p.Resolve(ctx, name), nil
}

// Options 建立預設路由表所需的參數
type Options struct {
	APIKey         string
	StructuredURL  string
	EnvelopeURL    string
	RelayURL       string
	RelayOriginURL string
	Timeout        time.Duration
	ExtraRoutes    []ExtraRoute
}

// ExtraRoute 設定檔指定的後綴路由，後綴可為多段 (co.uk)
type ExtraRoute struct {
	Suffix   string
	Provider string
}

// NewDefaultRouter 內建路由:
// .pp.ua -> nic.ua；DigitalPlat 免費後綴 -> relay；其他 -> whoisjson
func NewDefaultRouter(o Options) (*Router, error) {
	client := &http.Client{Timeout: o.Timeout}

	providers := map[string]Provider{
		ProviderStructured: NewStructuredProvider(o.StructuredURL, o.APIKey, client),
		ProviderEnvelope:   NewEnvelopeProvider(o.EnvelopeURL, client),
		ProviderRelay:      NewRelayProvider(o.RelayURL, o.RelayOriginURL, client),
		ProviderPort43:     NewPort43Provider(o.Timeout),
	}

	r := NewRouter(providers[ProviderStructured])
	r.Handle("pp.ua", providers[ProviderEnvelope], true)
	for _, suffix := range []string{"qzz.io", "dpdns.org", "us.kg", "xx.kg"} {
		r.Handle(suffix, providers[ProviderRelay], true)
	}

	for _, rt := range o.ExtraRoutes {
		p, ok := providers[rt.Provider]
		if !ok {
			return nil, fmt.Errorf("whois route %q: unknown provider %q", rt.Suffix, rt.Provider)
		}
		if strings.Trim(rt.Suffix, ".") == "" {
			return nil, fmt.Errorf("whois route for %q: empty suffix", rt.Provider)
		}
		r.Handle(rt.Suffix, p, true)
	}
	return r, nil
}
