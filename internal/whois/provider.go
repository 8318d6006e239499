package whois

import (
	"context"
	"io"
	"net/http"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

const (
	ProviderStructured = "whoisjson"
	ProviderEnvelope   = "nicua"
	ProviderRelay      = "digitalplat"
	ProviderPort43     = "port43"
)

// 回應上限，避免異常的上游塞爆記憶體
const maxBodyBytes = 2 << 20

// Provider 單一上游註冊局的查詢實作
// Resolve 不回傳 error，所有失敗都折疊進 Success=false 的結果
type Provider interface {
	Name() string
	Resolve(ctx context.Context, name string) domain.WhoisRecord
}

// fetch 發出 GET 並在非 2xx 時回傳 UpstreamError
func fetch(ctx context.Context, client *http.Client, provider, endpoint string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &domain.UpstreamError{Provider: provider, Description: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.UpstreamError{
			Provider:    provider,
			StatusCode:  resp.StatusCode,
			Description: http.StatusText(resp.StatusCode),
		}
	}
	if err != nil {
		return nil, &domain.UpstreamError{Provider: provider, Description: err.Error()}
	}
	return body, nil
}
