package whois

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

func TestStructuredProviderMapsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token=secret", r.Header.Get("Authorization"))
		assert.Equal(t, "example.com", r.URL.Query().Get("domain"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "example.com",
			"registered": true,
			"created": "1995-08-14T04:00:00Z",
			"expires": "2025-08-13 04:00:00",
			"changed": "2024-08-14",
			"registrar": {"name": "RESERVED-IANA", "url": "https://iana.org"},
			"nameserver": ["a.iana-servers.net", "b.iana-servers.net"],
			"status": "clientDeleteProhibited",
			"dnssec": "signedDelegation"
		}`))
	}))
	defer srv.Close()

	p := NewStructuredProvider(srv.URL, "secret", srv.Client())
	rec := p.Resolve(context.Background(), "example.com")

	require.True(t, rec.Success, rec.Error)
	assert.Equal(t, "example.com", rec.Domain)
	require.NotNil(t, rec.Registered)
	assert.True(t, *rec.Registered)
	assert.Equal(t, "1995-08-14", rec.RegistrationDate)
	assert.Equal(t, "2025-08-13", rec.ExpiryDate)
	assert.Equal(t, "2024-08-14", rec.LastUpdated)
	require.NotNil(t, rec.Registrar)
	assert.Equal(t, "RESERVED-IANA", rec.Registrar.Name)
	assert.Equal(t, []string{"a.iana-servers.net", "b.iana-servers.net"}, rec.Nameservers)
	assert.Equal(t, []string{"clientDeleteProhibited"}, rec.Status)
	assert.Equal(t, "signedDelegation", rec.DNSSEC)
	assert.Equal(t, ProviderStructured, rec.Provider)
}

func TestStructuredProviderMissingKeySkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	rec := NewStructuredProvider(srv.URL, "", srv.Client()).Resolve(context.Background(), "example.com")

	assert.False(t, rec.Success)
	assert.Equal(t, domain.ErrMissingAPIKey.Error(), rec.Error)
	assert.Equal(t, "example.com", rec.Domain)
	assert.Zero(t, hits.Load())
}

func TestStructuredProviderNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	rec := NewStructuredProvider(srv.URL, "secret", srv.Client()).Resolve(context.Background(), "example.com")

	assert.False(t, rec.Success)
	assert.Contains(t, rec.Error, "429 Too Many Requests")
	assert.Nil(t, rec.Registered)
	assert.Nil(t, rec.Registrar)
	assert.Empty(t, rec.ExpiryDate)
	assert.Nil(t, rec.Raw)
}

func TestStructuredProviderBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	rec := NewStructuredProvider(srv.URL, "secret", srv.Client()).Resolve(context.Background(), "example.com")

	assert.False(t, rec.Success)
	assert.Contains(t, rec.Error, "decode whoisjson response")
}
