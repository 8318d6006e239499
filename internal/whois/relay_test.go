package whois

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const digitalPlatText = `Domain Name: example.qzz.io
Registrar URL: https://domain.digitalplat.org
Creation Date: 2024-02-01T08:00:00Z
Registry Expiry Date: 2025-02-01T08:00:00Z
Domain Status: active
Name Server: ns1.cloudflare.com
Name Server: ns2.cloudflare.com
`

func relayServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target, err := url.Parse(r.URL.Query().Get("url"))
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "origin.test", target.Host)
		assert.Equal(t, "example.qzz.io", target.Query().Get("name"))
		_, _ = w.Write([]byte(body))
	}))
}

func TestRelayProviderParsesText(t *testing.T) {
	srv := relayServer(t, digitalPlatText)
	defer srv.Close()

	p := NewRelayProvider(srv.URL+"/", "https://origin.test/whois", srv.Client())
	rec := p.Resolve(context.Background(), "example.qzz.io")

	require.True(t, rec.Success, rec.Error)
	require.NotNil(t, rec.Registered)
	assert.True(t, *rec.Registered)
	assert.Equal(t, "2024-02-01", rec.RegistrationDate)
	assert.Equal(t, "2025-02-01", rec.ExpiryDate)
	assert.Empty(t, rec.LastUpdated)
	require.NotNil(t, rec.Registrar)
	assert.Equal(t, "DigitalPlat", rec.Registrar.Name)
	assert.Equal(t, "https://domain.digitalplat.org", rec.Registrar.URL)
	assert.Equal(t, []string{"active"}, rec.Status)
	assert.Equal(t, []string{"ns1.cloudflare.com", "ns2.cloudflare.com"}, rec.Nameservers)
}

func TestRelayProviderNotFoundMarker(t *testing.T) {
	srv := relayServer(t, "Error: Domain not found in registry")
	defer srv.Close()

	rec := NewRelayProvider(srv.URL+"/", "https://origin.test/whois", srv.Client()).
		Resolve(context.Background(), "example.qzz.io")

	assert.True(t, rec.Success)
	require.NotNil(t, rec.Registered)
	assert.False(t, *rec.Registered)
	assert.Empty(t, rec.RegistrationDate)
	assert.Empty(t, rec.ExpiryDate)
	assert.Empty(t, rec.LastUpdated)
	assert.Nil(t, rec.Registrar)
}

func TestRelayProviderUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	rec := NewRelayProvider(srv.URL+"/", "https://origin.test/whois", srv.Client()).
		Resolve(context.Background(), "example.qzz.io")

	assert.False(t, rec.Success)
	assert.Contains(t, rec.Error, "502 Bad Gateway")
}

func TestRelayProviderWithoutCreationDate(t *testing.T) {
	srv := relayServer(t, "<html><body>Rate limited, please retry later</body></html>")
	defer srv.Close()

	rec := NewRelayProvider(srv.URL+"/", "https://origin.test/whois", srv.Client()).
		Resolve(context.Background(), "example.qzz.io")

	require.True(t, rec.Success, rec.Error)
	require.NotNil(t, rec.Registered)
	assert.False(t, *rec.Registered)
	assert.Empty(t, rec.RegistrationDate)
	assert.Empty(t, rec.ExpiryDate)
}
