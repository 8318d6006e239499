package whois

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const verisignText = `   Domain Name: EXAMPLE.COM
   Registry Domain ID: 2336799_DOMAIN_COM-VRSN
   Registrar WHOIS Server: whois.iana.org
   Registrar URL: http://res-dom.iana.org
   Updated Date: 2024-08-14T07:01:34Z
   Creation Date: 1995-08-14T04:00:00Z
   Registry Expiry Date: 2025-08-13T04:00:00Z
   Registrar: RESERVED-Internet Assigned Numbers Authority
   Registrar IANA ID: 376
   Domain Status: clientDeleteProhibited https://icann.org/epp#clientDeleteProhibited
   Name Server: A.IANA-SERVERS.NET
   Name Server: B.IANA-SERVERS.NET
   DNSSEC: signedDelegation
>>> Last update of whois database: 2024-10-01T00:00:00Z <<<
`

func TestPort43ProviderParsesRegistryText(t *testing.T) {
	var queried string
	p := &Port43Provider{lookup: func(ctx context.Context, name string) (string, error) {
		queried = name
		return verisignText, nil
	}}

	rec := p.Resolve(context.Background(), "example.com")

	require.True(t, rec.Success, rec.Error)
	assert.Equal(t, "example.com", queried)
	assert.Equal(t, "1995-08-14", rec.RegistrationDate)
	assert.Equal(t, "2025-08-13", rec.ExpiryDate)
	require.NotNil(t, rec.Registrar)
	assert.Equal(t, "RESERVED-Internet Assigned Numbers Authority", rec.Registrar.Name)
	assert.Len(t, rec.Nameservers, 2)
	assert.Equal(t, ProviderPort43, rec.Provider)
}

func TestPort43ProviderLookupFailure(t *testing.T) {
	p := &Port43Provider{lookup: func(ctx context.Context, name string) (string, error) {
		return "", errors.New("connection refused")
	}}

	rec := p.Resolve(context.Background(), "example.com")

	assert.False(t, rec.Success)
	assert.Contains(t, rec.Error, "connection refused")
}

func TestPort43ProviderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &Port43Provider{lookup: func(ctx context.Context, name string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}

	rec := p.Resolve(ctx, "example.com")

	assert.False(t, rec.Success)
	assert.Equal(t, context.Canceled.Error(), rec.Error)
}
