package whois

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

type stubProvider struct {
	name  string
	calls []string
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Resolve(_ context.Context, name string) domain.WhoisRecord {
	s.calls = append(s.calls, name)
	return domain.WhoisRecord{Domain: name, Success: true, Provider: s.name}
}

func newTestRouter() (*Router, *stubProvider, *stubProvider, *stubProvider) {
	structured := &stubProvider{name: ProviderStructured}
	envelope := &stubProvider{name: ProviderEnvelope}
	relay := &stubProvider{name: ProviderRelay}

	r := NewRouter(structured)
	r.Handle("pp.ua", envelope, true)
	for _, s := range []string{"qzz.io", "dpdns.org", "us.kg", "xx.kg"} {
		r.Handle(s, relay, true)
	}
	return r, structured, envelope, relay
}

func TestRouterValidation(t *testing.T) {
	r, _, _, _ := newTestRouter()

	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "example.com", want: "example.com"},
		{in: "  Example.COM ", want: "example.com"},
		{in: "foo.pp.ua", want: "foo.pp.ua"},
		{in: "foo.qzz.io", want: "foo.qzz.io"},
		{in: "foo.us.kg", want: "foo.us.kg"},
		{in: "", wantErr: domain.ErrEmptyDomain},
		{in: "   ", wantErr: domain.ErrEmptyDomain},
		{in: "exa_mple.com", wantErr: domain.ErrMalformedDomain},
		{in: "-example.com", wantErr: domain.ErrMalformedDomain},
		{in: "example..com", wantErr: domain.ErrMalformedDomain},
		{in: "https://example.com", wantErr: domain.ErrMalformedDomain},
		{in: "localhost", wantErr: domain.ErrIncompleteDomain},
		{in: "www.example.com", wantErr: domain.ErrSubdomainNotAllowed},
		{in: "a.b.example.com", wantErr: domain.ErrSubdomainNotAllowed},
		{in: "a.foo.pp.ua", wantErr: domain.ErrSubdomainNotAllowed},
		{in: "example.co.uk", wantErr: domain.ErrSubdomainNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := r.Validate(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouterSelectsProviderBySuffix(t *testing.T) {
	r, _, _, _ := newTestRouter()

	tests := map[string]string{
		"example.com":   ProviderStructured,
		"example.io":    ProviderStructured,
		"pp.ua":         ProviderStructured,
		"foo.pp.ua":     ProviderEnvelope,
		"foo.qzz.io":    ProviderRelay,
		"foo.dpdns.org": ProviderRelay,
		"foo.xx.kg":     ProviderRelay,
	}
	for name, want := range tests {
		_, p, err := r.Route(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, p.Name(), name)
	}
}

func TestRouterResolveValidationSkipsProviders(t *testing.T) {
	r, structured, envelope, relay := newTestRouter()

	_, err := r.Resolve(context.Background(), "www.example.com")

	assert.ErrorIs(t, err, domain.ErrSubdomainNotAllowed)
	assert.Empty(t, structured.calls)
	assert.Empty(t, envelope.calls)
	assert.Empty(t, relay.calls)
}

func TestRouterResolveDelegates(t *testing.T) {
	r, _, envelope, _ := newTestRouter()

	rec, err := r.Resolve(context.Background(), "Foo.PP.ua")

	require.NoError(t, err)
	assert.Equal(t, "foo.pp.ua", rec.Domain)
	assert.Equal(t, []string{"foo.pp.ua"}, envelope.calls)
}

func TestNewDefaultRouterExtraRoutes(t *testing.T) {
	r, err := NewDefaultRouter(Options{ExtraRoutes: []ExtraRoute{
		{Suffix: "de", Provider: ProviderPort43},
		{Suffix: "co.uk", Provider: ProviderPort43},
	}})
	require.NoError(t, err)

	_, p, err := r.Route("example.de")
	require.NoError(t, err)
	assert.Equal(t, ProviderPort43, p.Name())

	_, p, err = r.Route("example.de.com")
	require.ErrorIs(t, err, domain.ErrSubdomainNotAllowed)
	assert.Nil(t, p)

	name, p, err := r.Route("Example.CO.uk")
	require.NoError(t, err)
	assert.Equal(t, "example.co.uk", name)
	assert.Equal(t, ProviderPort43, p.Name())

	_, _, err = r.Route("www.example.co.uk")
	assert.ErrorIs(t, err, domain.ErrSubdomainNotAllowed)

	_, err = NewDefaultRouter(Options{ExtraRoutes: []ExtraRoute{{Suffix: "de", Provider: "carrier-pigeon"}}})
	assert.Error(t, err)

	_, err = NewDefaultRouter(Options{ExtraRoutes: []ExtraRoute{{Suffix: ".", Provider: ProviderPort43}}})
	assert.Error(t, err)
}
