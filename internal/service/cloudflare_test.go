package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloudflare/cloudflare-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

const zonesResponse = `{
  "success": true,
  "errors": [],
  "messages": [],
  "result": [
    {"id": "z1", "name": "tracked.com"},
    {"id": "z2", "name": "fresh.net"},
    {"id": "z3", "name": "broken.org"}
  ],
  "result_info": {"page": 1, "per_page": 50, "total_pages": 1, "count": 3, "total_count": 3}
}`

func TestImportZones(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer cf-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(zonesResponse))
	}))
	defer srv.Close()

	domains, repo := newTestDomainService(t, nil)
	lookup := newTestWhoisService(&fakeProvider{fail: map[string]string{"broken.org": "no whois server"}}, nil)
	s := NewCloudflareService("cf-token", domains, lookup, cloudflare.BaseURL(srv.URL))

	repo.EXPECT().FindDomainByName(gomock.Any(), "tracked.com").Return(&domain.DomainRecord{ID: "t"}, nil)
	repo.EXPECT().FindDomainByName(gomock.Any(), "fresh.net").Return(nil, domain.ErrNotFound).Times(2)
	repo.EXPECT().FindDomainByName(gomock.Any(), "broken.org").Return(nil, domain.ErrNotFound)

	var saved domain.DomainRecord
	repo.EXPECT().PutDomain(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec domain.DomainRecord) error {
		saved = rec
		return nil
	})

	stats, err := s.ImportZones(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Zones)
	assert.Equal(t, []string{"fresh.net"}, stats.Imported)
	assert.Equal(t, []string{"tracked.com"}, stats.Skipped)
	assert.Equal(t, []string{"broken.org"}, stats.Failed)

	assert.Equal(t, "fresh.net", saved.Name)
	assert.Equal(t, "2026-01-01", saved.ExpiryDate.Format(domain.DateLayout))
}

func TestImportZonesRequiresToken(t *testing.T) {
	s := NewCloudflareService("", nil, nil)
	_, err := s.ImportZones(context.Background())
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestApexName(t *testing.T) {
	assert.Equal(t, "example.com", apexName("Example.COM."))
	assert.Equal(t, "foo.pp.ua", apexName("foo.pp.ua"))
	assert.Equal(t, "example.co.uk", apexName("www.example.co.uk"))
}
